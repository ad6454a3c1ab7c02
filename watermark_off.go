//go:build !watermark

package sched

// paintCanary, without the watermark tag, paints only stack[0]: the
// canary byte the overflow check in the Selector depends on. The
// remainder of the stack is left untouched, matching the firmware's own
// `#ifndef ENABLE_STACK_WATERMARK` fallback of writing a single byte
// instead of memset-ing the whole region.
func paintCanary(stack []byte) {
	if len(stack) > 0 {
		stack[0] = CanaryByte
	}
}

// StackWatermark always returns 0 without the watermark build tag: the
// function still exists so callers need not be conditionally compiled,
// but no bytes were ever painted for it to scan.
func StackWatermark(task *TCB) int {
	return 0
}
