//go:build watermark

package sched

import "unsafe"

// paintCanary, with the watermark tag set, paints the sentinel byte
// across the entire stack region rather than just its first byte, so
// StackWatermark below has untouched bytes to scan for.
func paintCanary(stack []byte) {
	for i := range stack {
		stack[i] = CanaryByte
	}
}

// StackWatermark scans upward from task's stack_bottom counting
// untouched canary bytes and returns the high-water mark: the number of
// bytes that have ever been written by the task. It returns 0 for the
// main task, which owns no canary-painted region.
func StackWatermark(task *TCB) int {
	if task.isMain {
		return 0
	}
	ptr := task.stackBottom
	for ptr < task.stackTop && *(*byte)(unsafe.Pointer(ptr)) == CanaryByte {
		ptr++
	}
	return int(task.stackTop - ptr)
}
