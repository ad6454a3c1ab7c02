package sched

import (
	"reflect"
	"unsafe"
)

// reservedHeadroom is the minimum extra stack space CreateTask requires
// beyond sizeOfSavedContext, set aside for the entry function's own
// first few frames before it has a chance to yield.
const reservedHeadroom = 8

// CreateTask fabricates task's initial stack frame and links it into
// the run list. Preconditions: len(stack) >= sizeOfSavedContext +
// reservedHeadroom, stack should be 8-byte aligned (not required, but
// recommended — misalignment merely wastes up to 7 bytes), and task
// must be zero-valued or otherwise not already a member of any run
// list. None of these are checked: violating them is a programming
// error with undefined behavior, exactly as on the original firmware.
func CreateTask(task *TCB, entry EntryFunc, arg unsafe.Pointer, stack []byte) {
	fabricate(task, entry, arg, stack)
	startBackend(task, entry, arg)
	list.insert(task)
}

// Yield triggers the pend-service exception and suspends the caller
// until the scheduler next selects it. Safe to call from thread mode;
// calling it from handler mode is undefined behavior, matching the
// hardware contract the core is modeling.
func Yield() {
	arch.PendScheduler()
	parkCurrent()
}

// trampoline is pc in every freshly fabricated frame. On real hardware
// the very first context switch into a task resumes here, with
// r0/r1/r2 restored from the frame as task/entry/arg. It must never
// return: a task ends only by entry returning, at which point
// trampoline removes the TCB from the run list and yields one final
// time, never to be selected again.
func trampoline(task *TCB, entry EntryFunc, arg unsafe.Pointer) {
	entry(arg)

	list.remove(task)
	finalYield()

	fatalf(task, "Removed task called from scheduler")
}

// funcAddr returns a function value's entry address. It is used only to
// populate the pc/r1 fields of a fabricated frame for diagnostic and
// invariant-testing purposes; the simulated backend never branches to
// this address (it invokes entry directly), and the arm backend never
// dereferences it in Go — only the hardware, via the bytes already
// written to the stack, does that.
func funcAddr(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
