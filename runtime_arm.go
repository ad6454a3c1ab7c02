//go:build arm

package sched

import "unsafe"

// On real hardware the context switch is the PendSV exception itself.
// Once CreateTask has fabricated a task's initial frame there is
// nothing further to start: the frame sits on its stack, inert, until
// the Selector's round-robin reaches it. Once Yield has pended the
// exception there is nothing further for Go code to do either —
// pendsvHandler, not this call, is what resumes some other task's
// frame, and this goroutine-equivalent (there is only ever one, the
// single hardware thread) simply finds itself executing different code
// the next time the core returns from handler mode.

func startBackend(task *TCB, entry EntryFunc, arg unsafe.Pointer) {}

func parkCurrent() {}

// finalYield never returns: PendScheduler's ISB guarantees the pended
// exception is taken before the next instruction retires, so the loop
// below is unreachable in practice. It exists so trampoline's own
// never-reached fatalf path stays honest about what "never returns"
// means on this backend.
func finalYield() {
	arch.PendScheduler()
	for {
	}
}

// pendsvHandler is implemented in switch_arm.s. Its address must be
// installed at the PendSV slot of the vector table by the board's
// startup code; this module does not own the vector table.
func pendsvHandler()
