//go:build !arm

package sched

import (
	"runtime"
	"unsafe"
)

// simBackend is the portable stand-in for "the hardware context that
// owns this task's stack." A real Cortex-M switches into a task by
// restoring its saved registers and branching into its saved pc; a
// host running plain Go has no portable way to repoint a machine stack
// pointer, so instead each task gets its own goroutine — itself an
// independently-stacked, suspendable execution context — and the
// handoff between tasks is a plain channel rendezvous rather than an
// interrupt return. Every other component (TCB, run list, Fabricator,
// Selector) is exactly the code that would run on real hardware.
type simBackend struct {
	wake chan struct{}
}

func backendState(t *TCB) *simBackend {
	sb, _ := t.backend.(*simBackend)
	if sb == nil {
		sb = &simBackend{wake: make(chan struct{})}
		t.backend = sb
	}
	return sb
}

func init() {
	backendState(&mainTask)
}

// startBackend spawns the goroutine that will run entry the first time
// this task is selected. It parks immediately: the task does not begin
// running until the round-robin schedule reaches it, exactly as a
// freshly fabricated hardware task waits for its first context switch.
func startBackend(task *TCB, entry EntryFunc, arg unsafe.Pointer) {
	sb := backendState(task)
	go func() {
		<-sb.wake
		trampoline(task, entry, arg)
	}()
}

// parkCurrent performs the handoff for an ordinary Yield: ask the
// Selector who runs next, wake that task's goroutine, and block the
// caller until it is woken in turn. The wake channel's rendezvous is
// also what keeps this race-free: a task can only ever call back into
// the Selector after receiving its own wake signal, which happens-after
// the sender's own Selector call in program order.
func parkCurrent() {
	outgoing := current
	pendsvSelect(outgoing.spCurrent)
	next := current
	if next == outgoing {
		return
	}
	backendState(next).wake <- struct{}{}
	<-backendState(outgoing).wake
}

// finalYield performs the handoff for a task whose entry function has
// just returned and which has already been unlinked from the run list.
// Unlike parkCurrent it does not wait to be woken again: after the
// handoff it ends the calling goroutine with runtime.Goexit, so it never
// returns and trampoline's fatalf after it is not reached.
func finalYield() {
	outgoing := current
	pendsvSelect(outgoing.spCurrent)
	next := current
	if next != outgoing {
		backendState(next).wake <- struct{}{}
	}
	runtime.Goexit()
}
