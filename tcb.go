package sched

import "unsafe"

// CanaryByte is the sentinel value written at the base of every non-main
// task's stack. Its mutation signals a stack overflow.
const CanaryByte = 0xA5

// EntryFunc is a task's entry point. It receives the argument passed to
// CreateTask, unchanged, as an untyped pointer: on real hardware this
// value travels in r2 exactly as the fabricator placed it, so it must fit
// in a single machine word. A task ends by returning from this function,
// not by any other mechanism.
type EntryFunc func(arg unsafe.Pointer)

// TCB is a Task Control Block: the scheduler's entire record of one task.
// A TCB is owned by whoever creates it (typically a package-level
// variable or a field in a longer-lived struct) and must outlive the
// task, from CreateTask until entry returns.
type TCB struct {
	// spCurrent holds the stack pointer saved on the most recent
	// outbound switch from this task. While the task is running this
	// field is stale; it is brought up to date by pendsvSelect on every
	// switch away from the task.
	spCurrent uintptr

	// stackBottom is the lowest address of the task's stack region.
	// The byte at this address is the overflow canary for every task
	// except main, which owns no dedicated stack region.
	stackBottom uintptr

	// stackTop is one past the highest address of the stack region.
	stackTop uintptr

	// stack keeps the stack buffer reachable for the garbage collector;
	// the fields above refer to it by address only.
	stack []byte

	// next links to the next runnable task, or nil at the list tail.
	next *TCB

	// isMain marks the permanent head-of-list task. It never runs
	// through the fabricator and is exempt from overflow checking.
	isMain bool

	// backend holds per-implementation state (see runtime_sim.go /
	// runtime_arm.go); the portable core never reads its contents.
	backend any
}

// runList is a singly-linked, non-circular list of runnable tasks headed
// by the permanent main task. It deliberately does not wrap into a ring:
// the Selector uses the nil terminator to detect wraparound and fall
// back to head, which lets interior nodes be spliced out without a
// sentinel node.
type runList struct {
	head *TCB
}

// insert appends t as the new tail of the list. Inserting a task that is
// already a member of some run list is a caller error and is not
// detected.
func (l *runList) insert(t *TCB) {
	tail := l.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = t
	t.next = nil
}

// remove splices t out of the list. If t is not found — including the
// case where t is the head itself, which is never removed by contract —
// remove is a silent no-op.
func (l *runList) remove(t *TCB) {
	prev := l.head
	for prev.next != nil && prev.next != t {
		prev = prev.next
	}
	if prev.next != t {
		return
	}
	prev.next = t.next
	t.next = nil
}
