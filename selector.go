package sched

// list and current are the two pieces of process-wide scheduler state:
// the run list (headed by the permanent main task) and a pointer to
// whichever task is presently executing. They are genuine singletons —
// there is exactly one of each per hardware core — and are deliberately
// not guarded by a sync.Mutex: on real hardware the Selector runs in
// exception context, where blocking is undefined behavior, and the
// simulated backend never has more than one task's goroutine actually
// running at a time by construction (see runtime_sim.go).
var (
	mainTask TCB
	list     = runList{head: &mainTask}
	current  = &mainTask
)

func init() {
	mainTask.isMain = true
}

// pendsvSelect is the Selector: given the stack pointer the outgoing
// task was just switched away from, it records it, checks the outgoing
// task for overflow, advances current round-robin, and returns the
// incoming task's stack pointer. It is called from the exception
// handler in switch_arm.s (by symbol, via //go:linkname-free direct
// call — see that file) and, on the portable build, from the goroutine
// handoff in runtime_sim.go. Either way it must only ever be invoked
// from what is logically exception context: never concurrently with
// itself, and never re-entrantly.
func pendsvSelect(outSP uintptr) uintptr {
	current.spCurrent = outSP

	if !current.isMain {
		if current.spCurrent < current.stackBottom {
			fatalf(current, "Stack overflow (sp beyond stack bottom)")
		}
		if canaryByte(current) != CanaryByte {
			fatalf(current, "Stack overflow (canary dead)")
		}
	}

	current = current.next
	if current == nil {
		current = list.head
	}

	return current.spCurrent
}
