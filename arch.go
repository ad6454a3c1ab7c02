package sched

// PendSVPriorityLowest is the numerically lowest-urgency interrupt
// priority value on a Cortex-M core (priority fields count downward in
// urgency), used by Init so that every other interrupt — including
// SysTick — preempts a scheduling transition in progress.
const PendSVPriorityLowest uint8 = 255

// Arch is the architecture shim: the thin, stateless accessor surface
// the core borrows from the board/chip vendor layer. Implementations
// must be safe to call from thread mode with interrupts enabled and
// must not otherwise touch global state.
type Arch interface {
	// SetPendSVPriority writes p into the interrupt controller's
	// priority slot for the pend-service exception.
	SetPendSVPriority(p uint8)

	// PendScheduler sets the pend-service exception pending, then
	// emits a data-synchronization barrier followed by an
	// instruction-synchronization barrier.
	PendScheduler()
}

// arch is the process-wide Arch implementation installed by Init.
var arch Arch

var initialized bool

// Init installs a and sets the pend-service priority to the lowest
// value. It must be called exactly
// once, before interrupts are enabled and before any call to Yield.
// Calling it twice is a programming error.
func Init(a Arch) {
	if initialized {
		panic("sched: Init called twice")
	}
	arch = a
	arch.SetPendSVPriority(PendSVPriorityLowest)
	initialized = true
}
