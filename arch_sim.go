//go:build !arm

package sched

import "sync/atomic"

// SimArch is a software stand-in for the NVIC/SCB accessors a real board
// support package would provide. It never actually raises an exception —
// on the portable backend the context switch happens as a direct Go call
// inside Yield (see runtime_sim.go) — but it keeps the same bookkeeping a
// real implementation would (last priority written, pend count) so tests
// can assert Init wired the Arch correctly without touching real MMIO.
type SimArch struct {
	priority uint8
	pends    atomic.Uint64
}

// NewSimArch returns a ready-to-use simulated Arch.
func NewSimArch() *SimArch {
	return &SimArch{}
}

func (a *SimArch) SetPendSVPriority(p uint8) {
	a.priority = p
}

func (a *SimArch) PendScheduler() {
	a.pends.Add(1)
}

// Priority reports the last value written by SetPendSVPriority, for
// tests that want to confirm Init set it to PendSVPriorityLowest.
func (a *SimArch) Priority() uint8 {
	return a.priority
}

// Pends reports how many times PendScheduler has been called.
func (a *SimArch) Pends() uint64 {
	return a.pends.Load()
}
