// Package sched implements a minimal cooperative multitasking kernel for
// ARMv7-M microcontrollers (Cortex-M3/M4, optionally with hardware FPU).
//
// Tasks are independently-stacked execution contexts that relinquish the
// processor only by calling Yield (or by returning from their entry
// function, which does so implicitly). Scheduling is strict round-robin
// over a singly-linked run list headed by the permanent main task; there
// is no preemption, no priority, and no inter-task messaging.
//
// The package is split into an architecture-portable half (this file and
// most others) and an architecture-specific half selected by the Go
// build tags described below.
//
//   - arm:       build the real Cortex-M PendSV handler in switch_arm.s
//                and the hardware NVIC/SCB accessors in arch_arm.go.
//                Without it, a portable simulated backend (runtime_sim.go)
//                is built instead, so the scheduler can be exercised and
//                tested on any host.
//   - fpu:       include save/restore of the extended floating-point
//                register block (s16-s31) across a context switch.
//   - watermark: paint the full stack with the canary byte at task
//                creation (rather than just the first byte) and enable a
//                real StackWatermark implementation.
package sched
