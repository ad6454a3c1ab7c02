//go:build fpu

package sched

// FPUUsed gates inclusion of the extended floating-point register block
// (s16-s31) in the saved context, matching the original firmware's
// FPU_USED compile-time selector. With this build tag set,
// switch_arm_fpu.s pushes and pops that block whenever the
// exception-return code's FP-context bit indicates it is dirty. The
// simulated backend needs no equivalent code: each task already runs on
// its own goroutine, and the Go runtime saves and restores a goroutine's
// floating-point state across every switch regardless of this tag.
const FPUUsed = true
