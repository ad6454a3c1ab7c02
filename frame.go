package sched

import "unsafe"

// savedContext is the fixed-layout record written at the top of a
// non-running task's stack. It mirrors, field for field, the layout the
// Cortex-M hardware expects: the software-saved half (r4-r11 and the
// exception-return code) at the lower addresses, followed by the
// hardware-saved half (r0-r3, r12, lr, pc, xpsr) that the CPU itself
// pushes on exception entry. switch_arm.s indexes into this layout using
// the offsetXxx constants below, not struct field access, so the two
// representations cannot silently diverge: change one, update the other.
type savedContext struct {
	// Software-saved half (pushed/popped by the handler).
	r4, r5, r6, r7, r8, r9, r10, r11 uint32
	excReturn                        uint32

	// Hardware-saved half (pushed/popped by the CPU itself).
	r0, r1, r2, r3, r12 uint32
	lr, pc, xpsr        uint32
}

const sizeOfSavedContext = unsafe.Sizeof(savedContext{})

// Byte offsets into savedContext, computed once so the assembly handler
// and the Go-side fabricator can never disagree about the layout.
const (
	offsetR4        = unsafe.Offsetof(savedContext{}.r4)
	offsetExcReturn = unsafe.Offsetof(savedContext{}.excReturn)
	offsetR0        = unsafe.Offsetof(savedContext{}.r0)
	offsetPC        = unsafe.Offsetof(savedContext{}.pc)
	offsetXPSR      = unsafe.Offsetof(savedContext{}.xpsr)
)

// excReturnThreadPSP is the exception-return magic for "return to thread
// mode, using the process stack pointer, no floating-point frame"
// (Cortex-M4 Devices Generic User Guide, Table 2-17).
const excReturnThreadPSP = 0xFFFFFFFD

const (
	excRetMSPBit = 1 << 2
	excRetFPBit  = 1 << 4
)

// thumbBit marks Thumb instruction state in xPSR; it is mandatory on
// every ARMv7-M core and must be set in any fabricated frame or the
// first instruction executed on entry to the trampoline faults.
const thumbBit = 1 << 24

// fpContextSize is the size, in bytes, of the software-saved extended
// floating-point register block (s16-s31) the fpu build appends below
// the integer frame. s0-s15 and FPSCR are saved by the hardware itself
// as part of its own stacking when the FP-context bit is set; only the
// upper half is the handler's responsibility to save (ARMv7-M ARM,
// B1.5.7). It is declared unconditionally so non-fpu builds still agree
// on its value; it is simply unused there.
const fpContextSize = 16 * 4

// trampolineArgs carries the three values the fabricator places in
// r0/r1/r2 through to trampoline's first invocation. On the simulated
// backend these are passed directly (see runtime_sim.go); on real
// hardware they arrive because switch_arm.s restores r0-r2 from the
// fabricated frame before branching into pc.
type trampolineArgs struct {
	task  *TCB
	entry EntryFunc
	arg   unsafe.Pointer
}

// fabricate paints the canary, computes the initial stack pointer, and
// writes the initial savedContext at the top of stack. It does not link
// task into the run list; callers do that separately (see CreateTask).
//
// The alignment rule aligns the top of stack down to 8 bytes first, then
// subtracts the frame size. This ordering, and not "align after
// subtracting," leaves the hardware-saved half ending on the 8-byte
// boundary the hardware expects at the exception-return boundary.
func fabricate(task *TCB, entry EntryFunc, arg unsafe.Pointer, stack []byte) {
	paintCanary(stack)

	base := stackAddr(stack)
	top := (base + uintptr(len(stack))) &^ 7
	sp := top - sizeOfSavedContext

	task.stackBottom = base
	task.stackTop = base + uintptr(len(stack))
	task.stack = stack
	task.spCurrent = sp

	// The frame lives inside stack itself; anchoring the unsafe.Pointer
	// conversion through stack's own backing array (rather than a bare
	// uintptr) keeps the write valid under the garbage collector.
	ctx := (*savedContext)(unsafe.Pointer(&stack[sp-base]))
	*ctx = savedContext{
		xpsr:      thumbBit,
		pc:        asWord(funcAddr(trampoline)),
		lr:        0,
		excReturn: excReturnThreadPSP,
		r0:        asWord(uintptr(unsafe.Pointer(task))),
		r1:        asWord(funcAddr(entry)),
		r2:        asWord(uintptr(arg)),
	}
}

// canaryByte reads the sentinel byte at the base of task's stack.
func canaryByte(task *TCB) byte {
	return *(*byte)(unsafe.Pointer(task.stackBottom))
}

// addrOf returns task's own address, used only for diagnostics (the
// fatal-error message embeds "the offending TCB address").
func addrOf(task *TCB) uintptr {
	return uintptr(unsafe.Pointer(task))
}

func stackAddr(stack []byte) uintptr {
	if len(stack) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&stack[0]))
}

// asWord truncates a uintptr to the 32-bit register width used across
// the saved-context layout. On amd64/arm64 hosts (the portable simulated
// build) this is purely cosmetic: the frame's pc/r0/r1/r2 fields are
// never dereferenced as hardware registers there, only compared against
// in invariant tests.
func asWord(p uintptr) uint32 { return uint32(p) }
