//go:build arm

package sched

import "unsafe"

// Cortex-M System Control Block addresses used by CortexMArch. These are
// architectural constants, fixed on every ARMv7-M core regardless of
// vendor (ARMv7-M Architecture Reference Manual, B3.2).
const (
	scbICSR  = 0xE000ED04 // Interrupt Control and State Register
	scbSHPR3 = 0xE000ED20 // System Handler Priority Register 3
)

const icsrPendSVSet = 1 << 28

// shpr3PendSVShift is the bit offset of the PendSV priority field within
// SHPR3: byte 3 of the word (ARMv7-M ARM, Table B3-7).
const shpr3PendSVShift = 24

// CortexMArch is the real Arch implementation: direct, unsynchronized
// MMIO access to the System Control Block. It must only be constructed
// once per core and installed via Init before interrupts are enabled.
type CortexMArch struct{}

func (CortexMArch) SetPendSVPriority(p uint8) {
	reg := (*uint32)(unsafe.Pointer(uintptr(scbSHPR3)))
	v := *reg
	v &^= 0xFF << shpr3PendSVShift
	v |= uint32(p) << shpr3PendSVShift
	*reg = v
}

func (CortexMArch) PendScheduler() {
	reg := (*uint32)(unsafe.Pointer(uintptr(scbICSR)))
	*reg = icsrPendSVSet
	dsb()
	isb()
}

// dsb and isb are implemented in barrier_arm.s; Go has no intrinsic for
// either, and they must be real DSB/ISB instructions, not a compiler
// fence, to be meaningful on this architecture.
func dsb()
func isb()
