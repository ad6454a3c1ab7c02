package sched

import (
	"encoding/binary"
	"errors"
	"unsafe"
)

// snapshotVersion is incremented whenever the binary layout below
// changes, so a stale snapshot is rejected rather than silently
// misread.
const snapshotVersion = 1

// SnapshotSize is the number of bytes Snapshot writes and Restore
// consumes: one version byte followed by twelve saved-context words
// (r4-r11, excReturn, r0-r2). r3, r12, lr, pc, and xpsr are omitted:
// Snapshot does not encode them, and Restore leaves those words of the
// frame as they already are.
const SnapshotSize = 1 + 12*4

// Snapshot encodes task's currently-saved register context — the same
// values a context switch would restore into the CPU — into buf, for
// diagnostics or crash-report tooling that wants to inspect a task
// without dereferencing its stack directly. It is a read of whatever
// fabricate or the last Selector pass last wrote; it does not pause or
// otherwise affect the task.
func Snapshot(task *TCB, buf []byte) error {
	if len(buf) < SnapshotSize {
		return errors.New("sched: snapshot buffer too small")
	}
	ctx := contextAt(task)

	buf[0] = snapshotVersion
	be := binary.BigEndian
	off := 1
	words := [...]uint32{
		ctx.r4, ctx.r5, ctx.r6, ctx.r7, ctx.r8, ctx.r9, ctx.r10, ctx.r11,
		ctx.excReturn,
		ctx.r0, ctx.r1, ctx.r2,
	}
	for _, w := range words {
		be.PutUint32(buf[off:], w)
		off += 4
	}
	return nil
}

// Restore decodes buf, previously produced by Snapshot, back into
// task's saved context. Returns an error if buf is too short or carries
// an unrecognized version.
func Restore(task *TCB, buf []byte) error {
	if len(buf) < SnapshotSize {
		return errors.New("sched: snapshot buffer too small")
	}
	if buf[0] != snapshotVersion {
		return errors.New("sched: unsupported snapshot version")
	}
	ctx := contextAt(task)

	be := binary.BigEndian
	off := 1
	read := func() uint32 {
		v := be.Uint32(buf[off:])
		off += 4
		return v
	}
	ctx.r4, ctx.r5, ctx.r6, ctx.r7 = read(), read(), read(), read()
	ctx.r8, ctx.r9, ctx.r10, ctx.r11 = read(), read(), read(), read()
	ctx.excReturn = read()
	ctx.r0, ctx.r1, ctx.r2 = read(), read(), read()
	return nil
}

// contextAt returns a pointer to the savedContext currently at the top
// of task's stack. Valid only for tasks that have been fabricated and
// are not presently running.
func contextAt(task *TCB) *savedContext {
	return (*savedContext)(unsafe.Pointer(task.spCurrent))
}
