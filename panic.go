package sched

import "strconv"

// PanicPrint is the byte-sink emergency diagnostics are written through.
// It may be left nil, in which case fatal diagnostics are silently
// discarded — matching the weak no-op default the original firmware
// links in when the application provides none. When set, it must be
// reentrant-safe for the "called exactly once from a halted context"
// case: fatalf never calls it more than once before looping forever.
var PanicPrint func(string)

// halted latches true when fatalf begins its terminal path, before the
// diagnostic is emitted, so whoever PanicPrint notifies already sees it
// set. The scheduler itself never reads it; fatalf's "loop forever" is a
// select{} that blocks the calling goroutine without spinning the CPU.
var halted bool

// fatalf reports a fatal scheduler error for task and halts. It never
// returns: the caller (always the Selector or the trampoline) has no
// valid path forward once this is called.
func fatalf(task *TCB, reason string) {
	halted = true
	if PanicPrint != nil {
		PanicPrint("Fatal error for task " + hexAddr(task) + ": " + reason + "\r\n")
	}
	select {}
}

func hexAddr(task *TCB) string {
	return "0x" + strconv.FormatUint(uint64(addrOf(task)), 16)
}
