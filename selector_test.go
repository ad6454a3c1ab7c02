package sched

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// resetScheduler restores package-level scheduler state between tests;
// the core deliberately keeps this state unexported and singleton (see
// selector.go), so tests that need a clean slate reset it by hand.
func resetScheduler() {
	mainTask = TCB{isMain: true}
	list = runList{head: &mainTask}
	current = &mainTask
	initialized = false
	arch = nil
}

func TestSelectorRoundRobinsInInsertionOrder(t *testing.T) {
	resetScheduler()
	var a, b TCB
	stackA := make([]byte, sizeOfSavedContext+32)
	stackB := make([]byte, sizeOfSavedContext+32)
	fabricate(&a, func(unsafe.Pointer) {}, nil, stackA)
	fabricate(&b, func(unsafe.Pointer) {}, nil, stackB)
	list.insert(&a)
	list.insert(&b)

	pendsvSelect(mainTask.spCurrent)
	assert.Same(t, &a, current)

	pendsvSelect(a.spCurrent)
	assert.Same(t, &b, current)

	pendsvSelect(b.spCurrent)
	assert.Same(t, &mainTask, current, "selector must wrap back to head")
}

func TestSelectorDetectsDeadCanary(t *testing.T) {
	resetScheduler()
	var a TCB
	stack := make([]byte, sizeOfSavedContext+32)
	fabricate(&a, func(unsafe.Pointer) {}, nil, stack)
	list.insert(&a)

	var fatal string
	done := make(chan struct{})
	PanicPrint = func(s string) { fatal = s; close(done) }
	defer func() { PanicPrint = nil; halted = false }()

	pendsvSelect(mainTask.spCurrent) // current becomes a
	stack[0] = 0x00                  // corrupt the canary

	// fatalf reports the diagnostic and then blocks forever in select{}
	// (panic.go), so the call itself never returns; run it on its own
	// goroutine and synchronize on the PanicPrint callback instead of on
	// pendsvSelect returning.
	go pendsvSelect(a.spCurrent)
	<-done

	assert.Contains(t, fatal, "canary dead")
	assert.True(t, halted)
}

func TestSelectorDetectsStackPointerBeyondBottom(t *testing.T) {
	resetScheduler()
	var a TCB
	stack := make([]byte, sizeOfSavedContext+32)
	fabricate(&a, func(unsafe.Pointer) {}, nil, stack)
	list.insert(&a)

	var fatal string
	done := make(chan struct{})
	PanicPrint = func(s string) { fatal = s; close(done) }
	defer func() { PanicPrint = nil; halted = false }()

	pendsvSelect(mainTask.spCurrent) // current becomes a

	// Same deal as TestSelectorDetectsDeadCanary: fatalf never returns,
	// so synchronize on the PanicPrint callback, not on this call.
	go pendsvSelect(a.stackBottom - 1) // sp below the stack region
	<-done

	assert.Contains(t, fatal, "Stack overflow")
	assert.True(t, halted)
}

func TestSelectorSkipsRemovedTaskAndFallsBackToHead(t *testing.T) {
	resetScheduler()
	var a, b TCB
	stackA := make([]byte, sizeOfSavedContext+32)
	stackB := make([]byte, sizeOfSavedContext+32)
	fabricate(&a, func(unsafe.Pointer) {}, nil, stackA)
	fabricate(&b, func(unsafe.Pointer) {}, nil, stackB)
	list.insert(&a)
	list.insert(&b)

	pendsvSelect(mainTask.spCurrent) // -> a
	list.remove(&a)

	pendsvSelect(a.spCurrent) // a.next is now nil: falls back to head
	assert.Same(t, &mainTask, current)
	assert.Nil(t, a.next)
}
