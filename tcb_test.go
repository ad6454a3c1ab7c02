package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunListInsertAppendsInOrder(t *testing.T) {
	var head, a, b, c TCB
	l := runList{head: &head}

	l.insert(&a)
	l.insert(&b)
	l.insert(&c)

	assert.Same(t, &a, head.next)
	assert.Same(t, &b, a.next)
	assert.Same(t, &c, b.next)
	assert.Nil(t, c.next)
}

func TestRunListRemoveSplicesInteriorNode(t *testing.T) {
	var head, a, b, c TCB
	l := runList{head: &head}
	l.insert(&a)
	l.insert(&b)
	l.insert(&c)

	l.remove(&b)

	assert.Same(t, &a, head.next)
	assert.Same(t, &c, a.next)
	assert.Nil(t, b.next, "removed node's own next must be cleared")
}

func TestRunListRemoveIsIdempotent(t *testing.T) {
	var head, a TCB
	l := runList{head: &head}
	l.insert(&a)

	l.remove(&a)
	assert.NotPanics(t, func() { l.remove(&a) })
	assert.Nil(t, head.next)
}

func TestRunListRemoveUnknownNodeIsNoOp(t *testing.T) {
	var head, a, stray TCB
	l := runList{head: &head}
	l.insert(&a)

	l.remove(&stray)

	assert.Same(t, &a, head.next)
}
