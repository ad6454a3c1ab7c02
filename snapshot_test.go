package sched

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	var task TCB
	stack := make([]byte, sizeOfSavedContext+32)
	arg := unsafe.Pointer(&task)
	fabricate(&task, func(unsafe.Pointer) {}, arg, stack)

	buf := make([]byte, SnapshotSize)
	require.NoError(t, Snapshot(&task, buf))

	var other TCB
	otherStack := make([]byte, sizeOfSavedContext+32)
	fabricate(&other, func(unsafe.Pointer) {}, nil, otherStack)

	require.NoError(t, Restore(&other, buf))

	assert.Equal(t, contextAt(&task).r0, contextAt(&other).r0)
	assert.Equal(t, contextAt(&task).excReturn, contextAt(&other).excReturn)
}

func TestSnapshotRejectsShortBuffer(t *testing.T) {
	var task TCB
	fabricate(&task, func(unsafe.Pointer) {}, nil, make([]byte, sizeOfSavedContext+32))
	assert.Error(t, Snapshot(&task, make([]byte, 4)))
}

func TestRestoreRejectsBadVersion(t *testing.T) {
	var task TCB
	fabricate(&task, func(unsafe.Pointer) {}, nil, make([]byte, sizeOfSavedContext+32))

	buf := make([]byte, SnapshotSize)
	require.NoError(t, Snapshot(&task, buf))
	buf[0] = 99

	assert.Error(t, Restore(&task, buf))
}
