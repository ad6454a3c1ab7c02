//go:build !fpu

package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFPUUsedIsFalseWithoutTheBuildTag(t *testing.T) {
	assert.False(t, FPUUsed)
}
