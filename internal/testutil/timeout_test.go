package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequireCompletes_RunsFunction(t *testing.T) {
	ran := false
	RequireCompletes(t, time.Second, func() {
		ran = true
	})
	assert.True(t, ran, "function should have run")
}

func TestRequireCompletes_DefaultTimeout(t *testing.T) {
	calls := 0
	RequireCompletes(t, 0, func() {
		calls++
	})
	assert.Equal(t, 1, calls)
}
