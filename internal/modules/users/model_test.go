package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSuspended(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	assert.False(t, User{}.Suspended(now))
	assert.True(t, User{IsSuspended: true}.Suspended(now), "open-ended suspension stays active")
	assert.True(t, User{IsSuspended: true, SuspendedUntil: &future}.Suspended(now))
	assert.False(t, User{IsSuspended: true, SuspendedUntil: &past}.Suspended(now), "expired suspension lifts itself")
}
