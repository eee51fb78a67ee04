package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessStatus_IsValid(t *testing.T) {
	valid := []AccessStatus{StatusPending, StatusApproved, StatusDenied, StatusExpired}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %s to be valid", s)
	}

	assert.False(t, AccessStatus("").IsValid())
	assert.False(t, AccessStatus("rejected").IsValid())
	assert.False(t, AccessStatus("PENDING").IsValid())
}

func TestAccessStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AccessStatus
		to      AccessStatus
		allowed bool
	}{
		{name: "pending to approved", from: StatusPending, to: StatusApproved, allowed: true},
		{name: "pending to denied", from: StatusPending, to: StatusDenied, allowed: true},
		{name: "pending to expired", from: StatusPending, to: StatusExpired, allowed: false},
		{name: "approved to expired", from: StatusApproved, to: StatusExpired, allowed: true},
		{name: "approved to denied", from: StatusApproved, to: StatusDenied, allowed: false},
		{name: "approved to pending", from: StatusApproved, to: StatusPending, allowed: false},
		{name: "denied is terminal", from: StatusDenied, to: StatusPending, allowed: false},
		{name: "expired is terminal", from: StatusExpired, to: StatusApproved, allowed: false},
		{name: "unknown status", from: AccessStatus("bogus"), to: StatusApproved, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAccessStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.True(t, StatusDenied.IsTerminal())
	assert.True(t, StatusExpired.IsTerminal())
}

func TestNewAccessStatus(t *testing.T) {
	s, err := NewAccessStatus("approved")
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, s)

	_, err = NewAccessStatus("rejected")
	assert.Error(t, err)
}
