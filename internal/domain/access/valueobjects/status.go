package valueobjects

import "fmt"

type AccessStatus string

const (
	StatusPending  AccessStatus = "pending"
	StatusApproved AccessStatus = "approved"
	StatusDenied   AccessStatus = "denied"
	StatusExpired  AccessStatus = "expired"
)

var validAccessStatuses = map[AccessStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusDenied:   true,
	StatusExpired:  true,
}

// accessStatusTransitions encodes the monotonic lifecycle: a pending request
// is either approved or denied, an approved grant can only expire, and
// denied/expired are terminal.
var accessStatusTransitions = map[AccessStatus][]AccessStatus{
	StatusPending: {
		StatusApproved,
		StatusDenied,
	},
	StatusApproved: {
		StatusExpired,
	},
	StatusDenied: {},
	StatusExpired: {},
}

func (s AccessStatus) String() string {
	return string(s)
}

func (s AccessStatus) IsValid() bool {
	return validAccessStatuses[s]
}

func (s AccessStatus) CanTransitionTo(newStatus AccessStatus) bool {
	allowed, ok := accessStatusTransitions[s]
	if !ok {
		return false
	}

	for _, a := range allowed {
		if a == newStatus {
			return true
		}
	}
	return false
}

func (s AccessStatus) IsPending() bool {
	return s == StatusPending
}

func (s AccessStatus) IsApproved() bool {
	return s == StatusApproved
}

func (s AccessStatus) IsDenied() bool {
	return s == StatusDenied
}

func (s AccessStatus) IsExpired() bool {
	return s == StatusExpired
}

// IsTerminal reports whether no further transitions are possible.
func (s AccessStatus) IsTerminal() bool {
	return len(accessStatusTransitions[s]) == 0
}

func NewAccessStatus(s string) (AccessStatus, error) {
	status := AccessStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid access status: %s", s)
	}
	return status, nil
}
