package access

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	vo "devfolio/internal/domain/access/valueobjects"
)

const (
	// AccessDuration is the fixed lifetime of an approved grant. It is not
	// configurable: expiresAt is always approvedAt + AccessDuration, with no
	// partial or renewed extensions.
	AccessDuration = 24 * time.Hour

	// MinNameLength is the minimum requester name length after trimming.
	MinNameLength = 2

	// MaxNameLength bounds the stored display name.
	MaxNameLength = 100
)

// GuestAccess is the aggregate for one guest access request and, after
// approval, the resulting time-bounded grant. The guest id is the record's
// immutable identity and the sole credential a visitor holds.
type GuestAccess struct {
	guestID     string
	name        string
	status      vo.AccessStatus
	requestedAt time.Time
	approvedAt  *time.Time
	expiresAt   *time.Time
}

// NewGuestAccess creates a pending access request for the given requester
// name. A fresh 128-bit random identifier is minted as the guest id.
func NewGuestAccess(name string) (*GuestAccess, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < MinNameLength {
		return nil, fmt.Errorf("name must be at least %d characters", MinNameLength)
	}
	if len(trimmed) > MaxNameLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", MaxNameLength)
	}

	return &GuestAccess{
		guestID:     uuid.NewString(),
		name:        trimmed,
		status:      vo.StatusPending,
		requestedAt: time.Now().UTC(),
	}, nil
}

// ReconstructGuestAccess rebuilds a guest access record from persistence.
func ReconstructGuestAccess(
	guestID string,
	name string,
	status vo.AccessStatus,
	requestedAt time.Time,
	approvedAt *time.Time,
	expiresAt *time.Time,
) (*GuestAccess, error) {
	if guestID == "" {
		return nil, fmt.Errorf("guest ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &GuestAccess{
		guestID:     guestID,
		name:        name,
		status:      status,
		requestedAt: requestedAt,
		approvedAt:  approvedAt,
		expiresAt:   expiresAt,
	}, nil
}

func (g *GuestAccess) GuestID() string {
	return g.guestID
}

func (g *GuestAccess) Name() string {
	return g.name
}

func (g *GuestAccess) Status() vo.AccessStatus {
	return g.status
}

func (g *GuestAccess) RequestedAt() time.Time {
	return g.requestedAt
}

func (g *GuestAccess) ApprovedAt() *time.Time {
	return g.approvedAt
}

func (g *GuestAccess) ExpiresAt() *time.Time {
	return g.expiresAt
}

// Approve transitions a pending request to approved and stamps the expiry
// exactly AccessDuration after the approval instant. Approving an already
// approved record is an error; callers treat that case as an idempotent
// confirmation without calling Approve again.
func (g *GuestAccess) Approve(now time.Time) error {
	if !g.status.CanTransitionTo(vo.StatusApproved) {
		return fmt.Errorf("cannot approve record with status %s", g.status)
	}

	approvedAt := now.UTC()
	expiresAt := approvedAt.Add(AccessDuration)

	g.status = vo.StatusApproved
	g.approvedAt = &approvedAt
	g.expiresAt = &expiresAt

	return nil
}

// Deny transitions a pending request to the denied terminal state.
func (g *GuestAccess) Deny() error {
	if !g.status.CanTransitionTo(vo.StatusDenied) {
		return fmt.Errorf("cannot deny record with status %s", g.status)
	}

	g.status = vo.StatusDenied
	return nil
}

// IsExpiredAt reports whether an approved grant has passed its expiry at the
// given instant. Records that were never approved have no expiry and always
// report false.
func (g *GuestAccess) IsExpiredAt(now time.Time) bool {
	if !g.status.IsApproved() || g.expiresAt == nil {
		return false
	}
	return now.After(*g.expiresAt)
}

// MarkExpired transitions an approved grant to expired. Expiry is detected
// lazily on read; there is no background sweeper.
func (g *GuestAccess) MarkExpired() error {
	if !g.status.CanTransitionTo(vo.StatusExpired) {
		return fmt.Errorf("cannot expire record with status %s", g.status)
	}

	g.status = vo.StatusExpired
	return nil
}

// Validate checks the aggregate's invariants: approvedAt and expiresAt are
// set if and only if the record is or has been approved, and the expiry is
// exactly AccessDuration after approval.
func (g *GuestAccess) Validate() error {
	if g.guestID == "" {
		return fmt.Errorf("guest ID is required")
	}
	if g.name == "" {
		return fmt.Errorf("name is required")
	}
	if !g.status.IsValid() {
		return fmt.Errorf("invalid status: %s", g.status)
	}

	hasApproval := g.approvedAt != nil && g.expiresAt != nil
	wasApproved := g.status.IsApproved() || g.status.IsExpired()

	if wasApproved && !hasApproval {
		return fmt.Errorf("approved record is missing approval timestamps")
	}
	if !wasApproved && (g.approvedAt != nil || g.expiresAt != nil) {
		return fmt.Errorf("unapproved record must not carry approval timestamps")
	}
	if hasApproval && !g.expiresAt.Equal(g.approvedAt.Add(AccessDuration)) {
		return fmt.Errorf("expiry must be exactly %s after approval", AccessDuration)
	}

	return nil
}
