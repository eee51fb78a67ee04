package access

import (
	"context"

	vo "devfolio/internal/domain/access/valueobjects"
)

// AccessFilter narrows listing queries.
type AccessFilter struct {
	Status   *vo.AccessStatus
	Page     int
	PageSize int
}

// GuestAccessRepository is the persistence contract for guest access records.
// The store exclusively owns all records; handlers never hold a record across
// calls. Implementations must guarantee atomic per-record read-modify-write.
type GuestAccessRepository interface {
	Save(ctx context.Context, g *GuestAccess) error
	Update(ctx context.Context, g *GuestAccess) error
	FindByGuestID(ctx context.Context, guestID string) (*GuestAccess, error)
	List(ctx context.Context, filter AccessFilter) ([]*GuestAccess, int64, error)
}
