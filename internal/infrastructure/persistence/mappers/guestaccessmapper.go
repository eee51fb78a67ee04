package mappers

import (
	"fmt"
	"time"

	"devfolio/internal/domain/access"
	vo "devfolio/internal/domain/access/valueobjects"
	"devfolio/internal/infrastructure/persistence/models"
)

// GuestAccessMapper handles the conversion between GuestAccess domain
// entities and persistence models.
type GuestAccessMapper interface {
	ToModel(g *access.GuestAccess) *models.GuestAccessModel
	ToDomain(model *models.GuestAccessModel) (*access.GuestAccess, error)
}

type GuestAccessMapperImpl struct{}

func NewGuestAccessMapper() GuestAccessMapper {
	return &GuestAccessMapperImpl{}
}

func (m *GuestAccessMapperImpl) ToModel(g *access.GuestAccess) *models.GuestAccessModel {
	model := &models.GuestAccessModel{
		GuestID:     g.GuestID(),
		Name:        g.Name(),
		Status:      g.Status().String(),
		RequestedAt: g.RequestedAt().UnixMilli(),
	}

	if g.ApprovedAt() != nil {
		approved := g.ApprovedAt().UnixMilli()
		model.ApprovedAt = &approved
	}

	if g.ExpiresAt() != nil {
		expires := g.ExpiresAt().UnixMilli()
		model.ExpiresAt = &expires
	}

	return model
}

func (m *GuestAccessMapperImpl) ToDomain(model *models.GuestAccessModel) (*access.GuestAccess, error) {
	status, err := vo.NewAccessStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in stored record %s: %w", model.GuestID, err)
	}

	var approvedAt, expiresAt *time.Time
	if model.ApprovedAt != nil {
		t := time.UnixMilli(*model.ApprovedAt).UTC()
		approvedAt = &t
	}
	if model.ExpiresAt != nil {
		t := time.UnixMilli(*model.ExpiresAt).UTC()
		expiresAt = &t
	}

	record, err := access.ReconstructGuestAccess(
		model.GuestID,
		model.Name,
		status,
		time.UnixMilli(model.RequestedAt).UTC(),
		approvedAt,
		expiresAt,
	)
	if err != nil {
		return nil, err
	}

	// A row that violates the approval-timestamp invariant (an approved
	// record with a NULL expiry, say) must fail here rather than surface a
	// half-valid aggregate to the usecases.
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("corrupt stored record %s: %w", model.GuestID, err)
	}

	return record, nil
}
