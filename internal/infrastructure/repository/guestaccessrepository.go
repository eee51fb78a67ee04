package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"devfolio/internal/domain/access"
	"devfolio/internal/infrastructure/persistence/mappers"
	"devfolio/internal/infrastructure/persistence/models"
	db "devfolio/internal/shared/db"
)

type GuestAccessRepository struct {
	db     *gorm.DB
	mapper mappers.GuestAccessMapper
}

func NewGuestAccessRepository(db *gorm.DB) *GuestAccessRepository {
	return &GuestAccessRepository{
		db:     db,
		mapper: mappers.NewGuestAccessMapper(),
	}
}

func (r *GuestAccessRepository) Save(ctx context.Context, g *access.GuestAccess) error {
	model := r.mapper.ToModel(g)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save guest access record: %w", err)
	}

	return nil
}

func (r *GuestAccessRepository) Update(ctx context.Context, g *access.GuestAccess) error {
	model := r.mapper.ToModel(g)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces writes of cleared nullable columns; Updates alone skips
	// zero values.
	result := tx.
		Model(&models.GuestAccessModel{}).
		Where("guest_id = ?", model.GuestID).
		Select("status", "approved_at", "expires_at").
		Updates(map[string]interface{}{
			"status":      model.Status,
			"approved_at": model.ApprovedAt,
			"expires_at":  model.ExpiresAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update guest access record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("guest access record not found: %s", model.GuestID)
	}

	return nil
}

func (r *GuestAccessRepository) FindByGuestID(ctx context.Context, guestID string) (*access.GuestAccess, error) {
	var model models.GuestAccessModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("guest_id = ?", guestID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find guest access record: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *GuestAccessRepository) List(ctx context.Context, filter access.AccessFilter) ([]*access.GuestAccess, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.GuestAccessModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count guest access records: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var modelList []models.GuestAccessModel
	if err := query.
		Order("requested_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list guest access records: %w", err)
	}

	records := make([]*access.GuestAccess, 0, len(modelList))
	for i := range modelList {
		record, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}

	return records, total, nil
}
