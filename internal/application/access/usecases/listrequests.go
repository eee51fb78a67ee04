package usecases

import (
	"context"
	"crypto/subtle"
	"time"

	"devfolio/internal/domain/access"
	"devfolio/internal/domain/access/valueobjects"
	"devfolio/internal/shared/errors"
	"devfolio/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListAccessRequestsQuery struct {
	Secret   string
	Status   string
	Page     int
	PageSize int
}

type AccessRequestItem struct {
	GuestID     string
	Name        string
	Status      string
	RequestedAt time.Time
	ApprovedAt  *time.Time
	ExpiresAt   *time.Time
}

type ListAccessRequestsResult struct {
	Items    []AccessRequestItem
	Total    int64
	Page     int
	PageSize int
}

type ListAccessRequestsUseCase struct {
	accessRepo  access.GuestAccessRepository
	adminSecret string
	logger      logger.Interface
}

func NewListAccessRequestsUseCase(
	accessRepo access.GuestAccessRepository,
	adminSecret string,
	logger logger.Interface,
) *ListAccessRequestsUseCase {
	return &ListAccessRequestsUseCase{
		accessRepo:  accessRepo,
		adminSecret: adminSecret,
		logger:      logger,
	}
}

func (uc *ListAccessRequestsUseCase) Execute(ctx context.Context, query ListAccessRequestsQuery) (*ListAccessRequestsResult, error) {
	if subtle.ConstantTimeCompare([]byte(query.Secret), []byte(uc.adminSecret)) != 1 {
		return nil, errors.NewUnauthorizedError("Unauthorized")
	}

	filter := access.AccessFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	if query.Status != "" {
		status, err := valueobjects.NewAccessStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter", query.Status)
		}
		filter.Status = &status
	}

	records, total, err := uc.accessRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list access requests", "error", err)
		return nil, errors.NewInternalError("failed to list access requests")
	}

	items := make([]AccessRequestItem, 0, len(records))
	for _, record := range records {
		items = append(items, AccessRequestItem{
			GuestID:     record.GuestID(),
			Name:        record.Name(),
			Status:      record.Status().String(),
			RequestedAt: record.RequestedAt(),
			ApprovedAt:  record.ApprovedAt(),
			ExpiresAt:   record.ExpiresAt(),
		})
	}

	return &ListAccessRequestsResult{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
