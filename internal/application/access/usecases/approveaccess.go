package usecases

import (
	"context"
	"crypto/subtle"
	"time"

	"devfolio/internal/domain/access"
	"devfolio/internal/shared/errors"
	"devfolio/internal/shared/logger"
)

type ApproveAccessCommand struct {
	GuestID string
	Secret  string
}

type ApproveAccessResult struct {
	GuestID         string
	Name            string
	ExpiresAt       time.Time
	AlreadyApproved bool
}

type ApproveAccessUseCase struct {
	accessRepo  access.GuestAccessRepository
	adminSecret string
	logger      logger.Interface
}

func NewApproveAccessUseCase(
	accessRepo access.GuestAccessRepository,
	adminSecret string,
	logger logger.Interface,
) *ApproveAccessUseCase {
	return &ApproveAccessUseCase{
		accessRepo:  accessRepo,
		adminSecret: adminSecret,
		logger:      logger,
	}
}

func (uc *ApproveAccessUseCase) Execute(ctx context.Context, cmd ApproveAccessCommand) (*ApproveAccessResult, error) {
	if subtle.ConstantTimeCompare([]byte(cmd.Secret), []byte(uc.adminSecret)) != 1 {
		uc.logger.Warnw("approval attempt with invalid secret", "guest_id", cmd.GuestID)
		return nil, errors.NewUnauthorizedError("Unauthorized")
	}

	record, err := uc.accessRepo.FindByGuestID(ctx, cmd.GuestID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.NewNotFoundError("Guest ID not found")
	}

	// Repeated approval clicks are safe: the original expiry clock is never
	// reset.
	if record.Status().IsApproved() {
		return &ApproveAccessResult{
			GuestID:         record.GuestID(),
			Name:            record.Name(),
			ExpiresAt:       *record.ExpiresAt(),
			AlreadyApproved: true,
		}, nil
	}

	if err := record.Approve(time.Now().UTC()); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.accessRepo.Update(ctx, record); err != nil {
		uc.logger.Errorw("failed to persist approval", "guest_id", record.GuestID(), "error", err)
		return nil, errors.NewInternalError("failed to store approval")
	}

	uc.logger.Infow("access approved",
		"guest_id", record.GuestID(),
		"name", record.Name(),
		"expires_at", record.ExpiresAt())

	return &ApproveAccessResult{
		GuestID:   record.GuestID(),
		Name:      record.Name(),
		ExpiresAt: *record.ExpiresAt(),
	}, nil
}
