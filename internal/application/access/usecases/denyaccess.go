package usecases

import (
	"context"
	"crypto/subtle"

	"devfolio/internal/domain/access"
	"devfolio/internal/shared/errors"
	"devfolio/internal/shared/logger"
)

type DenyAccessCommand struct {
	GuestID string
	Secret  string
}

type DenyAccessResult struct {
	GuestID       string
	Name          string
	AlreadyDenied bool
}

type DenyAccessUseCase struct {
	accessRepo  access.GuestAccessRepository
	adminSecret string
	logger      logger.Interface
}

func NewDenyAccessUseCase(
	accessRepo access.GuestAccessRepository,
	adminSecret string,
	logger logger.Interface,
) *DenyAccessUseCase {
	return &DenyAccessUseCase{
		accessRepo:  accessRepo,
		adminSecret: adminSecret,
		logger:      logger,
	}
}

func (uc *DenyAccessUseCase) Execute(ctx context.Context, cmd DenyAccessCommand) (*DenyAccessResult, error) {
	if subtle.ConstantTimeCompare([]byte(cmd.Secret), []byte(uc.adminSecret)) != 1 {
		uc.logger.Warnw("denial attempt with invalid secret", "guest_id", cmd.GuestID)
		return nil, errors.NewUnauthorizedError("Unauthorized")
	}

	record, err := uc.accessRepo.FindByGuestID(ctx, cmd.GuestID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.NewNotFoundError("Guest ID not found")
	}

	if record.Status().IsDenied() {
		return &DenyAccessResult{
			GuestID:       record.GuestID(),
			Name:          record.Name(),
			AlreadyDenied: true,
		}, nil
	}

	if err := record.Deny(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.accessRepo.Update(ctx, record); err != nil {
		uc.logger.Errorw("failed to persist denial", "guest_id", record.GuestID(), "error", err)
		return nil, errors.NewInternalError("failed to store denial")
	}

	uc.logger.Infow("access denied", "guest_id", record.GuestID(), "name", record.Name())

	return &DenyAccessResult{
		GuestID: record.GuestID(),
		Name:    record.Name(),
	}, nil
}
