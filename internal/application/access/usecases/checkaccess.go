package usecases

import (
	"context"
	"fmt"
	"time"

	"devfolio/internal/domain/access"
	"devfolio/internal/shared/logger"
)

const (
	CheckReasonInvalidID = "invalid_id"
	CheckReasonExpired   = "expired"
	CheckReasonApproved  = "approved"
	CheckReasonPending   = "pending"
	CheckReasonDenied    = "denied"
)

type CheckAccessQuery struct {
	GuestID string
}

type CheckAccessResult struct {
	Access  bool
	Reason  string
	Message string
}

type CheckAccessUseCase struct {
	accessRepo access.GuestAccessRepository
	logger     logger.Interface
}

func NewCheckAccessUseCase(
	accessRepo access.GuestAccessRepository,
	logger logger.Interface,
) *CheckAccessUseCase {
	return &CheckAccessUseCase{
		accessRepo: accessRepo,
		logger:     logger,
	}
}

// Execute reports the current access state for a guest id. It never returns
// a domain error for unknown or stale ids so the client guard can always
// render a response; only storage failures propagate.
func (uc *CheckAccessUseCase) Execute(ctx context.Context, query CheckAccessQuery) (*CheckAccessResult, error) {
	record, err := uc.accessRepo.FindByGuestID(ctx, query.GuestID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return &CheckAccessResult{
			Access:  false,
			Reason:  CheckReasonInvalidID,
			Message: "Guest ID not found.",
		}, nil
	}

	if record.Status().IsApproved() {
		now := time.Now().UTC()
		if record.IsExpiredAt(now) {
			if err := record.MarkExpired(); err == nil {
				// Best effort: an expired grant stays expired even when the
				// write fails, since the deadline check repeats on every call.
				if err := uc.accessRepo.Update(ctx, record); err != nil {
					uc.logger.Warnw("failed to persist expiry",
						"guest_id", record.GuestID(), "error", err)
				}
			}
			return &CheckAccessResult{
				Access:  false,
				Reason:  CheckReasonExpired,
				Message: "Access has expired. Please request again.",
			}, nil
		}
		return &CheckAccessResult{
			Access:  true,
			Reason:  CheckReasonApproved,
			Message: "Access granted.",
		}, nil
	}

	if record.Status().IsPending() {
		return &CheckAccessResult{
			Access:  false,
			Reason:  CheckReasonPending,
			Message: fmt.Sprintf("Access request from %s is pending approval.", record.Name()),
		}, nil
	}

	// Terminal statuses fall through to a generic status report. Only the
	// lazy-expiry path above uses the dedicated expired message.
	reason := CheckReasonDenied
	if record.Status().IsExpired() {
		reason = CheckReasonExpired
	}
	return &CheckAccessResult{
		Access:  false,
		Reason:  reason,
		Message: fmt.Sprintf("Access status for %s: %s", record.Name(), record.Status().String()),
	}, nil
}
