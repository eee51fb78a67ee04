package usecases

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"devfolio/internal/domain/access"
	"devfolio/internal/shared/errors"
	"devfolio/internal/shared/logger"
)

type RequestAccessCommand struct {
	Name string
	// BaseURL is the externally visible origin used to build the approval
	// link, derived from the incoming request by the transport layer.
	BaseURL string
}

type RequestAccessResult struct {
	GuestID string
	Message string
}

type RequestAccessUseCase struct {
	accessRepo  access.GuestAccessRepository
	notifier    AccessNotifier
	adminSecret string
	sanitizer   *bluemonday.Policy
	logger      logger.Interface
}

func NewRequestAccessUseCase(
	accessRepo access.GuestAccessRepository,
	notifier AccessNotifier,
	adminSecret string,
	logger logger.Interface,
) *RequestAccessUseCase {
	return &RequestAccessUseCase{
		accessRepo:  accessRepo,
		notifier:    notifier,
		adminSecret: adminSecret,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger,
	}
}

func (uc *RequestAccessUseCase) Execute(ctx context.Context, cmd RequestAccessCommand) (*RequestAccessResult, error) {
	// Strip any markup from the name. StrictPolicy entity-encodes the text
	// it keeps, so decode afterwards: names like O'Brien must be stored as
	// typed, and escaping stays at the HTML render sites.
	name := strings.TrimSpace(html.UnescapeString(uc.sanitizer.Sanitize(cmd.Name)))
	if len(name) < access.MinNameLength {
		return nil, errors.NewValidationError(
			fmt.Sprintf("A valid name (at least %d characters) is required to request access.", access.MinNameLength))
	}

	record, err := access.NewGuestAccess(name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accessRepo.Save(ctx, record); err != nil {
		uc.logger.Errorw("failed to persist access request", "error", err)
		return nil, errors.NewInternalError("failed to store access request")
	}

	approvalURL := uc.buildApprovalURL(cmd.BaseURL, record.GuestID())

	uc.logger.Infow("access requested",
		"guest_id", record.GuestID(),
		"name", record.Name())

	// Notification is best-effort: the record is already persisted and the
	// logged link lets the admin approve manually if delivery fails.
	if err := uc.notifier.NotifyAccessRequested(record.Name(), record.GuestID(), approvalURL); err != nil {
		uc.logger.Warnw("admin notification failed, approval link logged as fallback",
			"guest_id", record.GuestID(),
			"approval_url", approvalURL,
			"error", err)
	}

	return &RequestAccessResult{
		GuestID: record.GuestID(),
		Message: "Access requested. Please wait for approval.",
	}, nil
}

func (uc *RequestAccessUseCase) buildApprovalURL(baseURL, guestID string) string {
	params := url.Values{}
	params.Set("guestId", guestID)
	params.Set("secret", uc.adminSecret)
	return fmt.Sprintf("%s/api/access/approve?%s", strings.TrimRight(baseURL, "/"), params.Encode())
}
