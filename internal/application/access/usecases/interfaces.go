package usecases

import "context"

// AccessNotifier delivers the out-of-band admin notification for a new
// access request. Delivery is best-effort: callers log failures and continue.
type AccessNotifier interface {
	NotifyAccessRequested(name, guestID, approvalURL string) error
}

type RequestAccessExecutor interface {
	Execute(ctx context.Context, cmd RequestAccessCommand) (*RequestAccessResult, error)
}

type ApproveAccessExecutor interface {
	Execute(ctx context.Context, cmd ApproveAccessCommand) (*ApproveAccessResult, error)
}

type DenyAccessExecutor interface {
	Execute(ctx context.Context, cmd DenyAccessCommand) (*DenyAccessResult, error)
}

type CheckAccessExecutor interface {
	Execute(ctx context.Context, query CheckAccessQuery) (*CheckAccessResult, error)
}

type ListAccessRequestsExecutor interface {
	Execute(ctx context.Context, query ListAccessRequestsQuery) (*ListAccessRequestsResult, error)
}
