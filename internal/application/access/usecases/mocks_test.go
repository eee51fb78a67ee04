package usecases

import (
	"context"

	"devfolio/internal/domain/access"
	"devfolio/internal/shared/logger"
)

type mockGuestAccessRepository struct {
	SaveFunc          func(ctx context.Context, g *access.GuestAccess) error
	UpdateFunc        func(ctx context.Context, g *access.GuestAccess) error
	FindByGuestIDFunc func(ctx context.Context, guestID string) (*access.GuestAccess, error)
	ListFunc          func(ctx context.Context, filter access.AccessFilter) ([]*access.GuestAccess, int64, error)
}

func (m *mockGuestAccessRepository) Save(ctx context.Context, g *access.GuestAccess) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, g)
	}
	return nil
}

func (m *mockGuestAccessRepository) Update(ctx context.Context, g *access.GuestAccess) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, g)
	}
	return nil
}

func (m *mockGuestAccessRepository) FindByGuestID(ctx context.Context, guestID string) (*access.GuestAccess, error) {
	if m.FindByGuestIDFunc != nil {
		return m.FindByGuestIDFunc(ctx, guestID)
	}
	return nil, nil
}

func (m *mockGuestAccessRepository) List(ctx context.Context, filter access.AccessFilter) ([]*access.GuestAccess, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockAccessNotifier struct {
	NotifyAccessRequestedFunc func(name, guestID, approvalURL string) error
}

func (m *mockAccessNotifier) NotifyAccessRequested(name, guestID, approvalURL string) error {
	if m.NotifyAccessRequestedFunc != nil {
		return m.NotifyAccessRequestedFunc(name, guestID, approvalURL)
	}
	return nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }
