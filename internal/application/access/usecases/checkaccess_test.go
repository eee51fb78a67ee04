package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio/internal/domain/access"
	vo "devfolio/internal/domain/access/valueobjects"
)

func TestCheckAccessUseCase_Execute_UnknownGuestID(t *testing.T) {
	mockRepo := &mockGuestAccessRepository{
		FindByGuestIDFunc: func(ctx context.Context, guestID string) (*access.GuestAccess, error) {
			return nil, nil
		},
	}

	uc := NewCheckAccessUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CheckAccessQuery{GuestID: "no-such-guest"})

	require.NoError(t, err, "unknown ids must not error")
	require.NotNil(t, result)
	assert.False(t, result.Access)
	assert.Equal(t, CheckReasonInvalidID, result.Reason)
	assert.Equal(t, "Guest ID not found.", result.Message)
}

func TestCheckAccessUseCase_Execute_Pending(t *testing.T) {
	record := pendingRecord(t, "guest-1")
	mockRepo := &mockGuestAccessRepository{
		FindByGuestIDFunc: func(ctx context.Context, guestID string) (*access.GuestAccess, error) {
			return record, nil
		},
	}

	uc := NewCheckAccessUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CheckAccessQuery{GuestID: "guest-1"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Access)
	assert.Equal(t, CheckReasonPending, result.Reason)
	assert.Equal(t, "Access request from Jane Visitor is pending approval.", result.Message)
}

func TestCheckAccessUseCase_Execute_ApprovedWithinWindow(t *testing.T) {
	record := approvedRecord(t, "guest-1", time.Now().UTC().Add(2*time.Hour))
	updateCalled := false
	mockRepo := &mockGuestAccessRepository{
		FindByGuestIDFunc: func(ctx context.Context, guestID string) (*access.GuestAccess, error) {
			return record, nil
		},
		UpdateFunc: func(ctx context.Context, g *access.GuestAccess) error {
			updateCalled = true
			return nil
		},
	}

	uc := NewCheckAccessUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CheckAccessQuery{GuestID: "guest-1"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Access)
	assert.Equal(t, CheckReasonApproved, result.Reason)
	assert.Equal(t, "Access granted.", result.Message)
	assert.False(t, updateCalled)
}

func TestCheckAccessUseCase_Execute_LazyExpiry(t *testing.T) {
	record := approvedRecord(t, "guest-1", time.Now().UTC().Add(-time.Minute))

	var persisted *access.GuestAccess
	mockRepo := &mockGuestAccessRepository{
		FindByGuestIDFunc: func(ctx context.Context, guestID string) (*access.GuestAccess, error) {
			return record, nil
		},
		UpdateFunc: func(ctx context.Context, g *access.GuestAccess) error {
			persisted = g
			return nil
		},
	}

	uc := NewCheckAccessUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CheckAccessQuery{GuestID: "guest-1"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Access)
	assert.Equal(t, CheckReasonExpired, result.Reason)
	assert.Equal(t, "Access has expired. Please request again.", result.Message)

	require.NotNil(t, persisted, "expiry must be written back")
	assert.True(t, persisted.Status().IsExpired())
}

func TestCheckAccessUseCase_Execute_LazyExpiryWriteFailure(t *testing.T) {
	record := approvedRecord(t, "guest-1", time.Now().UTC().Add(-time.Minute))
	mockRepo := &mockGuestAccessRepository{
		FindByGuestIDFunc: func(ctx context.Context, guestID string) (*access.GuestAccess, error) {
			return record, nil
		},
		UpdateFunc: func(ctx context.Context, g *access.GuestAccess) error {
			return errors.New("connection reset")
		},
	}

	warned := false
	log := &mockLogger{
		WarnwFunc: func(msg string, keysAndValues ...interface{}) {
			warned = true
		},
	}

	uc := NewCheckAccessUseCase(mockRepo, log)

	result, err := uc.Execute(context.Background(), CheckAccessQuery{GuestID: "guest-1"})

	require.NoError(t, err, "a failed expiry write must not fail the check")
	require.NotNil(t, result)
	assert.False(t, result.Access)
	assert.Equal(t, CheckReasonExpired, result.Reason)
	assert.True(t, warned)
}

func TestCheckAccessUseCase_Execute_TerminalStatuses(t *testing.T) {
	tests := []struct {
		name        string
		status      vo.AccessStatus
		wantReason  string
		wantMessage string
	}{
		{
			name:        "denied record",
			status:      vo.StatusDenied,
			wantReason:  CheckReasonDenied,
			wantMessage: "Access status for Jane Visitor: denied",
		},
		{
			// A record already stored as expired gets the generic status
			// report; the dedicated expired message belongs to the lazy
			// transition only.
			name:        "already expired record",
			status:      vo.StatusExpired,
			wantReason:  CheckReasonExpired,
			wantMessage: "Access status for Jane Visitor: expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var approvedAt, expiresAt *time.Time
			if tt.status == vo.StatusExpired {
				a := time.Now().UTC().Add(-48 * time.Hour)
				e := a.Add(access.AccessDuration)
				approvedAt, expiresAt = &a, &e
			}
			record, err := access.ReconstructGuestAccess(
				"guest-1", "Jane Visitor", tt.status,
				time.Now().UTC().Add(-72*time.Hour), approvedAt, expiresAt,
			)
			require.NoError(t, err)

			mockRepo := &mockGuestAccessRepository{
				FindByGuestIDFunc: func(ctx context.Context, guestID string) (*access.GuestAccess, error) {
					return record, nil
				},
			}

			uc := NewCheckAccessUseCase(mockRepo, &mockLogger{})

			result, err := uc.Execute(context.Background(), CheckAccessQuery{GuestID: "guest-1"})

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.False(t, result.Access)
			assert.Equal(t, tt.wantReason, result.Reason)
			assert.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

func TestCheckAccessUseCase_Execute_RepositoryFailure(t *testing.T) {
	mockRepo := &mockGuestAccessRepository{
		FindByGuestIDFunc: func(ctx context.Context, guestID string) (*access.GuestAccess, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := NewCheckAccessUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CheckAccessQuery{GuestID: "guest-1"})

	require.Error(t, err)
	assert.Nil(t, result)
}
