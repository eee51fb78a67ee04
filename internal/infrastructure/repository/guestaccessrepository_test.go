package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"devfolio/internal/domain/access"
	vo "devfolio/internal/domain/access/valueobjects"
	"devfolio/internal/infrastructure/persistence/models"
	"devfolio/internal/shared/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.GuestAccessModel{}))
	return db
}

func TestGuestAccessRepository_SaveAndFind(t *testing.T) {
	repo := NewGuestAccessRepository(newTestDB(t))
	ctx := context.Background()

	record, err := access.NewGuestAccess("Jane Visitor")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, record))

	found, err := repo.FindByGuestID(ctx, record.GuestID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, record.GuestID(), found.GuestID())
	assert.Equal(t, "Jane Visitor", found.Name())
	assert.True(t, found.Status().IsPending())
	assert.Nil(t, found.ApprovedAt())
	assert.Nil(t, found.ExpiresAt())
	assert.WithinDuration(t, record.RequestedAt(), found.RequestedAt(), time.Millisecond)
}

func TestGuestAccessRepository_FindByGuestID_NotFound(t *testing.T) {
	repo := NewGuestAccessRepository(newTestDB(t))

	found, err := repo.FindByGuestID(context.Background(), "no-such-guest")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestGuestAccessRepository_Save_DuplicateGuestID(t *testing.T) {
	db := newTestDB(t)
	repo := NewGuestAccessRepository(db)
	ctx := context.Background()

	record, err := access.ReconstructGuestAccess(
		"guest-1", "Jane Visitor", vo.StatusPending,
		time.Now().UTC(), nil, nil,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, record))

	err = repo.Save(ctx, record)
	require.Error(t, err, "guest_id carries a unique index")
}

func TestGuestAccessRepository_Update_ApprovalRoundTrip(t *testing.T) {
	repo := NewGuestAccessRepository(newTestDB(t))
	ctx := context.Background()

	record, err := access.NewGuestAccess("Jane Visitor")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, record))

	approvedAt := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, record.Approve(approvedAt))
	require.NoError(t, repo.Update(ctx, record))

	found, err := repo.FindByGuestID(ctx, record.GuestID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.Status().IsApproved())
	require.NotNil(t, found.ApprovedAt())
	require.NotNil(t, found.ExpiresAt())
	assert.Equal(t, approvedAt, *found.ApprovedAt())
	assert.Equal(t, approvedAt.Add(access.AccessDuration), *found.ExpiresAt())
}

func TestGuestAccessRepository_Update_UnknownRecord(t *testing.T) {
	repo := NewGuestAccessRepository(newTestDB(t))

	record, err := access.ReconstructGuestAccess(
		"ghost", "Jane Visitor", vo.StatusDenied,
		time.Now().UTC(), nil, nil,
	)
	require.NoError(t, err)

	err = repo.Update(context.Background(), record)
	require.Error(t, err)
}

func TestGuestAccessRepository_List(t *testing.T) {
	repo := NewGuestAccessRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)
	statuses := []vo.AccessStatus{vo.StatusPending, vo.StatusPending, vo.StatusDenied}
	for i, status := range statuses {
		record, err := access.ReconstructGuestAccess(
			string(rune('a'+i))+"-guest", "Visitor "+string(rune('A'+i)), status,
			base.Add(time.Duration(i)*time.Minute), nil, nil,
		)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, record))
	}

	records, total, err := repo.List(ctx, access.AccessFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, records, 3)
	// Newest request first.
	assert.Equal(t, "c-guest", records[0].GuestID())
	assert.Equal(t, "a-guest", records[2].GuestID())

	pending := vo.StatusPending
	records, total, err = repo.List(ctx, access.AccessFilter{Status: &pending, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.True(t, r.Status().IsPending())
	}

	records, total, err = repo.List(ctx, access.AccessFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, records, 1)
}

func TestGuestAccessRepository_WithTransaction_RollsBack(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewGuestAccessRepository(gormDB)
	ctx := context.Background()

	record, err := access.NewGuestAccess("Jane Visitor")
	require.NoError(t, err)

	failed := errors.New("abort")
	err = db.WithTransaction(ctx, gormDB, func(txCtx context.Context) error {
		if err := repo.Save(txCtx, record); err != nil {
			return err
		}
		return failed
	})
	require.ErrorIs(t, err, failed)

	// The save joined the rolled-back transaction, so nothing was persisted.
	found, err := repo.FindByGuestID(ctx, record.GuestID())
	require.NoError(t, err)
	assert.Nil(t, found)
}
