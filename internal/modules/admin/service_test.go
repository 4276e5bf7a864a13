package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"sheetstash/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Mock User Repository
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ListAll(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock Upload Repository
type mockUploadRepo struct {
	mock.Mock
}

func (m *mockUploadRepo) ListAll(ctx context.Context) ([]*domain.Upload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Upload), args.Error(1)
}

func (m *mockUploadRepo) ListByUserID(ctx context.Context, userID int64) ([]*domain.Upload, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Upload), args.Error(1)
}

// Mock Dataset Repository
type mockDatasetRepo struct {
	mock.Mock
}

func (m *mockDatasetRepo) GetByID(ctx context.Context, id string) (*domain.Dataset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}

func sampleDataset(id string) *domain.Dataset {
	return &domain.Dataset{
		ID:      id,
		Columns: []string{"Month", "Revenue"},
		Rows: []domain.Row{
			{"Month": domain.TextCell("Jan"), "Revenue": domain.NumberCell(1200)},
		},
	}
}

func TestComputeReport_TotalsAndGrouping(t *testing.T) {
	users := new(mockUserRepo)
	uploads := new(mockUploadRepo)
	datasets := new(mockDatasetRepo)
	svc := NewService(users, uploads, datasets)

	now := time.Now()
	alice := &domain.User{ID: 1, Name: "Alice", Role: domain.RoleUser}
	bob := &domain.User{ID: 2, Name: "Bob", Role: domain.RoleUser}

	users.On("Count", mock.Anything).Return(int64(3), nil)
	uploads.On("ListAll", mock.Anything).Return([]*domain.Upload{
		{ID: "a1", UserID: 1, DatasetID: "d1", UploadedAt: now.Add(-2 * time.Hour)},
		{ID: "b1", UserID: 2, DatasetID: "d2", UploadedAt: now.Add(-3 * time.Hour)},
		{ID: "a2", UserID: 1, DatasetID: "d3", UploadedAt: now},
	}, nil)
	users.On("GetByID", mock.Anything, int64(1)).Return(alice, nil)
	users.On("GetByID", mock.Anything, int64(2)).Return(bob, nil)
	for _, id := range []string{"d1", "d2", "d3"} {
		datasets.On("GetByID", mock.Anything, id).Return(sampleDataset(id), nil)
	}

	report, err := svc.ComputeReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), report.TotalUsers)
	assert.Equal(t, int64(3), report.TotalUploads)
	require.Len(t, report.UserStats, 2)

	// Sorted by upload count descending.
	assert.Equal(t, "Alice", report.UserStats[0].User.Name)
	assert.Equal(t, 2, report.UserStats[0].Uploads)
	assert.Equal(t, "Bob", report.UserStats[1].User.Name)
	assert.Equal(t, 1, report.UserStats[1].Uploads)

	// Per-entry figures add up to the totals.
	var uploadSum int
	var sizeSum int64
	for _, e := range report.UserStats {
		uploadSum += e.Uploads
		sizeSum += e.StorageSize
	}
	assert.Equal(t, int(report.TotalUploads), uploadSum)
	assert.Equal(t, report.TotalStorageSize, sizeSum)

	// Last upload is the group's max timestamp.
	require.NotNil(t, report.UserStats[0].LastUpload)
	assert.True(t, report.UserStats[0].LastUpload.Equal(now))
}

func TestComputeReport_SkipsMissingOwner(t *testing.T) {
	users := new(mockUserRepo)
	uploads := new(mockUploadRepo)
	datasets := new(mockDatasetRepo)
	svc := NewService(users, uploads, datasets)

	alice := &domain.User{ID: 1, Name: "Alice"}
	users.On("Count", mock.Anything).Return(int64(1), nil)
	uploads.On("ListAll", mock.Anything).Return([]*domain.Upload{
		{ID: "a1", UserID: 1, DatasetID: "d1", UploadedAt: time.Now()},
		{ID: "z1", UserID: 42, DatasetID: "d2", UploadedAt: time.Now()},
	}, nil)
	users.On("GetByID", mock.Anything, int64(1)).Return(alice, nil)
	users.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)
	datasets.On("GetByID", mock.Anything, "d1").Return(sampleDataset("d1"), nil)

	report, err := svc.ComputeReport(context.Background())
	require.NoError(t, err)

	// Orphaned uploads still count globally but produce no per-user entry.
	assert.Equal(t, int64(2), report.TotalUploads)
	require.Len(t, report.UserStats, 1)
	assert.Equal(t, "Alice", report.UserStats[0].User.Name)
}

func TestComputeReport_Empty(t *testing.T) {
	users := new(mockUserRepo)
	uploads := new(mockUploadRepo)
	svc := NewService(users, uploads, new(mockDatasetRepo))

	users.On("Count", mock.Anything).Return(int64(0), nil)
	uploads.On("ListAll", mock.Anything).Return([]*domain.Upload{}, nil)

	report, err := svc.ComputeReport(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.TotalUploads)
	assert.Zero(t, report.TotalStorageSize)
	assert.Empty(t, report.UserStats)
}

func TestListUserUploads_Annotation(t *testing.T) {
	users := new(mockUserRepo)
	uploads := new(mockUploadRepo)
	datasets := new(mockDatasetRepo)
	svc := NewService(users, uploads, datasets)

	alice := &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	now := time.Now()

	users.On("GetByID", mock.Anything, int64(1)).Return(alice, nil)
	uploads.On("ListByUserID", mock.Anything, int64(1)).Return([]*domain.Upload{
		{ID: "a1", UserID: 1, OriginalName: "sales.xlsx", DatasetID: "d1", UploadedAt: now},
		{ID: "a2", UserID: 1, OriginalName: "broken.xlsx", DatasetID: "dx", UploadedAt: now},
	}, nil)
	datasets.On("GetByID", mock.Anything, "d1").Return(sampleDataset("d1"), nil)
	datasets.On("GetByID", mock.Anything, "dx").Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.ListUserUploads(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "Alice", resp.User.Name)
	require.Len(t, resp.Uploads, 2)

	assert.Equal(t, 2, resp.Uploads[0].Columns)
	assert.Equal(t, 1, resp.Uploads[0].Rows)
	assert.Positive(t, resp.Uploads[0].StorageSize)

	// A corrupt dataset reference zeroes the entry instead of failing the call.
	assert.Zero(t, resp.Uploads[1].Columns)
	assert.Zero(t, resp.Uploads[1].Rows)
	assert.Zero(t, resp.Uploads[1].StorageSize)
}

func TestListUserUploads_InvalidID(t *testing.T) {
	svc := NewService(new(mockUserRepo), new(mockUploadRepo), new(mockDatasetRepo))

	for _, raw := range []string{"", "abc", "-3", "1.5"} {
		_, err := svc.ListUserUploads(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidUserID, "id %q", raw)
	}
}

func TestListUserUploads_UnknownUser(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockUploadRepo), new(mockDatasetRepo))

	users.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ListUserUploads(context.Background(), "9")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockUploadRepo), new(mockDatasetRepo))

	users.On("ListAll", mock.Anything).Return([]*domain.User{
		{ID: 2, Name: "Newer"},
		{ID: 1, Name: "Older"},
	}, nil)

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Newer", got[0].Name)
}

func TestListUsers_StoreFailure(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockUploadRepo), new(mockDatasetRepo))

	users.On("ListAll", mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.ListUsers(context.Background())
	assert.Error(t, err)
}
