package admin

import (
	"context"
	"errors"
	"log"
	"sort"
	"strconv"

	"sheetstash/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	users    UserRepository
	uploads  UploadRepository
	datasets DatasetRepository
}

func NewService(users UserRepository, uploads UploadRepository, datasets DatasetRepository) *Service {
	return &Service{users: users, uploads: uploads, datasets: datasets}
}

// ListUsers returns every user profile, newest first.
func (s *Service) ListUsers(ctx context.Context) ([]UserSummary, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, toUserSummary(u))
	}
	return out, nil
}

// ComputeReport scans every upload once, groups by owner, and cross-references
// the user directory. Linear in total upload count; datasets are resolved only
// for size estimation.
func (s *Service) ComputeReport(ctx context.Context) (*StatsResponse, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	uploads, err := s.uploads.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Group by owner, keeping first-seen order for a stable report.
	groups := make(map[int64][]*domain.Upload)
	var owners []int64
	for _, up := range uploads {
		if _, seen := groups[up.UserID]; !seen {
			owners = append(owners, up.UserID)
		}
		groups[up.UserID] = append(groups[up.UserID], up)
	}

	report := &StatsResponse{
		TotalUsers:   totalUsers,
		TotalUploads: int64(len(uploads)),
		UserStats:    make([]UserStatEntry, 0, len(owners)),
	}

	for _, ownerID := range owners {
		owner, err := s.users.GetByID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Orphaned uploads must not crash the report.
				log.Printf("stats: skipping uploads of missing user %d", ownerID)
				continue
			}
			return nil, err
		}

		entry := UserStatEntry{User: toUserSummary(owner)}
		for _, up := range groups[ownerID] {
			entry.Uploads++
			entry.StorageSize += s.datasetSize(ctx, up)
			if entry.LastUpload == nil || up.UploadedAt.After(*entry.LastUpload) {
				t := up.UploadedAt
				entry.LastUpload = &t
			}
		}
		report.TotalStorageSize += entry.StorageSize
		report.UserStats = append(report.UserStats, entry)
	}

	sort.SliceStable(report.UserStats, func(i, j int) bool {
		return report.UserStats[i].Uploads > report.UserStats[j].Uploads
	})

	return report, nil
}

// ListUserUploads is the admin drill-down into one user's uploads. A corrupt
// dataset reference zeroes that entry's shape instead of failing the call.
func (s *Service) ListUserUploads(ctx context.Context, rawUserID string) (*UserUploadsResponse, error) {
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil || userID <= 0 {
		return nil, ErrInvalidUserID
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	uploads, err := s.uploads.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &UserUploadsResponse{
		User:    toUserSummary(user),
		Uploads: make([]AnnotatedUpload, 0, len(uploads)),
	}
	for _, up := range uploads {
		entry := AnnotatedUpload{
			ID:           up.ID,
			OriginalName: up.OriginalName,
			StoredName:   up.StoredName,
			UploadedAt:   up.UploadedAt,
		}
		if ds := s.lookupDataset(ctx, up); ds != nil {
			entry.Columns = len(ds.Columns)
			entry.Rows = len(ds.Rows)
			entry.StorageSize = ds.EstimatedSize()
		}
		resp.Uploads = append(resp.Uploads, entry)
	}
	return resp, nil
}

func (s *Service) datasetSize(ctx context.Context, up *domain.Upload) int64 {
	if ds := s.lookupDataset(ctx, up); ds != nil {
		return ds.EstimatedSize()
	}
	return 0
}

func (s *Service) lookupDataset(ctx context.Context, up *domain.Upload) *domain.Dataset {
	if up.DatasetID == "" {
		return nil
	}
	ds, err := s.datasets.GetByID(ctx, up.DatasetID)
	if err != nil {
		log.Printf("stats: dataset %s of upload %s unavailable: %v", up.DatasetID, up.ID, err)
		return nil
	}
	return ds
}
