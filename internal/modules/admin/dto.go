package admin

import (
	"time"

	"sheetstash/internal/domain"
)

type UserSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserSummary(u *domain.User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// UserStatEntry is one row of the aggregate report.
type UserStatEntry struct {
	User        UserSummary `json:"user"`
	Uploads     int         `json:"uploads"`
	StorageSize int64       `json:"storage_size"`
	LastUpload  *time.Time  `json:"last_upload"`
}

// StatsResponse is the admin-facing aggregate report. Storage figures are
// estimates over serialized dataset payloads, not blob bytes on disk.
type StatsResponse struct {
	TotalUsers       int64           `json:"total_users"`
	TotalUploads     int64           `json:"total_uploads"`
	TotalStorageSize int64           `json:"total_storage_size"`
	UserStats        []UserStatEntry `json:"user_stats"`
}

// AnnotatedUpload is one upload in the per-user drill-down, annotated with
// the shape and estimated size of its dataset.
type AnnotatedUpload struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalname"`
	StoredName   string    `json:"filename"`
	UploadedAt   time.Time `json:"uploaded_at"`
	Columns      int       `json:"columns"`
	Rows         int       `json:"rows"`
	StorageSize  int64     `json:"storage_size"`
}

type UserUploadsResponse struct {
	User    UserSummary       `json:"user"`
	Uploads []AnnotatedUpload `json:"uploads"`
}
