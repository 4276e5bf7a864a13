package upload

import (
	"time"

	"sheetstash/internal/domain"
)

type IngestResponse struct {
	UploadID string       `json:"upload_id"`
	Columns  []string     `json:"columns"`
	Rows     []domain.Row `json:"rows"`
}

type DataResponse struct {
	Columns []string     `json:"columns"`
	Rows    []domain.Row `json:"rows"`
}

type UploadSummary struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalname"`
	StoredName   string    `json:"filename"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

func toUploadSummary(u *domain.Upload) UploadSummary {
	return UploadSummary{
		ID:           u.ID,
		OriginalName: u.OriginalName,
		StoredName:   u.StoredName,
		UploadedAt:   u.UploadedAt,
	}
}
