package upload

import (
	"context"

	"sheetstash/internal/domain"
)

type UploadRepository interface {
	Create(ctx context.Context, u *domain.Upload) error
	GetByID(ctx context.Context, id string) (*domain.Upload, error)
	GetByIDForUser(ctx context.Context, id string, userID int64) (*domain.Upload, error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Upload, error)
	Delete(ctx context.Context, id string) error
}

type DatasetRepository interface {
	Create(ctx context.Context, d *domain.Dataset) error
	GetByID(ctx context.Context, id string) (*domain.Dataset, error)
	Delete(ctx context.Context, id string) error
}
