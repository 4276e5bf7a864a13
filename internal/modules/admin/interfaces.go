package admin

import (
	"context"

	"sheetstash/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListAll(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type UploadRepository interface {
	ListAll(ctx context.Context) ([]*domain.Upload, error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Upload, error)
}

type DatasetRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Dataset, error)
}
