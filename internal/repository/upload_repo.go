package repository

import (
	"context"
	"time"

	"sheetstash/internal/domain"

	"gorm.io/gorm"
)

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

type uploadModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	UserID       int64     `gorm:"column:user_id;index"`
	OriginalName string    `gorm:"column:original_name"`
	StoredName   string    `gorm:"column:stored_name"`
	DatasetID    *string   `gorm:"column:dataset_id"`
	UploadedAt   time.Time `gorm:"column:uploaded_at"`
}

func (uploadModel) TableName() string { return "uploads" }

func toDomainUpload(m uploadModel) *domain.Upload {
	var datasetID string
	if m.DatasetID != nil {
		datasetID = *m.DatasetID
	}
	return &domain.Upload{
		ID:           m.ID,
		UserID:       m.UserID,
		OriginalName: m.OriginalName,
		StoredName:   m.StoredName,
		DatasetID:    datasetID,
		UploadedAt:   m.UploadedAt,
	}
}

func toUploadModel(u *domain.Upload) uploadModel {
	var datasetID *string
	if u.DatasetID != "" {
		v := u.DatasetID
		datasetID = &v
	}
	return uploadModel{
		ID:           u.ID,
		UserID:       u.UserID,
		OriginalName: u.OriginalName,
		StoredName:   u.StoredName,
		DatasetID:    datasetID,
		UploadedAt:   u.UploadedAt,
	}
}

func (r *UploadRepository) Create(ctx context.Context, u *domain.Upload) error {
	m := toUploadModel(u)
	return r.db.WithContext(ctx).Create(&m).Error
}

// GetByID fetches an upload regardless of owner (admin path).
func (r *UploadRepository) GetByID(ctx context.Context, id string) (*domain.Upload, error) {
	var m uploadModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUpload(m), nil
}

// GetByIDForUser fetches an upload only if userID owns it. A foreign id falls
// out as gorm.ErrRecordNotFound so callers cannot distinguish "not yours"
// from "does not exist".
func (r *UploadRepository) GetByIDForUser(ctx context.Context, id string, userID int64) (*domain.Upload, error) {
	var m uploadModel
	tx := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUpload(m), nil
}

func (r *UploadRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Upload, error) {
	var models []uploadModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC, id").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUploads(models), nil
}

// ListAll returns every upload system-wide, for the admin aggregation scan.
func (r *UploadRepository) ListAll(ctx context.Context) ([]*domain.Upload, error) {
	var models []uploadModel
	tx := r.db.WithContext(ctx).Order("uploaded_at DESC, id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUploads(models), nil
}

func (r *UploadRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&uploadModel{}).Error
}

func (r *UploadRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&uploadModel{}).Count(&count)
	return count, tx.Error
}

func toDomainUploads(models []uploadModel) []*domain.Upload {
	uploads := make([]*domain.Upload, 0, len(models))
	for _, m := range models {
		uploads = append(uploads, toDomainUpload(m))
	}
	return uploads
}
