package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"sheetstash/internal/domain"

	"gorm.io/gorm"
)

type DatasetRepository struct {
	db *gorm.DB
}

func NewDatasetRepository(db *gorm.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// Columns and rows are stored as JSON text. The payload is immutable, so the
// round-trip cost is paid once on create and once per data fetch.
type datasetModel struct {
	ID      string `gorm:"column:id;primaryKey"`
	Columns string `gorm:"column:columns;type:text"`
	Rows    string `gorm:"column:rows;type:text"`
}

func (datasetModel) TableName() string { return "datasets" }

func toDatasetModel(d *domain.Dataset) (datasetModel, error) {
	columns, err := json.Marshal(d.Columns)
	if err != nil {
		return datasetModel{}, fmt.Errorf("marshal columns: %w", err)
	}
	rows, err := json.Marshal(d.Rows)
	if err != nil {
		return datasetModel{}, fmt.Errorf("marshal rows: %w", err)
	}
	return datasetModel{
		ID:      d.ID,
		Columns: string(columns),
		Rows:    string(rows),
	}, nil
}

func toDomainDataset(m datasetModel) (*domain.Dataset, error) {
	d := &domain.Dataset{ID: m.ID}
	if err := json.Unmarshal([]byte(m.Columns), &d.Columns); err != nil {
		return nil, fmt.Errorf("unmarshal columns of dataset %s: %w", m.ID, err)
	}
	if err := json.Unmarshal([]byte(m.Rows), &d.Rows); err != nil {
		return nil, fmt.Errorf("unmarshal rows of dataset %s: %w", m.ID, err)
	}
	return d, nil
}

func (r *DatasetRepository) Create(ctx context.Context, d *domain.Dataset) error {
	m, err := toDatasetModel(d)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *DatasetRepository) GetByID(ctx context.Context, id string) (*domain.Dataset, error) {
	var m datasetModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainDataset(m)
}

func (r *DatasetRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&datasetModel{}).Error
}
