package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"sheetstash/internal/domain"
	"sheetstash/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// allowedExtensions is the spreadsheet extension set. The transport layer may
// filter uploads on its own; this check runs regardless, before any bytes are
// parsed.
var allowedExtensions = map[string]bool{
	".xls":  true,
	".xlsx": true,
}

// Service owns the ingestion lifecycle: validate, parse, persist the dataset,
// persist the upload record, and later serve or cascade-delete the pair.
type Service struct {
	uploads         UploadRepository
	datasets        DatasetRepository
	blobs           storage.BlobStore
	maxFileBytes    int64
	maxDatasetBytes int64
}

func NewService(uploads UploadRepository, datasets DatasetRepository, blobs storage.BlobStore, maxFileBytes, maxDatasetBytes int64) *Service {
	return &Service{
		uploads:         uploads,
		datasets:        datasets,
		blobs:           blobs,
		maxFileBytes:    maxFileBytes,
		maxDatasetBytes: maxDatasetBytes,
	}
}

// Ingest runs the full pipeline for one uploaded file. The upload record is
// created only after the dataset persists, so a visible upload always has a
// usable dataset reference.
func (s *Service) Ingest(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*domain.Upload, *domain.Dataset, error) {
	if err := validateIntake(fileHeader, s.maxFileBytes); err != nil {
		return nil, nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, fmt.Errorf("read uploaded file: %w", err)
	}

	dataset, err := ParseSpreadsheet(data, s.maxDatasetBytes)
	if err != nil {
		return nil, nil, err
	}
	dataset.ID = uuid.New().String()

	now := time.Now()
	storedName := fmt.Sprintf("%d-%s", now.UnixMilli(), sanitizeName(fileHeader.Filename))

	if _, err := s.blobs.Save(storedName, bytes.NewReader(data)); err != nil {
		return nil, nil, fmt.Errorf("store file: %w", err)
	}

	if err := s.datasets.Create(ctx, dataset); err != nil {
		_ = s.blobs.Delete(storedName)
		return nil, nil, fmt.Errorf("save dataset: %w", err)
	}

	up := &domain.Upload{
		ID:           uuid.New().String(),
		UserID:       userID,
		OriginalName: fileHeader.Filename,
		StoredName:   storedName,
		DatasetID:    dataset.ID,
		UploadedAt:   now,
	}
	if err := s.uploads.Create(ctx, up); err != nil {
		// Roll back so no orphaned dataset or blob survives.
		_ = s.datasets.Delete(ctx, dataset.ID)
		_ = s.blobs.Delete(storedName)
		return nil, nil, fmt.Errorf("save upload record: %w", err)
	}

	return up, dataset, nil
}

// GetData resolves an upload's dataset. Admins may read any owner's upload;
// everyone else is scoped to their own.
func (s *Service) GetData(ctx context.Context, id string, callerID int64, callerRole string) (*domain.Dataset, error) {
	up, err := s.resolve(ctx, id, callerID, callerRole)
	if err != nil {
		return nil, err
	}

	if up.DatasetID == "" {
		log.Printf("integrity: upload %s has no dataset reference", up.ID)
		return nil, ErrUploadNotFound
	}

	dataset, err := s.datasets.GetByID(ctx, up.DatasetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("integrity: dataset %s of upload %s is missing", up.DatasetID, up.ID)
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return dataset, nil
}

// ListByUser returns the caller's uploads, newest first.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*domain.Upload, error) {
	return s.uploads.ListByUserID(ctx, userID)
}

// Delete cascades over the blob, the dataset, and finally the upload record.
// The record goes last so a failure in the earlier steps can never strand a
// phantom upload. A missing blob is fine; any other blob error is logged and
// does not block the rest of the cascade.
func (s *Service) Delete(ctx context.Context, id string, callerID int64, callerRole string) error {
	up, err := s.resolve(ctx, id, callerID, callerRole)
	if err != nil {
		return err
	}

	if err := s.blobs.Delete(up.StoredName); err != nil {
		log.Printf("cascade: blob delete failed for upload %s: %v", up.ID, err)
	}

	if up.DatasetID != "" {
		if err := s.datasets.Delete(ctx, up.DatasetID); err != nil {
			return fmt.Errorf("delete dataset: %w", err)
		}
	}

	return s.uploads.Delete(ctx, up.ID)
}

// resolve fetches an upload with the caller's visibility: unscoped for
// admins, owner-scoped otherwise. Both a missing id and a foreign id come
// back as ErrUploadNotFound.
func (s *Service) resolve(ctx context.Context, id string, callerID int64, callerRole string) (*domain.Upload, error) {
	var (
		up  *domain.Upload
		err error
	)
	if callerRole == string(domain.RoleAdmin) {
		up, err = s.uploads.GetByID(ctx, id)
	} else {
		up, err = s.uploads.GetByIDForUser(ctx, id, callerID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return up, nil
}

func validateIntake(fileHeader *multipart.FileHeader, maxBytes int64) error {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return ErrUnsupportedFileType
	}
	if fileHeader.Size == 0 {
		return ErrEmptyFile
	}
	if fileHeader.Size > maxBytes {
		return ErrFileTooLarge
	}
	return nil
}

func sanitizeName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	base = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, base)
	if len(base) > 40 {
		base = base[:40]
	}
	if base == "" {
		base = "file"
	}
	return base + ext
}
