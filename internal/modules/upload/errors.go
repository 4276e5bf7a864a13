package upload

import "errors"

var (
	// ErrUploadNotFound also covers ownership mismatches for non-admin
	// callers, so a foreign upload id never leaks its existence.
	ErrUploadNotFound = errors.New("upload not found")

	ErrUnsupportedFileType = errors.New("only .xls and .xlsx files are allowed")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyFile           = errors.New("file is empty")
	ErrEmptyDataset        = errors.New("spreadsheet has no data rows")
	ErrUnparseableFile     = errors.New("unable to parse spreadsheet file")
	ErrDatasetTooLarge     = errors.New("parsed data too large, please use a smaller file")
)
