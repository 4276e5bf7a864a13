package upload

import (
	"errors"
	"net/http"

	"sheetstash/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Ingest accepts a multipart spreadsheet, parses it, and returns the parsed
// columns and rows so the client can render immediately without a second
// fetch.
func (h *Handler) Ingest(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file uploaded")
		return
	}

	up, dataset, err := h.service.Ingest(c.Request.Context(), userID, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedFileType):
			response.Error(c, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", err.Error())
		case errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "EMPTY_FILE", err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		case errors.Is(err, ErrEmptyDataset):
			response.Error(c, http.StatusBadRequest, "EMPTY_DATASET", err.Error())
		case errors.Is(err, ErrUnparseableFile):
			response.Error(c, http.StatusBadRequest, "UNPARSEABLE_FILE", err.Error())
		case errors.Is(err, ErrDatasetTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "DATASET_TOO_LARGE", err.Error())
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to process upload")
		}
		return
	}

	response.Success(c, http.StatusCreated, IngestResponse{
		UploadID: up.ID,
		Columns:  dataset.Columns,
		Rows:     dataset.Rows,
	})
}

// GetData returns the parsed columns/rows of one upload.
func (h *Handler) GetData(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	dataset, err := h.service.GetData(c.Request.Context(), c.Param("id"), userID, c.GetString("role"))
	if err != nil {
		if errors.Is(err, ErrUploadNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Upload not found")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to fetch upload data")
		return
	}

	response.Success(c, http.StatusOK, DataResponse{
		Columns: dataset.Columns,
		Rows:    dataset.Rows,
	})
}

// List returns the caller's upload history, newest first.
func (h *Handler) List(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	uploads, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to list uploads")
		return
	}

	items := make([]UploadSummary, 0, len(uploads))
	for _, u := range uploads {
		items = append(items, toUploadSummary(u))
	}
	response.Success(c, http.StatusOK, items)
}

// Delete cascades blob, dataset and record removal for one upload.
func (h *Handler) Delete(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	err := h.service.Delete(c.Request.Context(), c.Param("id"), userID, c.GetString("role"))
	if err != nil {
		if errors.Is(err, ErrUploadNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Upload not found")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to delete upload")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Upload deleted successfully"})
}

func mustUserID(c *gin.Context) int64 {
	id, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return 0
	}
	v, ok := id.(int64)
	if !ok || v == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid user id")
		return 0
	}
	return v
}
