package admin

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

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to fetch users")
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) Stats(c *gin.Context) {
	report, err := h.service.ComputeReport(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to compute statistics")
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *Handler) UserUploads(c *gin.Context) {
	resp, err := h.service.ListUserUploads(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidUserID):
			response.Error(c, http.StatusBadRequest, "INVALID_USER_ID", err.Error())
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to fetch user uploads")
		}
		return
	}
	response.Success(c, http.StatusOK, resp)
}
