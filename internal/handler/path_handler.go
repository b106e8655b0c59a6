package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/middleware"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/service"
	"github.com/BIA3IA/Software-Engineering-2-sub000/pkg/response"
)

// PathHandler handles HTTP requests for paths
type PathHandler struct {
	service *service.PathService
}

// NewPathHandler creates a new path handler
func NewPathHandler(service *service.PathService) *PathHandler {
	return &PathHandler{service: service}
}

// CreatePath handles POST /api/v1/paths
func (h *PathHandler) CreatePath(c *gin.Context) {
	var req models.CreatePathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid path payload", err)
		return
	}

	path, err := h.service.CreatePath(middleware.UserID(c), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create path", err)
		return
	}
	response.Success(c, path)
}

// GetPath handles GET /api/v1/paths/:id
func (h *PathHandler) GetPath(c *gin.Context) {
	path, err := h.service.GetPath(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get path", err)
		return
	}
	if path == nil {
		response.Error(c, http.StatusNotFound, "Path not found", nil)
		return
	}
	if path.Visibility == models.VisibilityPrivate && path.UserID != middleware.UserID(c) {
		response.Error(c, http.StatusNotFound, "Path not found", nil)
		return
	}
	response.Success(c, path)
}

// ListPaths handles GET /api/v1/paths (the requester's own)
func (h *PathHandler) ListPaths(c *gin.Context) {
	paths, err := h.service.ListPaths(middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list paths", err)
		return
	}
	response.Success(c, paths)
}

// UpdatePath handles PATCH /api/v1/paths/:id
func (h *PathHandler) UpdatePath(c *gin.Context) {
	var req models.UpdatePathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid path payload", err)
		return
	}

	path, err := h.service.UpdatePath(c.Param("id"), middleware.UserID(c), req)
	if err != nil {
		response.Error(c, http.StatusForbidden, "Failed to update path", err)
		return
	}
	if path == nil {
		response.Error(c, http.StatusNotFound, "Path not found", nil)
		return
	}
	response.Success(c, path)
}
