package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/middleware"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/service"
	"github.com/BIA3IA/Software-Engineering-2-sub000/pkg/response"
)

// SearchHandler handles HTTP requests for path search
type SearchHandler struct {
	service *service.SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service *service.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// SearchPaths handles GET /api/v1/paths/search?origin=...&destination=...
func (h *SearchHandler) SearchPaths(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		response.Error(c, http.StatusBadRequest, "origin and destination are required", nil)
		return
	}

	paths, err := h.service.Search(c.Request.Context(), origin, destination, middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "Failed to search paths", err)
		return
	}
	response.Success(c, paths)
}
