package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/middleware"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/service"
	"github.com/BIA3IA/Software-Engineering-2-sub000/pkg/response"
)

// TripHandler handles HTTP requests for trips
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// CreateTrip handles POST /api/v1/trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid trip payload", err)
		return
	}

	trip, err := h.service.CreateTrip(middleware.UserID(c), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create trip", err)
		return
	}
	response.Success(c, trip)
}

// GetTrip handles GET /api/v1/trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.service.GetTrip(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get trip", err)
		return
	}
	if trip == nil {
		response.Error(c, http.StatusNotFound, "Trip not found", nil)
		return
	}
	response.Success(c, trip)
}
