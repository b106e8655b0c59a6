package service

import (
	"fmt"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/engine"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/repository"
)

// TripService handles business logic for recorded trips
type TripService struct {
	trips    *repository.TripRepository
	segments *repository.SegmentRepository
}

// NewTripService creates a new trip service
func NewTripService(trips *repository.TripRepository, segments *repository.SegmentRepository) *TripService {
	return &TripService{trips: trips, segments: segments}
}

// CreateTrip records a ride over already-stored segments
func (s *TripService) CreateTrip(userID string, req models.CreateTripRequest) (*models.Trip, error) {
	if len(req.SegmentIDs) == 0 {
		return nil, fmt.Errorf("trip requires at least one segment")
	}
	for _, id := range req.SegmentIDs {
		segment, err := s.segments.GetByID(id)
		if err != nil {
			return nil, err
		}
		if segment == nil {
			return nil, fmt.Errorf("segment %s not found", id)
		}
	}
	return s.trips.Create(userID, req.SegmentIDs)
}

// GetTrip retrieves a trip with its segments in chain order
func (s *TripService) GetTrip(id string) (*models.Trip, error) {
	trip, err := s.trips.GetByID(id)
	if err != nil || trip == nil {
		return trip, err
	}

	segments, err := s.trips.GetSegments(id)
	if err != nil {
		return nil, err
	}
	trip.Segments = engine.ReconstructChain(segments)
	return trip, nil
}
