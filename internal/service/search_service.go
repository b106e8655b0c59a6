package service

import (
	"context"
	"fmt"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/engine"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/geocoding"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/repository"
)

// SearchService resolves free-text endpoints and runs the path matcher
type SearchService struct {
	paths    *repository.PathRepository
	pathSvc  *PathService
	geocoder geocoding.Geocoder
	engine   *engine.Engine
}

// NewSearchService creates a new search service
func NewSearchService(paths *repository.PathRepository, pathSvc *PathService, geocoder geocoding.Geocoder, eng *engine.Engine) *SearchService {
	return &SearchService{paths: paths, pathSvc: pathSvc, geocoder: geocoder, engine: eng}
}

// Search resolves origin and destination text to coordinates and
// returns the ranked matching paths for the requesting user. A failed
// resolution is a query error; an empty match list is not.
func (s *SearchService) Search(ctx context.Context, originText, destinationText, userID string) ([]models.Path, error) {
	origin, err := s.geocoder.Resolve(ctx, originText)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve origin: %w", err)
	}
	destination, err := s.geocoder.Resolve(ctx, destinationText)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination: %w", err)
	}

	candidates, err := s.paths.ListSearchable(userID)
	if err != nil {
		return nil, err
	}
	candidates, err = s.pathSvc.DeriveStatuses(candidates)
	if err != nil {
		return nil, err
	}

	return s.engine.SearchPaths(candidates, origin, destination, userID), nil
}
