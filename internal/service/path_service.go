package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/engine"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/repository"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/spatial"
)

// PathService handles business logic for paths
type PathService struct {
	paths    *repository.PathRepository
	segments *repository.SegmentRepository
	engine   *engine.Engine
}

// NewPathService creates a new path service
func NewPathService(paths *repository.PathRepository, segments *repository.SegmentRepository, eng *engine.Engine) *PathService {
	return &PathService{paths: paths, segments: segments, engine: eng}
}

// CreatePath stores a path built from the given polylines. Each
// polyline becomes one segment; a stored segment with exactly the same
// geometry is reused instead of duplicated.
func (s *PathService) CreatePath(userID string, req models.CreatePathRequest) (*models.Path, error) {
	if len(req.Polylines) == 0 {
		return nil, fmt.Errorf("path requires at least one polyline")
	}
	if req.Visibility == "" {
		req.Visibility = models.VisibilityPublic
	}
	if req.Visibility != models.VisibilityPublic && req.Visibility != models.VisibilityPrivate {
		return nil, fmt.Errorf("unknown visibility %q", req.Visibility)
	}
	if req.CreationMode == "" {
		req.CreationMode = models.CreationModeManual
	}

	path := &models.Path{
		ID:           uuid.NewString(),
		UserID:       userID,
		Origin:       req.Origin,
		Destination:  req.Destination,
		Visibility:   req.Visibility,
		CreationMode: req.CreationMode,
		Title:        req.Title,
		Description:  req.Description,
		CreatedAt:    time.Now().UTC(),
	}

	joins := make([]models.PathSegment, 0, len(req.Polylines))
	seen := make(map[string]bool, len(req.Polylines))
	var distanceKm float64
	for _, polyline := range req.Polylines {
		if len(polyline) < 2 {
			return nil, fmt.Errorf("polyline requires at least two points")
		}
		segment, err := s.segments.FindByPolyline(polyline)
		if err != nil {
			return nil, err
		}
		if segment == nil {
			segment, err = s.segments.Create(polyline)
			if err != nil {
				return nil, err
			}
		}
		// The singly-linked ordering cannot represent a revisit, so
		// reject it here instead of surfacing a raw constraint error.
		if seen[segment.ID] {
			return nil, fmt.Errorf("path visits segment %s more than once", segment.ID)
		}
		seen[segment.ID] = true
		distanceKm += spatial.PolylineLengthKm(polyline)
		joins = append(joins, models.PathSegment{
			PathID:    path.ID,
			SegmentID: segment.ID,
			Status:    segment.Status,
		})
	}
	for i := range joins[:len(joins)-1] {
		joins[i].NextSegmentID = &joins[i+1].SegmentID
	}
	path.DistanceKm = distanceKm

	if err := s.paths.Create(path, joins); err != nil {
		return nil, err
	}
	path.Segments = joins
	return path, nil
}

// GetPath retrieves a path with its segments in chain order. A nil
// cached status is derived on read from the segments without being
// persisted; persistence stays with the cascade.
func (s *PathService) GetPath(id string) (*models.Path, error) {
	path, err := s.paths.GetByID(id)
	if err != nil || path == nil {
		return path, err
	}

	segments, err := s.paths.GetSegments(id)
	if err != nil {
		return nil, err
	}
	path.Segments = engine.ReconstructChain(segments)

	if path.Status == nil {
		if err := s.deriveStatus(path); err != nil {
			return nil, err
		}
	}
	return path, nil
}

// ListPaths retrieves the user's own paths
func (s *PathService) ListPaths(userID string) ([]models.Path, error) {
	return s.paths.ListByUser(userID)
}

// UpdatePath applies an edit of title/description/visibility, owners only
func (s *PathService) UpdatePath(id, userID string, req models.UpdatePathRequest) (*models.Path, error) {
	path, err := s.paths.GetByID(id)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, nil
	}
	if path.UserID != userID {
		return nil, fmt.Errorf("path %s does not belong to user %s", id, userID)
	}
	if req.Visibility != nil &&
		*req.Visibility != models.VisibilityPublic && *req.Visibility != models.VisibilityPrivate {
		return nil, fmt.Errorf("unknown visibility %q", *req.Visibility)
	}

	if err := s.paths.UpdateDetails(id, req); err != nil {
		return nil, err
	}
	return s.GetPath(id)
}

// DeriveStatuses fills in a derived status for every path whose cached
// status is nil. Used by search to make fresh paths rankable.
func (s *PathService) DeriveStatuses(paths []models.Path) ([]models.Path, error) {
	for i := range paths {
		if paths[i].Status != nil {
			continue
		}
		if err := s.deriveStatus(&paths[i]); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func (s *PathService) deriveStatus(path *models.Path) error {
	segments := path.Segments
	if segments == nil {
		var err error
		segments, err = s.paths.GetSegments(path.ID)
		if err != nil {
			return err
		}
	}
	reported, err := s.paths.ReportedSegmentIDs(path.ID)
	if err != nil {
		return err
	}
	if status, ok := s.engine.PathStatusFromSegments(segments, reported); ok {
		path.Status = &status
	}
	return nil
}
