package repository

import "github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"

// EngineStore adapts the repositories to the persistence surface the
// path-health engine expects (engine.CascadeStore).
type EngineStore struct {
	Segments *SegmentRepository
	Paths    *PathRepository
	Reports  *ReportRepository
}

// NewEngineStore creates the engine's persistence adapter
func NewEngineStore(segments *SegmentRepository, paths *PathRepository, reports *ReportRepository) *EngineStore {
	return &EngineStore{Segments: segments, Paths: paths, Reports: reports}
}

func (s *EngineStore) ReportsBySegment(segmentID string) ([]models.Report, error) {
	return s.Reports.ListBySegment(segmentID)
}

func (s *EngineStore) UpdateSegmentStatus(segmentID string, status models.PathStatus) error {
	return s.Segments.UpdateStatus(segmentID, status)
}

func (s *EngineStore) PathIDsBySegment(segmentID string) ([]string, error) {
	return s.Paths.PathIDsBySegment(segmentID)
}

func (s *EngineStore) PathSegments(pathID string) ([]models.PathSegment, error) {
	return s.Paths.GetSegments(pathID)
}

func (s *EngineStore) ReportedSegmentIDs(pathID string) (map[string]bool, error) {
	return s.Paths.ReportedSegmentIDs(pathID)
}

func (s *EngineStore) UpdatePathStatus(pathID string, status models.PathStatus) error {
	return s.Paths.UpdateStatus(pathID, status)
}
