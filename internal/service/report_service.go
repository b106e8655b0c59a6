package service

import (
	"fmt"
	"time"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/engine"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/repository"
)

// ReportService handles report lifecycle and the resulting status
// cascade. The cascade runs synchronously in the request cycle: the
// reporter observes the updated statuses on their next read.
type ReportService struct {
	reports  *repository.ReportRepository
	segments *repository.SegmentRepository
	store    *repository.EngineStore
	engine   *engine.Engine
}

// NewReportService creates a new report service
func NewReportService(reports *repository.ReportRepository, segments *repository.SegmentRepository, store *repository.EngineStore, eng *engine.Engine) *ReportService {
	return &ReportService{reports: reports, segments: segments, store: store, engine: eng}
}

// validTransitions lists the allowed report status values for updates.
var validTransitions = map[string]bool{
	models.ReportConfirmed: true,
	models.ReportRejected:  true,
	models.ReportIgnored:   true,
}

// CreateReport stores a new observation and cascades the status update
// to the segment and every path containing it.
func (s *ReportService) CreateReport(userID string, req models.CreateReportRequest) (*models.Report, error) {
	if !req.PathStatus.Valid() {
		return nil, fmt.Errorf("unknown path status %q", req.PathStatus)
	}
	segment, err := s.segments.GetByID(req.SegmentID)
	if err != nil {
		return nil, err
	}
	if segment == nil {
		return nil, fmt.Errorf("segment %s not found", req.SegmentID)
	}

	report, err := s.reports.Create(userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.engine.CascadeSegmentUpdate(s.store, report.SegmentID, time.Now().UTC()); err != nil {
		return nil, err
	}
	return report, nil
}

// TransitionReport applies a confirm/reject/ignore transition and
// recascades the affected segment.
func (s *ReportService) TransitionReport(id, status string) (*models.Report, error) {
	if !validTransitions[status] {
		return nil, fmt.Errorf("unknown report transition %q", status)
	}
	report, err := s.reports.GetByID(id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, nil
	}

	if err := s.reports.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	if err := s.engine.CascadeSegmentUpdate(s.store, report.SegmentID, time.Now().UTC()); err != nil {
		return nil, err
	}
	report.Status = status
	return report, nil
}

// DeleteReport removes the user's own report and recascades
func (s *ReportService) DeleteReport(id, userID string) error {
	report, err := s.reports.GetByID(id)
	if err != nil {
		return err
	}
	if report == nil {
		return nil
	}
	if report.UserID != userID {
		return fmt.Errorf("report %s does not belong to user %s", id, userID)
	}

	if err := s.reports.Delete(id); err != nil {
		return err
	}
	return s.engine.CascadeSegmentUpdate(s.store, report.SegmentID, time.Now().UTC())
}

// ListBySegment retrieves all reports on a segment
func (s *ReportService) ListBySegment(segmentID string) ([]models.Report, error) {
	return s.reports.ListBySegment(segmentID)
}
