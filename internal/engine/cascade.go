package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
)

// CascadeStore is the persistence surface the cascade reads and writes.
// Implemented by the repository layer; the engine performs no retries
// and owns no transaction semantics.
type CascadeStore interface {
	ReportsBySegment(segmentID string) ([]models.Report, error)
	UpdateSegmentStatus(segmentID string, status models.PathStatus) error
	PathIDsBySegment(segmentID string) ([]string, error)
	PathSegments(pathID string) ([]models.PathSegment, error)
	ReportedSegmentIDs(pathID string) (map[string]bool, error)
	UpdatePathStatus(pathID string, status models.PathStatus) error
}

// RecalculateSegmentStatus aggregates the segment's current reports.
// ok is false when the reports carry no qualifying signal; the stored
// status must then be left as it is.
func (e *Engine) RecalculateSegmentStatus(store CascadeStore, segmentID string, now time.Time) (models.PathStatus, bool, error) {
	reports, err := store.ReportsBySegment(segmentID)
	if err != nil {
		return "", false, fmt.Errorf("failed to fetch reports for segment %s: %w", segmentID, err)
	}
	status, ok := e.AggregateSegmentStatus(reports, now)
	return status, ok, nil
}

// CascadeSegmentUpdate recomputes one segment's status and then the
// status of every path containing that segment. Idempotent: a pure
// function of the current report state, so re-running it without
// intervening report changes persists identical values.
//
// Phase two is independent per path and fans out concurrently; each
// path recompute shares no mutable state beyond its own final write.
func (e *Engine) CascadeSegmentUpdate(store CascadeStore, segmentID string, now time.Time) error {
	status, ok, err := e.RecalculateSegmentStatus(store, segmentID, now)
	if err != nil {
		return err
	}
	if ok {
		if err := store.UpdateSegmentStatus(segmentID, status); err != nil {
			return fmt.Errorf("failed to update segment %s status: %w", segmentID, err)
		}
	}

	pathIDs, err := store.PathIDsBySegment(segmentID)
	if err != nil {
		return fmt.Errorf("failed to list paths for segment %s: %w", segmentID, err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(pathIDs))
	for _, pathID := range pathIDs {
		wg.Add(1)
		go func(pathID string) {
			defer wg.Done()
			if err := e.RecomputePathStatus(store, pathID); err != nil {
				errs <- err
			}
		}(pathID)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		return err
	}
	return nil
}

// RecomputePathStatus rederives and persists one path's overall status
// from its segments' cached statuses.
func (e *Engine) RecomputePathStatus(store CascadeStore, pathID string) error {
	segments, err := store.PathSegments(pathID)
	if err != nil {
		return fmt.Errorf("failed to fetch segments for path %s: %w", pathID, err)
	}
	reported, err := store.ReportedSegmentIDs(pathID)
	if err != nil {
		return fmt.Errorf("failed to fetch reported segments for path %s: %w", pathID, err)
	}

	status, ok := e.PathStatusFromSegments(segments, reported)
	if !ok {
		return nil
	}
	if err := store.UpdatePathStatus(pathID, status); err != nil {
		return fmt.Errorf("failed to update path %s status: %w", pathID, err)
	}
	return nil
}

// PathStatusFromSegments blends the reported-segments average with the
// all-segments baseline. Reported signal dominates but never fully
// overrides the baseline: one bad segment out of twenty must not
// collapse the whole path to CLOSED. ok is false for a path with no
// scoreable segments at all.
func (e *Engine) PathStatusFromSegments(segments []models.PathSegment, reported map[string]bool) (models.PathStatus, bool) {
	all := make([]models.PathStatus, 0, len(segments))
	var reportedStatuses []models.PathStatus
	for _, seg := range segments {
		all = append(all, seg.Status)
		if reported[seg.SegmentID] {
			reportedStatuses = append(reportedStatuses, seg.Status)
		}
	}

	allAverage, ok := averageStatusScore(all)
	if !ok {
		return "", false
	}

	reportedAverage, hasReported := averageStatusScore(reportedStatuses)
	if !hasReported {
		return models.MapScoreToStatus(allAverage), true
	}

	mixed := reportedAverage*e.cfg.ReportedWeight + allAverage*e.cfg.AllWeight
	return models.MapScoreToStatus(mixed), true
}
