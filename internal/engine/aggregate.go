package engine

import (
	"time"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
)

// AggregateSegmentStatus combines all reports on one segment into a
// single status via reliability-weighted averaging. The second return
// is false when there is insufficient signal ("no opinion"): callers
// must preserve the segment's previous status, never force a default.
//
// A REJECTED report's score enters the average negated. A rejection is
// itself a negative signal about path quality, distinct from merely
// excluding the report.
func (e *Engine) AggregateSegmentStatus(reports []models.Report, now time.Time) (models.PathStatus, bool) {
	var weightedSum, reliabilitySum float64

	for _, report := range reports {
		if report.Status == models.ReportIgnored {
			continue
		}
		score, ok := report.PathStatus.Score()
		if !ok {
			// Unrecognized label from crowd-sourced or partially
			// migrated data; skip the record, not the request.
			continue
		}

		signals := e.ComputeReportSignals(report, now)
		if signals.Reliability < e.cfg.ReportMinReliability {
			continue
		}

		if report.Status == models.ReportRejected {
			score = -score
		}
		weightedSum += score * signals.Reliability
		reliabilitySum += signals.Reliability
	}

	if reliabilitySum == 0 {
		return "", false
	}
	return models.MapScoreToStatus(weightedSum / reliabilitySum), true
}

// averageStatusScore is the plain taxonomy-average of segment statuses,
// skipping labels that do not map to a known score. ok is false when
// nothing contributed.
func averageStatusScore(statuses []models.PathStatus) (float64, bool) {
	var sum float64
	var n int
	for _, status := range statuses {
		score, ok := status.Score()
		if !ok {
			continue
		}
		sum += score
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
