package models

import "time"

// Report status constants
const (
	ReportCreated   = "CREATED"
	ReportConfirmed = "CONFIRMED"
	ReportRejected  = "REJECTED"
	ReportIgnored   = "IGNORED" // excluded from all aggregation, retained for audit
)

// Report is a single crowd-submitted observation about a segment's
// condition. Immutable after creation except for status transitions.
type Report struct {
	ID           string     `json:"reportId" db:"id"`
	UserID       string     `json:"userId" db:"user_id"`
	SegmentID    string     `json:"segmentId" db:"segment_id"`
	ObstacleType string     `json:"obstacleType" db:"obstacle_type"`
	Status       string     `json:"status" db:"status"`
	PathStatus   PathStatus `json:"pathStatus" db:"path_status"` // the taxonomy value the reporter believes applies
	Position     LatLng     `json:"position"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

// AgeMinutes returns the report's age at the given instant.
func (r Report) AgeMinutes(now time.Time) float64 {
	age := now.Sub(r.CreatedAt).Minutes()
	if age < 0 {
		return 0
	}
	return age
}

// CreateReportRequest is the payload for POST /reports.
type CreateReportRequest struct {
	SegmentID    string     `json:"segmentId" binding:"required"`
	ObstacleType string     `json:"obstacleType" binding:"required"`
	PathStatus   PathStatus `json:"pathStatus" binding:"required"`
	Position     LatLng     `json:"position"`
}
