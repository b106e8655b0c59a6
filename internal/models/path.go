package models

import "time"

// Visibility constants
const (
	VisibilityPublic  = "PUBLIC"
	VisibilityPrivate = "PRIVATE"
)

// CreationMode constants
const (
	CreationModeManual    = "MANUAL"
	CreationModeAutomatic = "AUTOMATIC"
)

// Path is a user-defined ordered chain of segments from origin to
// destination. Status is a cached taxonomy value recomputed by the
// cascade; nil means "derive on read" from the path's segments.
type Path struct {
	ID           string      `json:"pathId" db:"id"`
	UserID       string      `json:"userId" db:"user_id"`
	Origin       LatLng      `json:"origin"`
	Destination  LatLng      `json:"destination"`
	Visibility   string      `json:"visibility" db:"visibility"`
	CreationMode string      `json:"creationMode" db:"creation_mode"`
	Title        string      `json:"title,omitempty" db:"title"`
	Description  string      `json:"description,omitempty" db:"description"`
	DistanceKm   float64     `json:"distanceKm" db:"distance_km"`
	Status       *PathStatus `json:"status,omitempty" db:"status"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`

	// Segments in chain order, populated on single-path reads.
	Segments []PathSegment `json:"segments,omitempty"`
}

// Trip is a recorded ride over an ordered chain of segments.
type Trip struct {
	ID        string        `json:"tripId" db:"id"`
	UserID    string        `json:"userId" db:"user_id"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	Segments  []TripSegment `json:"segments,omitempty"`
}

// CreatePathRequest is the payload for POST /paths. Each entry of
// Polylines becomes one segment, reusing stored segments whose
// geometry matches exactly.
type CreatePathRequest struct {
	Origin       LatLng     `json:"origin" binding:"required"`
	Destination  LatLng     `json:"destination" binding:"required"`
	Visibility   string     `json:"visibility"`
	CreationMode string     `json:"creationMode"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Polylines    [][]LatLng `json:"polylines" binding:"required"`
}

// UpdatePathRequest is the payload for PATCH /paths/:id.
type UpdatePathRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Visibility  *string `json:"visibility"`
}

// CreateTripRequest records a ride over already-stored segments.
type CreateTripRequest struct {
	SegmentIDs []string `json:"segmentIds" binding:"required"`
}
