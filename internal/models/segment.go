package models

import "time"

// LatLng is a single polyline vertex.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Segment is an immutable geometry unit of road. Segments are shared:
// the same segment may belong to many paths and many trips, so its
// cached status is recomputed whenever reports on it change.
type Segment struct {
	ID        string     `json:"segmentId" db:"id"`
	Polyline  []LatLng   `json:"polyline" db:"polyline"`
	Status    PathStatus `json:"status" db:"status"` // starts OPTIMAL, overwritten by the cascade
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// PathSegment links a Path to a Segment in a specific position.
// NextSegmentID encodes a singly-linked ordering: it holds the segment
// id of the next row in the same path, or nil for the last row.
type PathSegment struct {
	PathID        string      `json:"pathId" db:"path_id"`
	SegmentID     string      `json:"segmentId" db:"segment_id"`
	NextSegmentID *string     `json:"nextSegmentId" db:"next_segment_id"`
	Status        PathStatus  `json:"status" db:"status"` // denormalized from the segment for fast path-level reads
}

// TripSegment is the trip-side analogue of PathSegment.
type TripSegment struct {
	TripID        string  `json:"tripId" db:"trip_id"`
	SegmentID     string  `json:"segmentId" db:"segment_id"`
	NextSegmentID *string `json:"nextSegmentId" db:"next_segment_id"`
}

// ChainRecord is the slice of a join row the chain reconstructor needs.
type ChainRecord interface {
	Segment() string
	Next() *string
}

func (ps PathSegment) Segment() string { return ps.SegmentID }
func (ps PathSegment) Next() *string   { return ps.NextSegmentID }

func (ts TripSegment) Segment() string { return ts.SegmentID }
func (ts TripSegment) Next() *string   { return ts.NextSegmentID }
