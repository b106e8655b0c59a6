package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/database"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
)

// SegmentRepository handles database operations for segments
type SegmentRepository struct {
	db *sql.DB
}

// NewSegmentRepository creates a new segment repository
func NewSegmentRepository(db *sql.DB) *SegmentRepository {
	return &SegmentRepository{db: db}
}

// encodePolyline produces the canonical stored form of a polyline.
// json.Marshal is deterministic for a given vertex list, so exact
// geometry matches can be found with a plain equality lookup.
func encodePolyline(points []models.LatLng) (string, error) {
	raw, err := json.Marshal(points)
	if err != nil {
		return "", fmt.Errorf("failed to encode polyline: %w", err)
	}
	return string(raw), nil
}

func decodePolyline(raw string) ([]models.LatLng, error) {
	var points []models.LatLng
	if err := json.Unmarshal([]byte(raw), &points); err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}
	return points, nil
}

// Create inserts a new segment. New segments start OPTIMAL until the
// first cascade produces an opinion.
func (r *SegmentRepository) Create(points []models.LatLng) (*models.Segment, error) {
	polyline, err := encodePolyline(points)
	if err != nil {
		return nil, err
	}

	segment := &models.Segment{
		ID:        uuid.NewString(),
		Polyline:  points,
		Status:    models.StatusOptimal,
		CreatedAt: time.Now().UTC(),
	}

	_, err = r.db.Exec(
		`INSERT INTO segments (id, polyline, status, created_at) VALUES (?, ?, ?, ?)`,
		segment.ID, polyline, string(segment.Status), segment.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert segment: %w", err)
	}
	return segment, nil
}

// GetByID retrieves a single segment, or nil if it does not exist
func (r *SegmentRepository) GetByID(id string) (*models.Segment, error) {
	row := r.db.QueryRow(`SELECT id, polyline, status, created_at FROM segments WHERE id = ?`, id)
	return scanSegment(row)
}

// FindByPolyline retrieves the segment with exactly this geometry, or
// nil if none exists. Path creation uses it to reuse shared segments.
func (r *SegmentRepository) FindByPolyline(points []models.LatLng) (*models.Segment, error) {
	polyline, err := encodePolyline(points)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRow(`SELECT id, polyline, status, created_at FROM segments WHERE polyline = ?`, polyline)
	return scanSegment(row)
}

func scanSegment(row *sql.Row) (*models.Segment, error) {
	var s models.Segment
	var polyline, status string
	err := row.Scan(&s.ID, &polyline, &status, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan segment: %w", err)
	}
	points, err := decodePolyline(polyline)
	if err != nil {
		return nil, err
	}
	s.Polyline = points
	s.Status = models.PathStatus(status)
	return &s, nil
}

// UpdateStatus persists a recomputed segment status and mirrors it
// onto every path_segments row referencing the segment, so path-level
// reads never join back to the segments table.
func (r *SegmentRepository) UpdateStatus(id string, status models.PathStatus) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`UPDATE segments SET status = ? WHERE id = ?`, string(status), id); err != nil {
			return fmt.Errorf("failed to update segment status: %w", err)
		}
		if _, err := tx.Exec(`UPDATE path_segments SET status = ? WHERE segment_id = ?`, string(status), id); err != nil {
			return fmt.Errorf("failed to update denormalized segment status: %w", err)
		}
		return nil
	})
}
