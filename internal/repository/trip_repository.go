package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/database"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create inserts a trip and its join rows. segmentIDs must already be
// in ride order; the linked-list pointers are derived from it.
func (r *TripRepository) Create(userID string, segmentIDs []string) (*models.Trip, error) {
	trip := &models.Trip{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	err := database.WithTx(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO trips (id, user_id, created_at) VALUES (?, ?, ?)`,
			trip.ID, trip.UserID, trip.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert trip: %w", err)
		}

		for i, segmentID := range segmentIDs {
			var next *string
			if i+1 < len(segmentIDs) {
				next = &segmentIDs[i+1]
			}
			_, err = tx.Exec(
				`INSERT INTO trip_segments (trip_id, segment_id, next_segment_id) VALUES (?, ?, ?)`,
				trip.ID, segmentID, next,
			)
			if err != nil {
				return fmt.Errorf("failed to insert trip segment: %w", err)
			}
			trip.Segments = append(trip.Segments, models.TripSegment{
				TripID: trip.ID, SegmentID: segmentID, NextSegmentID: next,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// GetByID retrieves a single trip, or nil if it does not exist
func (r *TripRepository) GetByID(id string) (*models.Trip, error) {
	row := r.db.QueryRow(`SELECT id, user_id, created_at FROM trips WHERE id = ?`, id)

	var t models.Trip
	err := row.Scan(&t.ID, &t.UserID, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan trip: %w", err)
	}
	return &t, nil
}

// GetSegments retrieves a trip's join rows in storage order
func (r *TripRepository) GetSegments(tripID string) ([]models.TripSegment, error) {
	rows, err := r.db.Query(
		`SELECT trip_id, segment_id, next_segment_id FROM trip_segments WHERE trip_id = ?`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query trip segments: %w", err)
	}
	defer rows.Close()

	var segments []models.TripSegment
	for rows.Next() {
		var seg models.TripSegment
		if err := rows.Scan(&seg.TripID, &seg.SegmentID, &seg.NextSegmentID); err != nil {
			return nil, fmt.Errorf("failed to scan trip segment: %w", err)
		}
		segments = append(segments, seg)
	}
	return segments, rows.Err()
}
