package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
)

// ReportRepository handles database operations for reports
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

const reportColumns = `id, user_id, segment_id, obstacle_type, status, path_status,
	position_lat, position_lng, created_at`

// Create inserts a new report in CREATED state
func (r *ReportRepository) Create(userID string, req models.CreateReportRequest) (*models.Report, error) {
	report := &models.Report{
		ID:           uuid.NewString(),
		UserID:       userID,
		SegmentID:    req.SegmentID,
		ObstacleType: req.ObstacleType,
		Status:       models.ReportCreated,
		PathStatus:   req.PathStatus,
		Position:     req.Position,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := r.db.Exec(
		`INSERT INTO reports (`+reportColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ID, report.UserID, report.SegmentID, report.ObstacleType,
		report.Status, string(report.PathStatus),
		report.Position.Lat, report.Position.Lng, report.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}
	return report, nil
}

// GetByID retrieves a single report, or nil if it does not exist
func (r *ReportRepository) GetByID(id string) (*models.Report, error) {
	row := r.db.QueryRow(`SELECT `+reportColumns+` FROM reports WHERE id = ?`, id)

	var rep models.Report
	var pathStatus string
	err := row.Scan(
		&rep.ID, &rep.UserID, &rep.SegmentID, &rep.ObstacleType,
		&rep.Status, &pathStatus,
		&rep.Position.Lat, &rep.Position.Lng, &rep.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan report: %w", err)
	}
	rep.PathStatus = models.PathStatus(pathStatus)
	return &rep, nil
}

// ListBySegment retrieves all reports on a segment, newest first
func (r *ReportRepository) ListBySegment(segmentID string) ([]models.Report, error) {
	rows, err := r.db.Query(
		`SELECT `+reportColumns+` FROM reports WHERE segment_id = ? ORDER BY created_at DESC`,
		segmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []models.Report
	for rows.Next() {
		var rep models.Report
		var pathStatus string
		err := rows.Scan(
			&rep.ID, &rep.UserID, &rep.SegmentID, &rep.ObstacleType,
			&rep.Status, &pathStatus,
			&rep.Position.Lat, &rep.Position.Lng, &rep.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		rep.PathStatus = models.PathStatus(pathStatus)
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

// UpdateStatus applies a disposition transition (confirm/reject/ignore)
func (r *ReportRepository) UpdateStatus(id string, status string) error {
	_, err := r.db.Exec(`UPDATE reports SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}
	return nil
}

// Delete removes a report permanently (user-initiated removal only)
func (r *ReportRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}
