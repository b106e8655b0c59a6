package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/database"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
)

// PathRepository handles database operations for paths
type PathRepository struct {
	db *sql.DB
}

// NewPathRepository creates a new path repository
func NewPathRepository(db *sql.DB) *PathRepository {
	return &PathRepository{db: db}
}

const pathColumns = `id, user_id, origin_lat, origin_lng, destination_lat, destination_lng,
	visibility, creation_mode, title, description, distance_km, status, created_at`

// Create inserts a path together with its join rows in one transaction
func (r *PathRepository) Create(path *models.Path, segments []models.PathSegment) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		var status *string
		if path.Status != nil {
			s := string(*path.Status)
			status = &s
		}
		_, err := tx.Exec(
			`INSERT INTO paths (`+pathColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			path.ID, path.UserID, path.Origin.Lat, path.Origin.Lng,
			path.Destination.Lat, path.Destination.Lng,
			path.Visibility, path.CreationMode, path.Title, path.Description,
			path.DistanceKm, status, path.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert path: %w", err)
		}

		for _, seg := range segments {
			_, err = tx.Exec(
				`INSERT INTO path_segments (path_id, segment_id, next_segment_id, status) VALUES (?, ?, ?, ?)`,
				seg.PathID, seg.SegmentID, seg.NextSegmentID, string(seg.Status),
			)
			if err != nil {
				return fmt.Errorf("failed to insert path segment: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a single path, or nil if it does not exist
func (r *PathRepository) GetByID(id string) (*models.Path, error) {
	row := r.db.QueryRow(`SELECT `+pathColumns+` FROM paths WHERE id = ?`, id)
	path, err := scanPath(row)
	if err != nil {
		return nil, err
	}
	return path, nil
}

// GetSegments retrieves a path's join rows in storage order; callers
// run the chain reconstructor over the result.
func (r *PathRepository) GetSegments(pathID string) ([]models.PathSegment, error) {
	rows, err := r.db.Query(
		`SELECT path_id, segment_id, next_segment_id, status FROM path_segments WHERE path_id = ?`,
		pathID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query path segments: %w", err)
	}
	defer rows.Close()

	var segments []models.PathSegment
	for rows.Next() {
		var seg models.PathSegment
		var status string
		if err := rows.Scan(&seg.PathID, &seg.SegmentID, &seg.NextSegmentID, &status); err != nil {
			return nil, fmt.Errorf("failed to scan path segment: %w", err)
		}
		seg.Status = models.PathStatus(status)
		segments = append(segments, seg)
	}
	return segments, rows.Err()
}

// ListByUser retrieves every path owned by the user
func (r *PathRepository) ListByUser(userID string) ([]models.Path, error) {
	return r.list(`SELECT `+pathColumns+` FROM paths WHERE user_id = ? ORDER BY created_at DESC`, userID)
}

// ListPublic retrieves every public path
func (r *PathRepository) ListPublic() ([]models.Path, error) {
	return r.list(`SELECT ` + pathColumns + ` FROM paths WHERE visibility = 'PUBLIC' ORDER BY created_at DESC`)
}

// ListSearchable retrieves the search candidate pool: the requester's
// own paths plus all public paths. With no requester only public
// paths qualify.
func (r *PathRepository) ListSearchable(userID string) ([]models.Path, error) {
	if userID == "" {
		return r.ListPublic()
	}
	return r.list(
		`SELECT `+pathColumns+` FROM paths WHERE user_id = ? OR visibility = 'PUBLIC' ORDER BY created_at DESC`,
		userID,
	)
}

// PathIDsBySegment retrieves the ids of every path containing the segment
func (r *PathRepository) PathIDsBySegment(segmentID string) ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT path_id FROM path_segments WHERE segment_id = ?`, segmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query paths by segment: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan path id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ReportedSegmentIDs retrieves the subset of a path's segments that
// carry at least one non-ignored report anywhere in the system
func (r *PathRepository) ReportedSegmentIDs(pathID string) (map[string]bool, error) {
	rows, err := r.db.Query(
		`SELECT DISTINCT ps.segment_id
		 FROM path_segments ps
		 JOIN reports rp ON rp.segment_id = ps.segment_id
		 WHERE ps.path_id = ? AND rp.status != ?`,
		pathID, models.ReportIgnored,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reported segments: %w", err)
	}
	defer rows.Close()

	reported := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan reported segment id: %w", err)
		}
		reported[id] = true
	}
	return reported, rows.Err()
}

// UpdateStatus persists a cascade-recomputed path status
func (r *PathRepository) UpdateStatus(id string, status models.PathStatus) error {
	_, err := r.db.Exec(`UPDATE paths SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update path status: %w", err)
	}
	return nil
}

// UpdateDetails applies a partial edit of title/description/visibility
func (r *PathRepository) UpdateDetails(id string, req models.UpdatePathRequest) error {
	var sets []string
	var args []interface{}

	if req.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *req.Title)
	}
	if req.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *req.Description)
	}
	if req.Visibility != nil {
		sets = append(sets, "visibility = ?")
		args = append(args, *req.Visibility)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.db.Exec(`UPDATE paths SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("failed to update path: %w", err)
	}
	return nil
}

func (r *PathRepository) list(query string, args ...interface{}) ([]models.Path, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query paths: %w", err)
	}
	defer rows.Close()

	var paths []models.Path
	for rows.Next() {
		path, err := scanPathRows(rows)
		if err != nil {
			return nil, err
		}
		paths = append(paths, *path)
	}
	return paths, rows.Err()
}

func scanPath(row *sql.Row) (*models.Path, error) {
	var p models.Path
	var status sql.NullString
	err := row.Scan(
		&p.ID, &p.UserID, &p.Origin.Lat, &p.Origin.Lng,
		&p.Destination.Lat, &p.Destination.Lng,
		&p.Visibility, &p.CreationMode, &p.Title, &p.Description,
		&p.DistanceKm, &status, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan path: %w", err)
	}
	applyPathStatus(&p, status)
	return &p, nil
}

func scanPathRows(rows *sql.Rows) (*models.Path, error) {
	var p models.Path
	var status sql.NullString
	err := rows.Scan(
		&p.ID, &p.UserID, &p.Origin.Lat, &p.Origin.Lng,
		&p.Destination.Lat, &p.Destination.Lng,
		&p.Visibility, &p.CreationMode, &p.Title, &p.Description,
		&p.DistanceKm, &status, &p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan path: %w", err)
	}
	applyPathStatus(&p, status)
	return &p, nil
}

func applyPathStatus(p *models.Path, status sql.NullString) {
	if status.Valid {
		s := models.PathStatus(status.String)
		p.Status = &s
	}
}
