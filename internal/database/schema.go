package database

import (
	"database/sql"
	"fmt"
)

// schemaStatements bootstrap the full schema. The app owns a fixed
// schema, so plain CREATE IF NOT EXISTS replaces versioned migrations.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS segments (
		id TEXT PRIMARY KEY,
		polyline TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'OPTIMAL',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_segments_polyline ON segments(polyline)`,
	`CREATE TABLE IF NOT EXISTS paths (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		origin_lat REAL NOT NULL,
		origin_lng REAL NOT NULL,
		destination_lat REAL NOT NULL,
		destination_lng REAL NOT NULL,
		visibility TEXT NOT NULL DEFAULT 'PUBLIC',
		creation_mode TEXT NOT NULL DEFAULT 'MANUAL',
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		distance_km REAL NOT NULL DEFAULT 0,
		status TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_paths_user ON paths(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_paths_visibility ON paths(visibility)`,
	`CREATE TABLE IF NOT EXISTS path_segments (
		path_id TEXT NOT NULL REFERENCES paths(id) ON DELETE CASCADE,
		segment_id TEXT NOT NULL REFERENCES segments(id),
		next_segment_id TEXT,
		status TEXT NOT NULL DEFAULT 'OPTIMAL',
		PRIMARY KEY (path_id, segment_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_path_segments_segment ON path_segments(segment_id)`,
	`CREATE TABLE IF NOT EXISTS trips (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS trip_segments (
		trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		segment_id TEXT NOT NULL REFERENCES segments(id),
		next_segment_id TEXT,
		PRIMARY KEY (trip_id, segment_id)
	)`,
	`CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		segment_id TEXT NOT NULL REFERENCES segments(id),
		obstacle_type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'CREATED',
		path_status TEXT NOT NULL,
		position_lat REAL NOT NULL DEFAULT 0,
		position_lng REAL NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_segment ON reports(segment_id)`,
}

// Bootstrap applies the schema to an open connection. Init calls it on
// startup; tests call it on in-memory databases.
func Bootstrap(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
