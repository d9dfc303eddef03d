package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// IngestRunRepository handles database operations for ingestion audit rows
type IngestRunRepository struct {
	db *sql.DB
}

// NewIngestRunRepository creates a new ingest-run repository
func NewIngestRunRepository(db *sql.DB) *IngestRunRepository {
	return &IngestRunRepository{db: db}
}

// Insert records one completed ingestion run.
func (r *IngestRunRepository) Insert(run models.IngestRun) error {
	_, err := r.db.Exec(`INSERT INTO ingest_runs
		(id, source, activities, zones, intensity_records, kepsus_records, header_fallback, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.Activities, run.Zones,
		run.IntensityRecords, run.KepsusRecords, boolInt(run.HeaderFallback), run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert ingest run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (r *IngestRunRepository) List(limit int) ([]models.IngestRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(`SELECT id, source, activities, zones, intensity_records,
		kepsus_records, header_fallback, created_at
		FROM ingest_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingest runs: %w", err)
	}
	defer rows.Close()

	var runs []models.IngestRun
	for rows.Next() {
		var run models.IngestRun
		var fallback int
		if err := rows.Scan(&run.ID, &run.Source, &run.Activities, &run.Zones,
			&run.IntensityRecords, &run.KepsusRecords, &fallback, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ingest run: %w", err)
		}
		run.HeaderFallback = fallback != 0
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
