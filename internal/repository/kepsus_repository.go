package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengzang/rdtr-backend-go/internal/database"
	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// KepsusRepository handles database operations for special-provision records
type KepsusRepository struct {
	db *sql.DB
}

// NewKepsusRepository creates a new kepsus repository
func NewKepsusRepository(db *sql.DB) *KepsusRepository {
	return &KepsusRepository{db: db}
}

// Replace swaps in a freshly ingested record set.
func (r *KepsusRepository) Replace(records []models.KepsusActivity) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM kepsus_activities`); err != nil {
			return fmt.Errorf("failed to clear kepsus records: %w", err)
		}
		stmt, err := tx.Prepare(`INSERT INTO kepsus_activities
			(tabel, kawasan_type, kode_swp, kode_blok, activity, luas, ketentuan)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare kepsus insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			_, err := stmt.Exec(rec.Metadata.Tabel, rec.Metadata.KawasanType,
				rec.Metadata.KodeSWP, rec.Metadata.KodeBlok,
				rec.Activity, rec.Zones.Luas, rec.Zones.Ketentuan)
			if err != nil {
				return fmt.Errorf("failed to insert kepsus record %q: %w", rec.Activity, err)
			}
		}
		return nil
	})
}

// Filter retrieves special-provision records matching the filter.
func (r *KepsusRepository) Filter(filter models.KepsusFilter) ([]models.KepsusActivity, error) {
	var conditions []string
	var args []interface{}

	if filter.KawasanType != "" {
		conditions = append(conditions, "kawasan_type = ?")
		args = append(args, filter.KawasanType)
	}
	if filter.KodeSWP != "" {
		conditions = append(conditions, "kode_swp = ?")
		args = append(args, filter.KodeSWP)
	}
	if filter.KodeBlok != "" {
		conditions = append(conditions, "kode_blok = ?")
		args = append(args, filter.KodeBlok)
	}
	if filter.Search != "" {
		conditions = append(conditions, "activity LIKE ?")
		args = append(args, "%"+filter.Search+"%")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.db.Query(`SELECT tabel, kawasan_type, kode_swp, kode_blok, activity, luas, ketentuan
		FROM kepsus_activities`+whereClause+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query kepsus records: %w", err)
	}
	defer rows.Close()

	var records []models.KepsusActivity
	for rows.Next() {
		var rec models.KepsusActivity
		if err := rows.Scan(&rec.Metadata.Tabel, &rec.Metadata.KawasanType,
			&rec.Metadata.KodeSWP, &rec.Metadata.KodeBlok,
			&rec.Activity, &rec.Zones.Luas, &rec.Zones.Ketentuan); err != nil {
			return nil, fmt.Errorf("failed to scan kepsus record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
