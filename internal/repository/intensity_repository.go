package repository

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/jengzang/rdtr-backend-go/internal/database"
	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// IntensityRepository handles database operations for intensity records
type IntensityRepository struct {
	db *sql.DB
}

// NewIntensityRepository creates a new intensity repository
func NewIntensityRepository(db *sql.DB) *IntensityRepository {
	return &IntensityRepository{db: db}
}

// Replace swaps in a freshly ingested record set.
func (r *IntensityRepository) Replace(records []models.IntensityRecord) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM intensity_records`); err != nil {
			return fmt.Errorf("failed to clear intensity records: %w", err)
		}
		stmt, err := tx.Prepare(`INSERT INTO intensity_records
			(zona, sub_zona, jenis, kdb_maks, klb_maks, kdh_min, ktb_maks,
			 gsb_arteri, gsb_kolektor, gsb_lokal, jbs_min, jbb_min,
			 tinggi_maks, luas_kaveling_min, tampilan, keterangan)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare intensity insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			_, err := stmt.Exec(
				rec.Zona, rec.SubZona, rec.Jenis,
				valueText(rec.KDBMaks), valueText(rec.KLBMaks),
				valueText(rec.KDHMin), valueText(rec.KTBMaks),
				valueText(rec.GSBArteri), valueText(rec.GSBKolektor), valueText(rec.GSBLokal),
				valueText(rec.JBSMin), valueText(rec.JBBMin),
				valueText(rec.TinggiMaks), valueText(rec.LuasKavelingMin),
				rec.Tampilan, rec.Keterangan,
			)
			if err != nil {
				return fmt.Errorf("failed to insert intensity record %q/%q: %w", rec.Zona, rec.SubZona, err)
			}
		}
		return nil
	})
}

// Filter retrieves records matching the filter in stored order.
func (r *IntensityRepository) Filter(filter models.IntensityFilter) ([]models.IntensityRecord, error) {
	var conditions []string
	var args []interface{}

	if filter.Zona != "" {
		conditions = append(conditions, "zona = ?")
		args = append(args, filter.Zona)
	}
	if filter.SubZona != "" {
		conditions = append(conditions, "sub_zona = ?")
		args = append(args, filter.SubZona)
	}
	if filter.Jenis != "" {
		conditions = append(conditions, "jenis = ?")
		args = append(args, filter.Jenis)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.db.Query(`SELECT zona, sub_zona, jenis, kdb_maks, klb_maks, kdh_min, ktb_maks,
		gsb_arteri, gsb_kolektor, gsb_lokal, jbs_min, jbb_min,
		tinggi_maks, luas_kaveling_min, tampilan, keterangan
		FROM intensity_records`+whereClause+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query intensity records: %w", err)
	}
	defer rows.Close()

	var records []models.IntensityRecord
	for rows.Next() {
		var rec models.IntensityRecord
		var kdb, klb, kdh, ktb, gsbA, gsbK, gsbL, jbs, jbb, tinggi, luas sql.NullString
		if err := rows.Scan(&rec.Zona, &rec.SubZona, &rec.Jenis,
			&kdb, &klb, &kdh, &ktb, &gsbA, &gsbK, &gsbL, &jbs, &jbb,
			&tinggi, &luas, &rec.Tampilan, &rec.Keterangan); err != nil {
			return nil, fmt.Errorf("failed to scan intensity record: %w", err)
		}
		rec.KDBMaks = valueAny(kdb)
		rec.KLBMaks = valueAny(klb)
		rec.KDHMin = valueAny(kdh)
		rec.KTBMaks = valueAny(ktb)
		rec.GSBArteri = valueAny(gsbA)
		rec.GSBKolektor = valueAny(gsbK)
		rec.GSBLokal = valueAny(gsbL)
		rec.JBSMin = valueAny(jbs)
		rec.JBBMin = valueAny(jbb)
		rec.TinggiMaks = valueAny(tinggi)
		rec.LuasKavelingMin = valueAny(luas)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// FilterLists returns the distinct zona/sub-zona/jenis values in sorted order.
func (r *IntensityRepository) FilterLists() (*models.IntensityFilterLists, error) {
	lists := &models.IntensityFilterLists{}
	for _, q := range []struct {
		column string
		dest   *[]string
	}{
		{"zona", &lists.ZonaList},
		{"sub_zona", &lists.SubZonaList},
		{"jenis", &lists.JenisKhususList},
	} {
		rows, err := r.db.Query(`SELECT DISTINCT ` + q.column +
			` FROM intensity_records WHERE ` + q.column + ` != '' ORDER BY ` + q.column)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s list: %w", q.column, err)
		}
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan %s value: %w", q.column, err)
			}
			*q.dest = append(*q.dest, v)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return lists, nil
}

// valueText serializes a coerced cell value for storage; nil stays NULL.
func valueText(v any) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: fmt.Sprintf("%v", v), Valid: true}
}

// valueAny restores a stored cell, re-typing numerals as float64 so the
// sqlite path serves the same shapes as the JSON files.
func valueAny(v sql.NullString) any {
	if !v.Valid {
		return nil
	}
	if f, err := strconv.ParseFloat(v.String, 64); err == nil {
		return f
	}
	return v.String
}
