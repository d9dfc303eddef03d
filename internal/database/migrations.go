package database

import (
	"database/sql"
	"fmt"
)

// migrations create the zoning query store. Everything here is rebuilt by
// re-ingestion, so the schema stays flat: idempotent CREATE IF NOT EXISTS
// statements and no version bookkeeping.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		activity_number TEXT NOT NULL,
		activity TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_source ON activities(source)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_name ON activities(activity)`,

	`CREATE TABLE IF NOT EXISTS activity_zones (
		activity_id INTEGER NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
		zone TEXT NOT NULL,
		permission TEXT NOT NULL,
		PRIMARY KEY (activity_id, zone)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_zones_zone ON activity_zones(zone)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_zones_permission ON activity_zones(permission)`,

	`CREATE TABLE IF NOT EXISTS intensity_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		zona TEXT NOT NULL,
		sub_zona TEXT NOT NULL,
		jenis TEXT NOT NULL DEFAULT '',
		kdb_maks TEXT,
		klb_maks TEXT,
		kdh_min TEXT,
		ktb_maks TEXT,
		gsb_arteri TEXT,
		gsb_kolektor TEXT,
		gsb_lokal TEXT,
		jbs_min TEXT,
		jbb_min TEXT,
		tinggi_maks TEXT,
		luas_kaveling_min TEXT,
		tampilan TEXT NOT NULL DEFAULT '',
		keterangan TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_intensity_zona ON intensity_records(zona)`,
	`CREATE INDEX IF NOT EXISTS idx_intensity_sub_zona ON intensity_records(sub_zona)`,

	`CREATE TABLE IF NOT EXISTS kepsus_activities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tabel TEXT NOT NULL,
		kawasan_type TEXT NOT NULL,
		kode_swp TEXT NOT NULL,
		kode_blok TEXT NOT NULL,
		activity TEXT NOT NULL,
		luas TEXT NOT NULL DEFAULT '',
		ketentuan TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_kepsus_kawasan ON kepsus_activities(kawasan_type)`,

	`CREATE TABLE IF NOT EXISTS ingest_runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		activities INTEGER NOT NULL DEFAULT 0,
		zones INTEGER NOT NULL DEFAULT 0,
		intensity_records INTEGER NOT NULL DEFAULT 0,
		kepsus_records INTEGER NOT NULL DEFAULT 0,
		header_fallback INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	)`,
}

// Migrate applies the schema to db.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
