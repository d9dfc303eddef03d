package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengzang/rdtr-backend-go/internal/database"
	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// ActivityRepository handles database operations for permitted-use activities
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// ReplaceDataset swaps in a freshly ingested dataset for one source. The old
// rows are deleted and the new ones inserted in a single transaction, so
// readers never observe a half-replaced source.
func (r *ActivityRepository) ReplaceDataset(source string, ds *models.ZoningDataset) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM activities WHERE source = ?`, source); err != nil {
			return fmt.Errorf("failed to clear activities for %s: %w", source, err)
		}

		actStmt, err := tx.Prepare(`INSERT INTO activities (source, activity_number, activity) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare activity insert: %w", err)
		}
		defer actStmt.Close()

		zoneStmt, err := tx.Prepare(`INSERT INTO activity_zones (activity_id, zone, permission) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare zone insert: %w", err)
		}
		defer zoneStmt.Close()

		for _, act := range ds.Activities {
			res, err := actStmt.Exec(source, act.ActivityNumber, act.Activity)
			if err != nil {
				return fmt.Errorf("failed to insert activity %q: %w", act.Activity, err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to get activity id: %w", err)
			}
			for zone, perm := range act.Zones {
				// Stored in canonical form so the permission IN (...)
				// filter compares equal with parsed combinations.
				if _, err := zoneStmt.Exec(id, zone, models.CanonicalPermission(perm)); err != nil {
					return fmt.Errorf("failed to insert zone entry %q/%q: %w", act.Activity, zone, err)
				}
			}
		}
		return nil
	})
}

// Search retrieves activities matching the filter. combos holds the parsed
// regulation combination strings; an activity matches when one of its zone
// permissions (restricted to the selected zone, if any) equals one of them.
func (r *ActivityRepository) Search(filter models.ActivityFilter, combos []string) ([]models.Activity, int, error) {
	source := filter.DataSource
	if source == "" {
		source = models.SourceTrikora
	}

	conditions := []string{"a.source = ?"}
	args := []interface{}{source}

	if filter.Search != "" {
		conditions = append(conditions, "a.activity LIKE ?")
		args = append(args, "%"+filter.Search+"%")
	}

	zoneCond := ""
	if filter.Zone != "" || len(combos) > 0 {
		var sub []string
		var subArgs []interface{}
		if filter.Zone != "" {
			sub = append(sub, "az.zone = ?")
			subArgs = append(subArgs, filter.Zone)
		}
		if len(combos) > 0 {
			placeholders := strings.TrimSuffix(strings.Repeat("?,", len(combos)), ",")
			sub = append(sub, "az.permission IN ("+placeholders+")")
			for _, c := range combos {
				subArgs = append(subArgs, c)
			}
		}
		zoneCond = `EXISTS (SELECT 1 FROM activity_zones az WHERE az.activity_id = a.id AND ` +
			strings.Join(sub, " AND ") + `)`
		conditions = append(conditions, zoneCond)
		args = append(args, subArgs...)
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM activities a` + whereClause
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	query := `SELECT a.id, a.activity_number, a.activity FROM activities a` + whereClause + ` ORDER BY a.id`
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.PageSize, (page-1)*filter.PageSize)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var ids []int64
	var activities []models.Activity
	for rows.Next() {
		var id int64
		var act models.Activity
		if err := rows.Scan(&id, &act.ActivityNumber, &act.Activity); err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity: %w", err)
		}
		act.Zones = make(map[string]string)
		ids = append(ids, id)
		activities = append(activities, act)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate activities: %w", err)
	}

	if err := r.attachZones(ids, activities); err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}

// attachZones loads the zone permission maps for the given activity ids.
func (r *ActivityRepository) attachZones(ids []int64, activities []models.Activity) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		args[i] = id
		index[id] = i
	}

	rows, err := r.db.Query(
		`SELECT activity_id, zone, permission FROM activity_zones WHERE activity_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return fmt.Errorf("failed to query activity zones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var zone, perm string
		if err := rows.Scan(&id, &zone, &perm); err != nil {
			return fmt.Errorf("failed to scan activity zone: %w", err)
		}
		if i, ok := index[id]; ok {
			activities[i].Zones[zone] = perm
		}
	}
	return rows.Err()
}

// Zones returns the distinct zone names of one source in sorted order.
func (r *ActivityRepository) Zones(source string) ([]string, error) {
	if source == "" {
		source = models.SourceTrikora
	}
	rows, err := r.db.Query(
		`SELECT DISTINCT az.zone FROM activity_zones az
		 JOIN activities a ON a.id = az.activity_id
		 WHERE a.source = ? ORDER BY az.zone`, source)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	var zones []string
	for rows.Next() {
		var zone string
		if err := rows.Scan(&zone); err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, zone)
	}
	return zones, rows.Err()
}

// Count returns the number of activities stored for a source.
func (r *ActivityRepository) Count(source string) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM activities WHERE source = ?`, source).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return n, nil
}
