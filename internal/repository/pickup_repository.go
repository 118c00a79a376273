package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/pickup-api/internal/models"
)

// PickupRepository persists pickup records. Timestamps are stored as naive
// local-time text in a fixed YYYY-MM-DD HH:MM:SS layout, so lexicographic
// order equals chronological order and left(col, 10) is the calendar date.
type PickupRepository struct {
	db *sqlx.DB
}

// NewPickupRepository constructs a PickupRepository.
func NewPickupRepository(db *sqlx.DB) *PickupRepository {
	return &PickupRepository{db: db}
}

// Insert stores a new record and fills in the generated id.
func (r *PickupRepository) Insert(ctx context.Context, record *models.PickupRecord) error {
	const query = `INSERT INTO pickup_records (student_id, picked_up_by, picked_up_at) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.GetContext(ctx, &record.ID, query, record.StudentID, record.PickedUpBy, record.PickedUpAt); err != nil {
		return fmt.Errorf("insert pickup record: %w", err)
	}
	return nil
}

// List returns raw records for the front-desk read, optionally narrowed to
// one student and one exact calendar date.
func (r *PickupRepository) List(ctx context.Context, studentID, date string) ([]models.PickupRecord, error) {
	query := "SELECT id, student_id, picked_up_by, picked_up_at FROM pickup_records"
	conditions := []string{}
	args := []interface{}{}

	if studentID != "" {
		conditions = append(conditions, fmt.Sprintf("student_id = $%d", len(args)+1))
		args = append(args, studentID)
	}
	if date != "" {
		conditions = append(conditions, fmt.Sprintf("left(picked_up_at, 10) = $%d", len(args)+1))
		args = append(args, date)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	records := make([]models.PickupRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list pickup records: %w", err)
	}
	return records, nil
}

// ListAdmin returns records joined with student identity, newest pickup
// first. Filters AND-append onto a true base predicate with bound
// parameters only.
func (r *PickupRepository) ListAdmin(ctx context.Context, filter models.PickupFilter) ([]models.AdminPickupRecord, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.ClassName != "" {
		where = append(where, fmt.Sprintf("s.class_name = $%d", len(args)+1))
		args = append(args, filter.ClassName)
	}
	if filter.StudentID != "" {
		where = append(where, fmt.Sprintf("pr.student_id = $%d", len(args)+1))
		args = append(args, filter.StudentID)
	}
	if filter.DateFrom != "" {
		where = append(where, fmt.Sprintf("left(pr.picked_up_at, 10) >= $%d", len(args)+1))
		args = append(args, filter.DateFrom)
	}
	if filter.DateTo != "" {
		where = append(where, fmt.Sprintf("left(pr.picked_up_at, 10) <= $%d", len(args)+1))
		args = append(args, filter.DateTo)
	}

	query := fmt.Sprintf(`SELECT pr.id, pr.student_id, pr.picked_up_by, pr.picked_up_at, s.name AS student_name, s.class_name
        FROM pickup_records pr
        JOIN students s ON s.id = pr.student_id
        WHERE %s
        ORDER BY pr.picked_up_at DESC`, strings.Join(where, " AND "))

	records := make([]models.AdminPickupRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list admin pickup records: %w", err)
	}
	return records, nil
}

// ExistsByID reports whether a pickup record exists.
func (r *PickupRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT 1 FROM pickup_records WHERE id = $1 LIMIT 1`
	var one int
	if err := r.db.GetContext(ctx, &one, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check pickup record: %w", err)
	}
	return true, nil
}

// Update replaces all mutable fields of a record. Record ids are immutable.
func (r *PickupRepository) Update(ctx context.Context, record *models.PickupRecord) error {
	const query = `UPDATE pickup_records SET student_id = $1, picked_up_by = $2, picked_up_at = $3 WHERE id = $4`
	if _, err := r.db.ExecContext(ctx, query, record.StudentID, record.PickedUpBy, record.PickedUpAt, record.ID); err != nil {
		return fmt.Errorf("update pickup record: %w", err)
	}
	return nil
}

// DeleteByIDs removes all matching rows in one statement and returns the
// number actually deleted. Unmatched ids are ignored.
func (r *PickupRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	const query = `DELETE FROM pickup_records WHERE id = ANY($1)`
	result, err := r.db.ExecContext(ctx, query, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("delete pickup records: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted pickup records: %w", err)
	}
	return deleted, nil
}

// CountByDate aggregates pickups per calendar day, oldest day first.
func (r *PickupRepository) CountByDate(ctx context.Context) ([]models.PickupStat, error) {
	const query = `SELECT left(picked_up_at, 10) AS date, COUNT(*) AS count FROM pickup_records GROUP BY left(picked_up_at, 10) ORDER BY date`
	stats := make([]models.PickupStat, 0)
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("count pickups by date: %w", err)
	}
	return stats, nil
}
