package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/pickup-api/internal/models"
)

// StudentRepository reads the student roster. The roster is provisioned out
// of band and is read-only from this service.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByID fetches one student. sql.ErrNoRows passes through for the
// service layer to map.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	const query = `SELECT id, name, class_name, created_at FROM students WHERE id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByID reports whether a student row exists.
func (r *StudentRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	const query = `SELECT 1 FROM students WHERE id = $1 LIMIT 1`
	var one int
	if err := r.db.GetContext(ctx, &one, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check student: %w", err)
	}
	return true, nil
}

// ListClasses returns the distinct class names present in the roster,
// alphabetically, for the admin filter dropdown.
func (r *StudentRepository) ListClasses(ctx context.Context) ([]models.ClassOption, error) {
	const query = `SELECT DISTINCT class_name FROM students WHERE class_name IS NOT NULL ORDER BY class_name`
	classes := make([]models.ClassOption, 0)
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// ListRoster returns the full roster ordered by class then name.
func (r *StudentRepository) ListRoster(ctx context.Context) ([]models.RosterEntry, error) {
	const query = `SELECT id, name, class_name FROM students ORDER BY class_name, name`
	roster := make([]models.RosterEntry, 0)
	if err := r.db.SelectContext(ctx, &roster, query); err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return roster, nil
}
