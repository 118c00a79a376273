package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudentMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestStudentRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newStudentMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "class_name", "created_at"}).
		AddRow("S001", "Wang Fang", "1A", "2024-01-15 09:00:00")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, class_name, created_at FROM students WHERE id = $1`)).
		WithArgs("S001").
		WillReturnRows(rows)

	student, err := repo.FindByID(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, "Wang Fang", student.Name)
	require.NotNil(t, student.ClassName)
	assert.Equal(t, "1A", *student.ClassName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByIDNoRows(t *testing.T) {
	db, mock, cleanup := newStudentMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, class_name, created_at FROM students WHERE id = $1`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	require.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryExistsByID(t *testing.T) {
	db, mock, cleanup := newStudentMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM students WHERE id = $1 LIMIT 1`)).
		WithArgs("S001").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM students WHERE id = $1 LIMIT 1`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.ExistsByID(context.Background(), "S001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryListClasses(t *testing.T) {
	db, mock, cleanup := newStudentMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"class_name"}).AddRow("1A").AddRow("1B")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT class_name FROM students WHERE class_name IS NOT NULL ORDER BY class_name`)).
		WillReturnRows(rows)

	classes, err := repo.ListClasses(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "1A", classes[0].ClassName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryListRoster(t *testing.T) {
	db, mock, cleanup := newStudentMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "class_name"}).
		AddRow("S001", "Wang Fang", "1A").
		AddRow("S002", "Li Ming", "1B")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, class_name FROM students ORDER BY class_name, name`)).
		WillReturnRows(rows)

	roster, err := repo.ListRoster(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "S002", roster[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
