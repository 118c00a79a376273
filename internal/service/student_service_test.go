package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pickup-api/internal/models"
)

type mockStudentRepo struct {
	students map[string]models.Student
	classes  []models.ClassOption
	roster   []models.RosterEntry
	err      error
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	student, ok := m.students[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &student, nil
}

func (m *mockStudentRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	_, ok := m.students[id]
	return ok, m.err
}

func (m *mockStudentRepo) ListClasses(ctx context.Context) ([]models.ClassOption, error) {
	return m.classes, m.err
}

func (m *mockStudentRepo) ListRoster(ctx context.Context) ([]models.RosterEntry, error) {
	return m.roster, m.err
}

func TestStudentServiceGet(t *testing.T) {
	class := "1A"
	repo := &mockStudentRepo{students: map[string]models.Student{
		"S001": {ID: "S001", Name: "Wang Fang", ClassName: &class, CreatedAt: "2024-01-15 09:00:00"},
	}}
	svc := NewStudentService(repo, nil)

	student, err := svc.Get(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, "Wang Fang", student.Name)
	assert.Equal(t, "2024/01/15 09:00:00", student.CreatedAt)
}

func TestStudentServiceGetNotFound(t *testing.T) {
	svc := NewStudentService(&mockStudentRepo{}, nil)

	_, err := svc.Get(context.Background(), "GHOST")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestStudentServiceClasses(t *testing.T) {
	repo := &mockStudentRepo{classes: []models.ClassOption{{ClassName: "1A"}, {ClassName: "2B"}}}
	svc := NewStudentService(repo, nil)

	classes, err := svc.Classes(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "1A", classes[0].ClassName)
}

func TestStudentServiceRoster(t *testing.T) {
	class := "1A"
	repo := &mockStudentRepo{roster: []models.RosterEntry{{ID: "S001", Name: "Wang Fang", ClassName: &class}}}
	svc := NewStudentService(repo, nil)

	roster, err := svc.Roster(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "S001", roster[0].ID)
}
