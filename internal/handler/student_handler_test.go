package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pickup-api/internal/models"
	appErrors "github.com/noah-isme/pickup-api/pkg/errors"
)

type studentServiceMock struct {
	getResp     *models.Student
	getErr      error
	lastID      string
	classesResp []models.ClassOption
	classesErr  error
	rosterResp  []models.RosterEntry
	rosterErr   error
}

func (m *studentServiceMock) Get(ctx context.Context, id string) (*models.Student, error) {
	m.lastID = id
	return m.getResp, m.getErr
}

func (m *studentServiceMock) Classes(ctx context.Context) ([]models.ClassOption, error) {
	return m.classesResp, m.classesErr
}

func (m *studentServiceMock) Roster(ctx context.Context) ([]models.RosterEntry, error) {
	return m.rosterResp, m.rosterErr
}

func TestStudentHandlerGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	class := "1A"
	mockSvc := &studentServiceMock{
		getResp: &models.Student{ID: "S001", Name: "Wang Fang", ClassName: &class, CreatedAt: "2024/01/15 09:00:00"},
	}
	handler := NewStudentHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/students/S001", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "S001"}}

	handler.Get(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "S001", mockSvc.lastID)

	var body models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Wang Fang", body.Name)
}

func TestStudentHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &studentServiceMock{getErr: appErrors.Clone(appErrors.ErrNotFound, "Student not found")}
	handler := NewStudentHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/students/GHOST", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "GHOST"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Student not found", body["error"])
}

func TestStudentHandlerClasses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &studentServiceMock{classesResp: []models.ClassOption{{ClassName: "1A"}}}
	handler := NewStudentHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/admin/classes", nil)
	c.Request = req

	handler.Classes(c)
	require.Equal(t, http.StatusOK, w.Code)

	var body []models.ClassOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "1A", body[0].ClassName)
}

func TestStudentHandlerRoster(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &studentServiceMock{rosterResp: []models.RosterEntry{{ID: "S001", Name: "Wang Fang"}}}
	handler := NewStudentHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/admin/students", nil)
	c.Request = req

	handler.Roster(c)
	require.Equal(t, http.StatusOK, w.Code)

	var body []models.RosterEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "S001", body[0].ID)
}
