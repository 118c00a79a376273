package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pickup-api/internal/models"
	"github.com/noah-isme/pickup-api/pkg/response"
)

type studentService interface {
	Get(ctx context.Context, id string) (*models.Student, error)
	Classes(ctx context.Context) ([]models.ClassOption, error)
	Roster(ctx context.Context) ([]models.RosterEntry, error)
}

// StudentHandler exposes roster lookups.
type StudentHandler struct {
	students studentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// Get godoc
// @Summary Look up one student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} map[string]string
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Classes godoc
// @Summary Distinct class names for the admin filters
// @Tags Admin
// @Produce json
// @Success 200 {array} models.ClassOption
// @Router /admin/classes [get]
func (h *StudentHandler) Classes(c *gin.Context) {
	classes, err := h.students.Classes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classes)
}

// Roster godoc
// @Summary Full student roster for the admin filters
// @Tags Admin
// @Produce json
// @Success 200 {array} models.RosterEntry
// @Router /admin/students [get]
func (h *StudentHandler) Roster(c *gin.Context) {
	roster, err := h.students.Roster(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roster)
}
