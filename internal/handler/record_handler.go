package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pickup-api/internal/dto"
	"github.com/noah-isme/pickup-api/internal/models"
	appErrors "github.com/noah-isme/pickup-api/pkg/errors"
	"github.com/noah-isme/pickup-api/pkg/response"
)

type recordService interface {
	Create(ctx context.Context, req dto.CreateRecordRequest) (*dto.CreateRecordResponse, error)
	List(ctx context.Context, studentID, date string) ([]models.PickupRecord, error)
	Stats(ctx context.Context) ([]models.PickupStat, error)
}

// RecordHandler exposes the front-desk pickup endpoints.
type RecordHandler struct {
	records recordService
}

// NewRecordHandler constructs RecordHandler.
func NewRecordHandler(records recordService) *RecordHandler {
	return &RecordHandler{records: records}
}

// Create godoc
// @Summary Log a pickup from the front desk
// @Tags Records
// @Accept json
// @Produce json
// @Param payload body dto.CreateRecordRequest true "Pickup payload"
// @Success 201 {object} dto.CreateRecordResponse
// @Failure 400 {object} map[string]string
// @Router /records [post]
func (h *RecordHandler) Create(c *gin.Context) {
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Missing student_id"))
		return
	}
	res, err := h.records.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}

// List godoc
// @Summary Read pickup records
// @Tags Records
// @Produce json
// @Param student_id query string false "Filter by student"
// @Param date query string false "Exact calendar date (YYYY-MM-DD)"
// @Success 200 {array} models.PickupRecord
// @Router /records [get]
func (h *RecordHandler) List(c *gin.Context) {
	records, err := h.records.List(c.Request.Context(), c.Query("student_id"), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// Stats godoc
// @Summary Pickup counts per calendar day
// @Tags Records
// @Produce json
// @Success 200 {array} models.PickupStat
// @Router /stats [get]
func (h *RecordHandler) Stats(c *gin.Context) {
	stats, err := h.records.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}
