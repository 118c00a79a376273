package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pickup-api/internal/dto"
	"github.com/noah-isme/pickup-api/internal/models"
	appErrors "github.com/noah-isme/pickup-api/pkg/errors"
	"github.com/noah-isme/pickup-api/pkg/response"
)

type adminRecordService interface {
	AdminList(ctx context.Context, filter models.PickupFilter) ([]models.AdminPickupRecord, error)
	AdminCreate(ctx context.Context, req dto.AdminCreateRecordRequest) (*dto.AdminCreateRecordResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateRecordRequest) (*dto.UpdateRecordResponse, error)
	Delete(ctx context.Context, req dto.DeleteRecordsRequest) (*dto.DeleteRecordsResponse, error)
	Export(ctx context.Context, filter models.PickupFilter, format string) (*dto.ExportResult, error)
}

// AdminRecordHandler exposes the admin record management endpoints.
type AdminRecordHandler struct {
	records adminRecordService
}

// NewAdminRecordHandler constructs AdminRecordHandler.
func NewAdminRecordHandler(records adminRecordService) *AdminRecordHandler {
	return &AdminRecordHandler{records: records}
}

func filterFromQuery(c *gin.Context) models.PickupFilter {
	return models.PickupFilter{
		ClassName: c.Query("class_name"),
		StudentID: c.Query("student_id"),
		DateFrom:  c.Query("date_from"),
		DateTo:    c.Query("date_to"),
	}
}

// List godoc
// @Summary Filtered pickup records joined with student identity
// @Tags Admin
// @Produce json
// @Param class_name query string false "Exact class name"
// @Param student_id query string false "Exact student id"
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} models.AdminPickupRecord
// @Router /admin/records [get]
func (h *AdminRecordHandler) List(c *gin.Context) {
	records, err := h.records.AdminList(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// Create godoc
// @Summary Add a pickup record
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body dto.AdminCreateRecordRequest true "Record payload"
// @Success 201 {object} dto.AdminCreateRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/records [post]
func (h *AdminRecordHandler) Create(c *gin.Context) {
	var req dto.AdminCreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Missing student_id"))
		return
	}
	res, err := h.records.AdminCreate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}

// Update godoc
// @Summary Replace a pickup record
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param payload body dto.UpdateRecordRequest true "Record payload"
// @Success 200 {object} dto.UpdateRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/records/{id} [put]
func (h *AdminRecordHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid record id"))
		return
	}
	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid payload"))
		return
	}
	res, err := h.records.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Delete godoc
// @Summary Bulk delete pickup records
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body dto.DeleteRecordsRequest true "Record ids"
// @Success 200 {object} dto.DeleteRecordsResponse
// @Failure 400 {object} map[string]string
// @Router /admin/records [delete]
func (h *AdminRecordHandler) Delete(c *gin.Context) {
	var req dto.DeleteRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Missing or invalid ids"))
		return
	}
	res, err := h.records.Delete(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Export godoc
// @Summary Download the filtered records as CSV or PDF
// @Tags Admin
// @Produce octet-stream
// @Param format query string false "csv (default) or pdf"
// @Param class_name query string false "Exact class name"
// @Param student_id query string false "Exact student id"
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200
// @Failure 400 {object} map[string]string
// @Router /admin/records/export [get]
func (h *AdminRecordHandler) Export(c *gin.Context) {
	result, err := h.records.Export(c.Request.Context(), filterFromQuery(c), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
