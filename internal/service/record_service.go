package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/pickup-api/internal/dto"
	"github.com/noah-isme/pickup-api/internal/models"
	"github.com/noah-isme/pickup-api/internal/timefmt"
	appErrors "github.com/noah-isme/pickup-api/pkg/errors"
	"github.com/noah-isme/pickup-api/pkg/export"
)

const statsCacheKey = "pickup:stats"

type pickupRepository interface {
	Insert(ctx context.Context, record *models.PickupRecord) error
	List(ctx context.Context, studentID, date string) ([]models.PickupRecord, error)
	ListAdmin(ctx context.Context, filter models.PickupFilter) ([]models.AdminPickupRecord, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, record *models.PickupRecord) error
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
	CountByDate(ctx context.Context) ([]models.PickupStat, error)
}

type studentChecker interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type statsCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RecordService validates and applies pickup record mutations and serves
// the filtered reads behind the admin table.
type RecordService struct {
	records   pickupRepository
	students  studentChecker
	cache     statsCache
	cacheTTL  time.Duration
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger

	csv *export.CSVExporter
	pdf *export.PDFExporter
}

// NewRecordService constructs the record service. cache and metrics may be
// nil; caching then degrades to direct reads.
func NewRecordService(records pickupRepository, students studentChecker, cache statsCache, cacheTTL time.Duration, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *RecordService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordService{
		records:   records,
		students:  students,
		cache:     cache,
		cacheTTL:  cacheTTL,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

// Create logs a pickup from the front-desk confirm flow. The scanned
// student id is trusted: no existence check happens on this path.
func (s *RecordService) Create(ctx context.Context, req dto.CreateRecordRequest) (*dto.CreateRecordResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Missing student_id")
	}

	record := &models.PickupRecord{
		StudentID:  req.StudentID,
		PickedUpBy: req.PickedUpBy,
		PickedUpAt: timefmt.Now(),
	}
	if err := s.records.Insert(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to create pickup record")
	}
	s.invalidateStats(ctx)

	return &dto.CreateRecordResponse{Success: true, PickedUpAt: timefmt.Display(record.PickedUpAt)}, nil
}

// AdminCreate logs a pickup from the admin add form. Unlike the front-desk
// path it verifies the student exists and accepts an explicit timestamp.
func (s *RecordService) AdminCreate(ctx context.Context, req dto.AdminCreateRecordRequest) (*dto.AdminCreateRecordResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Missing student_id")
	}
	if err := s.requireStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}

	pickedUpAt := timefmt.Now()
	if req.PickedUpAt != "" {
		normalized, err := timefmt.Normalize(req.PickedUpAt)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid picked_up_at")
		}
		pickedUpAt = normalized
	}

	record := &models.PickupRecord{
		StudentID:  req.StudentID,
		PickedUpBy: req.PickedUpBy,
		PickedUpAt: pickedUpAt,
	}
	if err := s.records.Insert(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to create pickup record")
	}
	s.invalidateStats(ctx)

	return &dto.AdminCreateRecordResponse{
		Success:    true,
		ID:         record.ID,
		PickedUpAt: timefmt.Display(pickedUpAt),
	}, nil
}

// Update performs a full-field replace of an existing record.
func (s *RecordService) Update(ctx context.Context, id int64, req dto.UpdateRecordRequest) (*dto.UpdateRecordResponse, error) {
	if req.StudentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Missing student_id")
	}
	if req.PickedUpAt == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Missing picked_up_at")
	}

	exists, err := s.records.ExistsByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to load pickup record")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Record not found")
	}
	if err := s.requireStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}

	pickedUpAt, err := timefmt.Normalize(req.PickedUpAt)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid picked_up_at")
	}

	record := &models.PickupRecord{
		ID:         id,
		StudentID:  req.StudentID,
		PickedUpBy: req.PickedUpBy,
		PickedUpAt: pickedUpAt,
	}
	if err := s.records.Update(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to update pickup record")
	}
	s.invalidateStats(ctx)

	return &dto.UpdateRecordResponse{Success: true, PickedUpAt: timefmt.Display(pickedUpAt)}, nil
}

// Delete removes all named records in one atomic statement. Ids with no
// matching row are ignored; the response carries the actual count.
func (s *RecordService) Delete(ctx context.Context, req dto.DeleteRecordsRequest) (*dto.DeleteRecordsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Missing or invalid ids")
	}

	deleted, err := s.records.DeleteByIDs(ctx, req.IDs)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to delete pickup records")
	}
	s.invalidateStats(ctx)

	return &dto.DeleteRecordsResponse{Success: true, DeletedCount: deleted}, nil
}

// List serves the front-desk read with display-formatted timestamps.
func (s *RecordService) List(ctx context.Context, studentID, date string) ([]models.PickupRecord, error) {
	records, err := s.records.List(ctx, studentID, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list pickup records")
	}
	out := make([]models.PickupRecord, len(records))
	for i, record := range records {
		record.PickedUpAt = timefmt.Display(record.PickedUpAt)
		out[i] = record
	}
	return out, nil
}

// AdminList serves the filtered admin table, newest pickup first.
func (s *RecordService) AdminList(ctx context.Context, filter models.PickupFilter) ([]models.AdminPickupRecord, error) {
	records, err := s.records.ListAdmin(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list pickup records")
	}
	out := make([]models.AdminPickupRecord, len(records))
	for i, record := range records {
		record.PickedUpAt = timefmt.Display(record.PickedUpAt)
		out[i] = record
	}
	return out, nil
}

// Stats returns pickups per calendar day, cached between mutations.
func (s *RecordService) Stats(ctx context.Context) ([]models.PickupStat, error) {
	if s.cache != nil {
		var cached []models.PickupStat
		if err := s.cache.Get(ctx, statsCacheKey, &cached); err == nil {
			s.metrics.CacheHit()
			return cached, nil
		}
		s.metrics.CacheMiss()
	}

	stats, err := s.records.CountByDate(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to load pickup stats")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, statsCacheKey, stats, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache pickup stats", zap.Error(err))
		}
	}
	return stats, nil
}

// Export renders the filtered admin table as a CSV or PDF download.
func (s *RecordService) Export(ctx context.Context, filter models.PickupFilter, format string) (*dto.ExportResult, error) {
	records, err := s.AdminList(ctx, filter)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{"ID", "Student ID", "Student Name", "Class", "Picked Up By", "Picked Up At"},
		Rows:    make([][]string, 0, len(records)),
	}
	for _, record := range records {
		dataset.Rows = append(dataset.Rows, []string{
			fmt.Sprintf("%d", record.ID),
			record.StudentID,
			record.StudentName,
			derefString(record.ClassName),
			derefString(record.PickedUpBy),
			record.PickedUpAt,
		})
	}

	switch format {
	case "", "csv":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &dto.ExportResult{Content: content, Filename: "pickup_records.csv", ContentType: "text/csv"}, nil
	case "pdf":
		content, err := s.pdf.Render(dataset, "Pickup Records")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &dto.ExportResult{Content: content, Filename: "pickup_records.pdf", ContentType: "application/pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "Unsupported export format")
	}
}

func (s *RecordService) requireStudent(ctx context.Context, studentID string) error {
	exists, err := s.students.ExistsByID(ctx, studentID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to check student")
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrNotFound, "Student not found")
	}
	return nil
}

func (s *RecordService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate pickup stats cache", zap.Error(err))
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
