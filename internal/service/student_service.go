package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/pickup-api/internal/models"
	"github.com/noah-isme/pickup-api/internal/timefmt"
	appErrors "github.com/noah-isme/pickup-api/pkg/errors"
)

type studentRepository interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	ListClasses(ctx context.Context) ([]models.ClassOption, error)
	ListRoster(ctx context.Context) ([]models.RosterEntry, error)
}

// StudentService serves roster lookups for the front desk and the admin
// filter dropdowns.
type StudentService struct {
	repo   studentRepository
	logger *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, logger: logger}
}

// Get returns one student with a display-formatted created_at.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to load student")
	}
	out := *student
	out.CreatedAt = timefmt.Display(out.CreatedAt)
	return &out, nil
}

// Classes returns the distinct class list for the admin filters.
func (s *StudentService) Classes(ctx context.Context) ([]models.ClassOption, error) {
	classes, err := s.repo.ListClasses(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list classes")
	}
	return classes, nil
}

// Roster returns the full student list sorted by class then name.
func (s *StudentService) Roster(ctx context.Context) ([]models.RosterEntry, error) {
	roster, err := s.repo.ListRoster(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list students")
	}
	return roster, nil
}
