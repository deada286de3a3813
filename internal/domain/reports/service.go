package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("report not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Type        string
	Location    string
	Description string
	ContactInfo string
	Anonymous   bool
}

// Create registra la denuncia pública. Siempre nace "submitted".
// Si es anónima, el contacto se descarta aunque venga en el payload.
func (s *Service) Create(ctx context.Context, in CreateInput) (Report, error) {
	// Reglas calcadas del form original (zod): type requerido,
	// location >= 3, description >= 10.
	var problems []string
	if strings.TrimSpace(in.Type) == "" {
		problems = append(problems, "Please select an incident type")
	}
	if len(strings.TrimSpace(in.Location)) < 3 {
		problems = append(problems, "Please provide a valid location")
	}
	if len(strings.TrimSpace(in.Description)) < 10 {
		problems = append(problems, "Please provide more details about the incident")
	}
	if len(problems) > 0 {
		return Report{}, invalid(problems)
	}

	var contact *string
	if !in.Anonymous {
		if c := strings.TrimSpace(in.ContactInfo); c != "" {
			contact = &c
		}
	}

	now := s.now()
	rep := Report{
		Type:        strings.TrimSpace(in.Type),
		Location:    strings.TrimSpace(in.Location),
		Description: strings.TrimSpace(in.Description),
		ContactInfo: contact,
		Anonymous:   in.Anonymous,
		Status:      StatusSubmitted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.Create(ctx, rep)
}

// UpdateInput: solo los campos de moderación son parcheables.
// El contenido de la denuncia (type/location/description) es inmutable.
type UpdateInput struct {
	Status     *string
	AdminNotes *string
	AssignedTo *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Report, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Report{}, err
	}

	if in.Status != nil {
		if !ValidStatus(Status(*in.Status)) {
			return Report{}, invalid([]string{"status must be one of submitted, investigating, resolved, dismissed"})
		}
		current.Status = Status(*in.Status)
	}
	if in.AdminNotes != nil {
		notes := strings.TrimSpace(*in.AdminNotes)
		if notes == "" {
			current.AdminNotes = nil
		} else {
			current.AdminNotes = &notes
		}
	}
	if in.AssignedTo != nil {
		assignee := strings.TrimSpace(*in.AssignedTo)
		if assignee == "" {
			current.AssignedTo = nil
		} else {
			current.AssignedTo = &assignee
		}
	}

	current.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, current); err != nil {
		return Report{}, err
	}
	return current, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Report, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Report, error) {
	return s.repo.GetByID(ctx, id)
}

func invalid(problems []string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
}
