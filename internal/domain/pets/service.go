package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
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
	Name           string
	Type           string
	Breed          string
	Age            int
	Gender         string
	Size           string
	Description    string
	ImageURL       string
	Status         string
	IsAdoptable    bool
	OwnerID        int64
	OwnerName      string
	OwnerAvatarURL string
	IsRecent       bool
	IsFeatured     bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	var problems []string
	if strings.TrimSpace(in.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !ValidType(Type(in.Type)) {
		problems = append(problems, "type must be one of dog, cat, bird, small")
	}
	if strings.TrimSpace(in.Breed) == "" {
		problems = append(problems, "breed is required")
	}
	if in.Age < 0 {
		problems = append(problems, "age must be zero or positive")
	}
	if in.Gender != "" && !ValidGender(Gender(in.Gender)) {
		problems = append(problems, "gender must be male or female")
	}
	if !ValidSize(Size(in.Size)) {
		problems = append(problems, "size must be one of small, medium, large")
	}
	if in.OwnerID <= 0 {
		problems = append(problems, "ownerId is required")
	}
	status := Status(strings.TrimSpace(in.Status))
	if status == "" {
		status = StatusAvailable
	}
	if !ValidStatus(status) {
		problems = append(problems, "status must be one of Available, Adopted, Pending, Not for adoption")
	}
	if len(problems) > 0 {
		return Pet{}, invalid(problems)
	}

	now := s.now()
	p := Pet{
		Name:           strings.TrimSpace(in.Name),
		Type:           Type(in.Type),
		Breed:          strings.TrimSpace(in.Breed),
		Age:            in.Age,
		Gender:         Gender(in.Gender),
		Size:           Size(in.Size),
		Description:    strings.TrimSpace(in.Description),
		ImageURL:       strings.TrimSpace(in.ImageURL),
		Status:         status,
		IsAdoptable:    in.IsAdoptable,
		OwnerID:        in.OwnerID,
		OwnerName:      strings.TrimSpace(in.OwnerName),
		OwnerAvatarURL: strings.TrimSpace(in.OwnerAvatarURL),
		Likes:          0, // likes no se setean en el alta
		IsRecent:       in.IsRecent,
		IsFeatured:     in.IsFeatured,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return s.repo.Create(ctx, p)
}

// UpdateInput es el contrato de campos parcheables: nil = no tocar.
// ID y timestamps quedan fuera a propósito.
type UpdateInput struct {
	Name           *string
	Type           *string
	Breed          *string
	Age            *int
	Gender         *string
	Size           *string
	Description    *string
	ImageURL       *string
	Status         *string
	IsAdoptable    *bool
	OwnerID        *int64
	OwnerName      *string
	OwnerAvatarURL *string
	Likes          *int
	IsRecent       *bool
	IsFeatured     *bool
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	var problems []string
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			problems = append(problems, "name cannot be empty")
		} else {
			current.Name = strings.TrimSpace(*in.Name)
		}
	}
	if in.Type != nil {
		if !ValidType(Type(*in.Type)) {
			problems = append(problems, "type must be one of dog, cat, bird, small")
		} else {
			current.Type = Type(*in.Type)
		}
	}
	if in.Breed != nil {
		current.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		if *in.Age < 0 {
			problems = append(problems, "age must be zero or positive")
		} else {
			current.Age = *in.Age
		}
	}
	if in.Gender != nil {
		if !ValidGender(Gender(*in.Gender)) {
			problems = append(problems, "gender must be male or female")
		} else {
			current.Gender = Gender(*in.Gender)
		}
	}
	if in.Size != nil {
		if !ValidSize(Size(*in.Size)) {
			problems = append(problems, "size must be one of small, medium, large")
		} else {
			current.Size = Size(*in.Size)
		}
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.ImageURL != nil {
		current.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.Status != nil {
		if !ValidStatus(Status(*in.Status)) {
			problems = append(problems, "status must be one of Available, Adopted, Pending, Not for adoption")
		} else {
			current.Status = Status(*in.Status)
		}
	}
	if in.IsAdoptable != nil {
		current.IsAdoptable = *in.IsAdoptable
	}
	if in.OwnerID != nil {
		if *in.OwnerID <= 0 {
			problems = append(problems, "ownerId must be positive")
		} else {
			current.OwnerID = *in.OwnerID
		}
	}
	if in.OwnerName != nil {
		current.OwnerName = strings.TrimSpace(*in.OwnerName)
	}
	if in.OwnerAvatarURL != nil {
		current.OwnerAvatarURL = strings.TrimSpace(*in.OwnerAvatarURL)
	}
	if in.Likes != nil {
		if *in.Likes < 0 {
			problems = append(problems, "likes must be zero or positive")
		} else {
			current.Likes = *in.Likes
		}
	}
	if in.IsRecent != nil {
		current.IsRecent = *in.IsRecent
	}
	if in.IsFeatured != nil {
		current.IsFeatured = *in.IsFeatured
	}
	if len(problems) > 0 {
		return Pet{}, invalid(problems)
	}

	current.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) ListAdoptable(ctx context.Context) ([]Pet, error) {
	return s.repo.ListAdoptable(ctx)
}

func (s *Service) ListShowcase(ctx context.Context) ([]Pet, error) {
	return s.repo.ListShowcase(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// invalid arma un solo error con todos los problemas agregados,
// estilo zod-validation-error.
func invalid(problems []string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
}
