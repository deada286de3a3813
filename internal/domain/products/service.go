package products

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
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
	Name        string
	Description string
	Category    string
	PetType     string
	Price       string
	ImageURL    string
	Stock       int
	IsAvailable bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Product, error) {
	var problems []string
	if strings.TrimSpace(in.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		problems = append(problems, "category is required")
	}
	price, ok := normalizePrice(in.Price)
	if !ok {
		problems = append(problems, "price must be a decimal number like 19.99")
	}
	if in.Stock < 0 {
		problems = append(problems, "stock must be zero or positive")
	}
	if len(problems) > 0 {
		return Product{}, invalid(problems)
	}

	now := s.now()
	p := Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		PetType:     strings.TrimSpace(in.PetType),
		Price:       price,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Stock:       in.Stock,
		IsAvailable: in.IsAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.Create(ctx, p)
}

type UpdateInput struct {
	Name        *string
	Description *string
	Category    *string
	PetType     *string
	Price       *string
	ImageURL    *string
	Stock       *int
	IsAvailable *bool
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Product, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}

	var problems []string
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			problems = append(problems, "name cannot be empty")
		} else {
			current.Name = strings.TrimSpace(*in.Name)
		}
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			problems = append(problems, "category cannot be empty")
		} else {
			current.Category = strings.TrimSpace(*in.Category)
		}
	}
	if in.PetType != nil {
		current.PetType = strings.TrimSpace(*in.PetType)
	}
	if in.Price != nil {
		price, ok := normalizePrice(*in.Price)
		if !ok {
			problems = append(problems, "price must be a decimal number like 19.99")
		} else {
			current.Price = price
		}
	}
	if in.ImageURL != nil {
		current.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			problems = append(problems, "stock must be zero or positive")
		} else {
			current.Stock = *in.Stock
		}
	}
	if in.IsAvailable != nil {
		current.IsAvailable = *in.IsAvailable
	}
	if len(problems) > 0 {
		return Product{}, invalid(problems)
	}

	current.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, current); err != nil {
		return Product{}, err
	}
	return current, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Product, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// normalizePrice acepta "19.99", "19" etc. y normaliza a dos decimales.
func normalizePrice(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return "", false
	}
	return fmt.Sprintf("%.2f", f), true
}

func invalid(problems []string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
}
