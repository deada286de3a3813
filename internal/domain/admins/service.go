package admins

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pet-adoption-api/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("admin not found")
	ErrBadCredentials = errors.New("invalid username or password")
)

type Service struct {
	repo   Repository
	issuer auth.TokenIssuer
	now    func() time.Time
}

func NewService(repo Repository, issuer auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
		now:    time.Now,
	}
}

type CreateInput struct {
	Username string
	Password string
	Name     string
	Email    string
	Role     string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Admin, error) {
	var problems []string
	if strings.TrimSpace(in.Username) == "" {
		problems = append(problems, "username is required")
	}
	if len(in.Password) < 6 {
		problems = append(problems, "password must be at least 6 characters")
	}
	if strings.TrimSpace(in.Name) == "" {
		problems = append(problems, "name is required")
	}
	role := Role(strings.TrimSpace(in.Role))
	if role == "" {
		role = RoleAdmin
	}
	if !ValidRole(role) {
		problems = append(problems, "role must be admin or super_admin")
	}
	if len(problems) > 0 {
		return Admin{}, invalid(problems)
	}

	// Username único: no hay constraint en memory, se chequea acá.
	username := strings.TrimSpace(in.Username)
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return Admin{}, invalid([]string{"username already taken"})
	} else if !errors.Is(err, ErrNotFound) {
		return Admin{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Admin{}, err
	}

	now := s.now()
	a := Admin{
		Username:     username,
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.repo.Create(ctx, a)
}

// Login valida credenciales y emite el token de consola.
// Username desconocido y password incorrecto devuelven el mismo error.
func (s *Service) Login(ctx context.Context, username, password string) (Admin, string, error) {
	a, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Admin{}, "", ErrBadCredentials
		}
		return Admin{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return Admin{}, "", ErrBadCredentials
	}

	token, err := s.issuer.Issue(auth.Claims{
		Subject:  strconv.FormatInt(a.ID, 10),
		Username: a.Username,
		Role:     string(a.Role),
	})
	if err != nil {
		return Admin{}, "", err
	}
	return a, token, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Admin, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Admin, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (Admin, error) {
	return s.repo.GetByUsername(ctx, username)
}

func invalid(problems []string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
}
