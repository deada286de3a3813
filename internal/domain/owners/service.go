package owners

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
	ErrNotFound       = errors.New("owner not found")
	ErrBadCredentials = errors.New("invalid email or password")
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

type RegisterInput struct {
	Name      string
	Email     string
	Type      string
	Bio       string
	AvatarURL string
	Password  string
}

// Register crea un owner auto-registrado: siempre nace sin aprobar.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Owner, error) {
	if err := s.validate(in, true); err != nil {
		return Owner{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Owner{}, err
	}

	now := s.now()
	o := Owner{
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		Type:         Type(in.Type),
		Bio:          strings.TrimSpace(in.Bio),
		AvatarURL:    strings.TrimSpace(in.AvatarURL),
		PasswordHash: string(hash),
		IsApproved:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.repo.Create(ctx, o)
}

// Create es el alta desde la consola de admin. El password es opcional:
// un owner de solo-directorio (sin password) no puede iniciar sesión.
func (s *Service) Create(ctx context.Context, in RegisterInput) (Owner, error) {
	if err := s.validate(in, false); err != nil {
		return Owner{}, err
	}

	var hash string
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return Owner{}, err
		}
		hash = string(h)
	}

	now := s.now()
	o := Owner{
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		Type:         Type(in.Type),
		Bio:          strings.TrimSpace(in.Bio),
		AvatarURL:    strings.TrimSpace(in.AvatarURL),
		PasswordHash: hash,
		IsApproved:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.repo.Create(ctx, o)
}

// UpdateInput: nil = no tocar. Password se re-hashea si viene.
// IsApproved no está acá: la aprobación tiene su propia operación.
type UpdateInput struct {
	Name      *string
	Email     *string
	Type      *string
	Bio       *string
	AvatarURL *string
	Password  *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Owner, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	var problems []string
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			problems = append(problems, "name cannot be empty")
		} else {
			current.Name = strings.TrimSpace(*in.Name)
		}
	}
	if in.Email != nil {
		if !validEmail(*in.Email) {
			problems = append(problems, "email is not valid")
		} else {
			current.Email = normalizeEmail(*in.Email)
		}
	}
	if in.Type != nil {
		if !ValidType(Type(*in.Type)) {
			problems = append(problems, "type must be one of pet_owner, pet_rescuer, pet_foster")
		} else {
			current.Type = Type(*in.Type)
		}
	}
	if in.Bio != nil {
		current.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.AvatarURL != nil {
		current.AvatarURL = strings.TrimSpace(*in.AvatarURL)
	}
	if in.Password != nil {
		if len(*in.Password) < 6 {
			problems = append(problems, "password must be at least 6 characters")
		} else {
			h, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
			if err != nil {
				return Owner{}, err
			}
			current.PasswordHash = string(h)
		}
	}
	if len(problems) > 0 {
		return Owner{}, invalid(problems)
	}

	current.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, current); err != nil {
		return Owner{}, err
	}
	return current, nil
}

// Approve marca el owner como aprobado. Idempotente.
func (s *Service) Approve(ctx context.Context, id int64) (Owner, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}
	current.IsApproved = true
	current.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, current); err != nil {
		return Owner{}, err
	}
	return current, nil
}

// Login valida credenciales y emite un token de sesión.
// Cualquier fallo (email desconocido o password incorrecto) devuelve
// el mismo ErrBadCredentials para no filtrar qué parte falló.
func (s *Service) Login(ctx context.Context, email, password string) (Owner, string, error) {
	o, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Owner{}, "", ErrBadCredentials
		}
		return Owner{}, "", err
	}
	if o.PasswordHash == "" {
		return Owner{}, "", ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)) != nil {
		return Owner{}, "", ErrBadCredentials
	}

	token, err := s.issuer.Issue(auth.Claims{
		Subject: strconv.FormatInt(o.ID, 10),
		Email:   o.Email,
		Role:    auth.RoleOwner,
	})
	if err != nil {
		return Owner{}, "", err
	}
	return o, token, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Owner, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListPending(ctx context.Context) ([]Owner, error) {
	return s.repo.ListPending(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete borra el owner. Las pets que lo referencian quedan con el
// ownerId colgante (mismo comportamiento del marketplace original;
// sin cascada).
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) validate(in RegisterInput, passwordRequired bool) error {
	var problems []string
	if strings.TrimSpace(in.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !validEmail(in.Email) {
		problems = append(problems, "email is not valid")
	}
	if !ValidType(Type(in.Type)) {
		problems = append(problems, "type must be one of pet_owner, pet_rescuer, pet_foster")
	}
	if passwordRequired && len(in.Password) < 6 {
		problems = append(problems, "password must be at least 6 characters")
	}
	if !passwordRequired && in.Password != "" && len(in.Password) < 6 {
		problems = append(problems, "password must be at least 6 characters")
	}
	if len(problems) > 0 {
		return invalid(problems)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func invalid(problems []string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
}
