package browse

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pet-adoption-api/internal/domain/owners"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/platform/httpclient"
)

// Client es el cliente tipado de la API. Las llamadas admin viajan con
// el token de la sesión; las públicas no requieren sesión.
type Client struct {
	http    *httpclient.Client
	session *Session
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc, session: NewSession()}, nil
}

// NewClientWith permite inyectar el httpclient (p.ej. para tests).
func NewClientWith(hc *httpclient.Client) *Client {
	return &Client{http: hc, session: NewSession()}
}

func (c *Client) Session() *Session {
	return c.session
}

// petWire espeja el JSON de la API (camelCase).
type petWire struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Breed          string    `json:"breed"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	Size           string    `json:"size"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"imageUrl"`
	Status         string    `json:"status"`
	IsAdoptable    bool      `json:"isAdoptable"`
	OwnerID        int64     `json:"ownerId"`
	OwnerName      string    `json:"ownerName"`
	OwnerAvatarURL string    `json:"ownerAvatarUrl"`
	Likes          int       `json:"likes"`
	IsRecent       bool      `json:"isRecent"`
	IsFeatured     bool      `json:"isFeatured"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ownerWire struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Type       string    `json:"type"`
	Bio        string    `json:"bio"`
	AvatarURL  string    `json:"avatarUrl"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ReportInput es el formulario público de denuncia.
type ReportInput struct {
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ContactInfo string `json:"contactInfo,omitempty"`
	Anonymous   bool   `json:"anonymous"`
}

// --- superficie pública ---

func (c *Client) FetchPets(ctx context.Context) ([]pets.Pet, error) {
	var wire []petWire
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/pets", nil, nil, &wire); err != nil {
		return nil, err
	}
	return toPets(wire), nil
}

func (c *Client) FetchShowcasePets(ctx context.Context) ([]pets.Pet, error) {
	var wire []petWire
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/pets/showcase", nil, nil, &wire); err != nil {
		return nil, err
	}
	return toPets(wire), nil
}

func (c *Client) FetchPet(ctx context.Context, id int64) (pets.Pet, error) {
	var wire petWire
	path := fmt.Sprintf("/api/pets/%d", id)
	if err := c.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &wire); err != nil {
		return pets.Pet{}, err
	}
	return toPet(wire), nil
}

func (c *Client) FetchOwners(ctx context.Context) ([]owners.Owner, error) {
	var wire []ownerWire
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/owners", nil, nil, &wire); err != nil {
		return nil, err
	}
	return toOwners(wire), nil
}

func (c *Client) FetchOwner(ctx context.Context, id int64) (owners.Owner, error) {
	var wire ownerWire
	path := fmt.Sprintf("/api/owners/%d", id)
	if err := c.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &wire); err != nil {
		return owners.Owner{}, err
	}
	return toOwner(wire), nil
}

func (c *Client) SubmitReport(ctx context.Context, in ReportInput) error {
	return c.http.DoJSON(ctx, http.MethodPost, "/api/reports", nil, in, nil)
}

// RegisterOwnerInput es el formulario público de registro.
type RegisterOwnerInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Type      string `json:"type"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Password  string `json:"password"`
}

func (c *Client) RegisterOwner(ctx context.Context, in RegisterOwnerInput) (owners.Owner, error) {
	var wire ownerWire
	if err := c.http.DoJSON(ctx, http.MethodPost, "/api/register/owners", nil, in, &wire); err != nil {
		return owners.Owner{}, err
	}
	return toOwner(wire), nil
}

type credentials struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

type loginWire struct {
	Token string `json:"token"`
}

// LoginOwner autentica y arranca la sesión con rol "owner".
func (c *Client) LoginOwner(ctx context.Context, email, password string) error {
	var out loginWire
	in := credentials{Email: email, Password: password}
	if err := c.http.DoJSON(ctx, http.MethodPost, "/api/owner/login", nil, in, &out); err != nil {
		return err
	}
	c.session.Start(out.Token, "owner", time.Time{})
	return nil
}

// LoginAdmin autentica contra la consola y arranca la sesión admin.
func (c *Client) LoginAdmin(ctx context.Context, username, password string) error {
	var out loginWire
	in := credentials{Username: username, Password: password}
	if err := c.http.DoJSON(ctx, http.MethodPost, "/api/admin/login", nil, in, &out); err != nil {
		return err
	}
	c.session.Start(out.Token, "admin", time.Time{})
	return nil
}

func (c *Client) Logout() {
	c.session.Clear()
}

// --- consola admin (requiere sesión) ---

// ErrNoSession se devuelve al llamar rutas admin sin sesión activa.
var ErrNoSession = errors.New("browse: no active session")

func (c *Client) authHeaders() (map[string]string, error) {
	authz := c.session.Authorization()
	if authz == "" {
		return nil, ErrNoSession
	}
	return map[string]string{"Authorization": authz}, nil
}

// DashboardStats espeja la respuesta del dashboard de la consola.
type DashboardStats struct {
	TotalPets     int `json:"totalPets"`
	AdoptablePets int `json:"adoptablePets"`
	TotalOwners   int `json:"totalOwners"`
	PendingOwners int `json:"pendingOwners"`
	TotalReports  int `json:"totalReports"`
	OpenReports   int `json:"openReports"`
	TotalProducts int `json:"totalProducts"`
}

func (c *Client) Dashboard(ctx context.Context) (DashboardStats, error) {
	headers, err := c.authHeaders()
	if err != nil {
		return DashboardStats{}, err
	}
	var out DashboardStats
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/admin/dashboard", headers, nil, &out); err != nil {
		return DashboardStats{}, err
	}
	return out, nil
}

func (c *Client) AdminListPets(ctx context.Context) ([]pets.Pet, error) {
	headers, err := c.authHeaders()
	if err != nil {
		return nil, err
	}
	var wire []petWire
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/admin/pets", headers, nil, &wire); err != nil {
		return nil, err
	}
	return toPets(wire), nil
}

func (c *Client) AdminDeletePet(ctx context.Context, id int64) error {
	headers, err := c.authHeaders()
	if err != nil {
		return err
	}
	path := fmt.Sprintf("/api/admin/pets/%d", id)
	return c.http.DoJSON(ctx, http.MethodDelete, path, headers, nil, nil)
}

func (c *Client) AdminPendingOwners(ctx context.Context) ([]owners.Owner, error) {
	headers, err := c.authHeaders()
	if err != nil {
		return nil, err
	}
	var wire []ownerWire
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/admin/owners/pending", headers, nil, &wire); err != nil {
		return nil, err
	}
	return toOwners(wire), nil
}

func (c *Client) AdminApproveOwner(ctx context.Context, id int64) (owners.Owner, error) {
	headers, err := c.authHeaders()
	if err != nil {
		return owners.Owner{}, err
	}
	var wire ownerWire
	path := fmt.Sprintf("/api/admin/owners/%d/approve", id)
	if err := c.http.DoJSON(ctx, http.MethodPut, path, headers, nil, &wire); err != nil {
		return owners.Owner{}, err
	}
	return toOwner(wire), nil
}

// --- sincronización con el Store ---

// RefreshCatalog recarga pets + showcase + owners dentro del store,
// marcando loading y preservando los listados previos ante error.
func (c *Client) RefreshCatalog(ctx context.Context, store *Store) error {
	store.SetLoading("catalog", true)
	defer store.SetLoading("catalog", false)

	adoptable, err := c.FetchPets(ctx)
	if err != nil {
		store.SetError(errMessage(err))
		return err
	}
	showcase, err := c.FetchShowcasePets(ctx)
	if err != nil {
		store.SetError(errMessage(err))
		return err
	}
	dir, err := c.FetchOwners(ctx)
	if err != nil {
		store.SetError(errMessage(err))
		return err
	}

	store.SetPets(adoptable)
	store.SetShowcasePets(showcase)
	store.SetOwners(dir)
	return nil
}

// errMessage prefiere el "message" de la API cuando el error es HTTP.
func errMessage(err error) string {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message()
	}
	return err.Error()
}

func toPet(w petWire) pets.Pet {
	return pets.Pet{
		ID:             w.ID,
		Name:           w.Name,
		Type:           pets.Type(w.Type),
		Breed:          w.Breed,
		Age:            w.Age,
		Gender:         pets.Gender(w.Gender),
		Size:           pets.Size(w.Size),
		Description:    w.Description,
		ImageURL:       w.ImageURL,
		Status:         pets.Status(w.Status),
		IsAdoptable:    w.IsAdoptable,
		OwnerID:        w.OwnerID,
		OwnerName:      w.OwnerName,
		OwnerAvatarURL: w.OwnerAvatarURL,
		Likes:          w.Likes,
		IsRecent:       w.IsRecent,
		IsFeatured:     w.IsFeatured,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func toPets(ws []petWire) []pets.Pet {
	out := make([]pets.Pet, 0, len(ws))
	for _, w := range ws {
		out = append(out, toPet(w))
	}
	return out
}

func toOwner(w ownerWire) owners.Owner {
	return owners.Owner{
		ID:         w.ID,
		Name:       w.Name,
		Email:      w.Email,
		Type:       owners.Type(w.Type),
		Bio:        w.Bio,
		AvatarURL:  w.AvatarURL,
		IsApproved: w.IsApproved,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

func toOwners(ws []ownerWire) []owners.Owner {
	out := make([]owners.Owner, 0, len(ws))
	for _, w := range ws {
		out = append(out, toOwner(w))
	}
	return out
}
