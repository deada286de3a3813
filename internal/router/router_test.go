package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"pet-adoption-api/internal/adapters/auth/jwt"
	"pet-adoption-api/internal/ports/auth"
	"pet-adoption-api/internal/router"
)

func newTestServer(t *testing.T) (*httptest.Server, *jwt.Tokens) {
	t.Helper()

	tokens := jwt.New("test-secret", time.Hour)
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Issuer:   tokens,
		Verifier: tokens,
		Seed:     true,
	}))
	t.Cleanup(ts.Close)
	return ts, tokens
}

func TestHTTP_EndToEnd_AdoptionCatalog(t *testing.T) {
	ts, _ := newTestServer(t)

	// 1) Catálogo público: adoptables y showcase son particiones disjuntas
	adoptable := listPets(t, ts.URL, "/api/pets")
	showcase := listPets(t, ts.URL, "/api/pets/showcase")

	if len(adoptable) == 0 || len(showcase) == 0 {
		t.Fatalf("seed should populate both listings: adoptable=%d showcase=%d", len(adoptable), len(showcase))
	}
	seen := map[int64]bool{}
	for _, p := range adoptable {
		if !p.IsAdoptable {
			t.Fatalf("pet %d in adoptable listing with isAdoptable=false", p.ID)
		}
		seen[p.ID] = true
	}
	for _, p := range showcase {
		if p.IsAdoptable {
			t.Fatalf("pet %d in showcase listing with isAdoptable=true", p.ID)
		}
		if seen[p.ID] {
			t.Fatalf("pet %d appears in both listings", p.ID)
		}
	}

	// 2) Admin login con credenciales seed
	token := adminLogin(t, ts.URL, "admin", "password123")

	// 3) Admin crea mascota
	st, body := doReq(t, ts.URL, "POST", "/api/admin/pets", token, map[string]any{
		"name":        "Rocky",
		"type":        "dog",
		"breed":       "Boxer",
		"age":         4,
		"gender":      "male",
		"size":        "large",
		"description": "Energetic boxer looking for an active family",
		"isAdoptable": true,
		"ownerId":     1,
		"ownerName":   "Sarah Johnson",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}
	var created petResp
	mustUnmarshal(t, body, &created)
	if created.ID == 0 {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	if created.Status != "Available" {
		t.Fatalf("new pet should default to Available, got %q", created.Status)
	}
	if created.Likes != 0 {
		t.Fatalf("new pet should start with 0 likes, got %d", created.Likes)
	}

	// 4) La mascota nueva se ve públicamente
	st, body = doReq(t, ts.URL, "GET", "/api/pets/"+itoa(created.ID), "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
	}

	// 5) Update parcial: un campo cambia, el resto se preserva
	st, body = doReq(t, ts.URL, "PUT", "/api/admin/pets/"+itoa(created.ID), token, map[string]any{
		"status": "Pending",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update pet, got %d body=%s", st, string(body))
	}
	var updated petResp
	mustUnmarshal(t, body, &updated)
	if updated.Status != "Pending" {
		t.Fatalf("expected status Pending after patch, got %q", updated.Status)
	}
	if updated.Name != "Rocky" || updated.Breed != "Boxer" || updated.Age != 4 {
		t.Fatalf("patch should preserve untouched fields: %+v", updated)
	}

	// 6) Delete y luego 404
	st, body = doReq(t, ts.URL, "DELETE", "/api/admin/pets/"+itoa(created.ID), token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 delete pet, got %d body=%s", st, string(body))
	}
	st, _ = doReq(t, ts.URL, "GET", "/api/pets/"+itoa(created.ID), "", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
}

func TestHTTP_OwnerApprovalFlow(t *testing.T) {
	ts, _ := newTestServer(t)

	// 1) Registro público: el owner nace sin aprobar
	st, body := doReq(t, ts.URL, "POST", "/api/register/owners", "", map[string]any{
		"name":     "Carlos Reyes",
		"email":    "carlos@example.com",
		"type":     "pet_rescuer",
		"password": "supersecret",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register owner, got %d body=%s", st, string(body))
	}
	var registered ownerResp
	mustUnmarshal(t, body, &registered)
	if registered.IsApproved {
		t.Fatal("new owner must start unapproved")
	}

	// 2) El owner recién registrado puede loguear aunque esté pendiente
	st, body = doReq(t, ts.URL, "POST", "/api/owner/login", "", map[string]any{
		"email":    "carlos@example.com",
		"password": "supersecret",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 owner login, got %d body=%s", st, string(body))
	}

	// 3) Password incorrecto => 401 uniforme
	st, _ = doReq(t, ts.URL, "POST", "/api/owner/login", "", map[string]any{
		"email":    "carlos@example.com",
		"password": "wrong",
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 bad credentials, got %d", st)
	}

	token := adminLogin(t, ts.URL, "admin", "password123")

	// 4) Aparece en pendientes
	if !ownerInList(t, ts.URL, "/api/admin/owners/pending", token, registered.ID) {
		t.Fatalf("owner %d should be in pending list", registered.ID)
	}

	// 5) Aprobación
	st, body = doReq(t, ts.URL, "PUT", "/api/admin/owners/"+itoa(registered.ID)+"/approve", token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 approve owner, got %d body=%s", st, string(body))
	}
	var approved ownerResp
	mustUnmarshal(t, body, &approved)
	if !approved.IsApproved {
		t.Fatal("owner should be approved after approve call")
	}

	// 6) Aprobar dos veces es idempotente
	st, _ = doReq(t, ts.URL, "PUT", "/api/admin/owners/"+itoa(registered.ID)+"/approve", token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 re-approve owner, got %d", st)
	}

	// 7) Ya no está en pendientes
	if ownerInList(t, ts.URL, "/api/admin/owners/pending", token, registered.ID) {
		t.Fatalf("approved owner %d should leave the pending list", registered.ID)
	}
}

func TestHTTP_ReportLifecycle(t *testing.T) {
	ts, _ := newTestServer(t)

	// 1) Denuncia anónima: el contacto se descarta aunque venga
	st, body := doReq(t, ts.URL, "POST", "/api/reports", "", map[string]any{
		"type":        "neglect",
		"location":    "Central Park, near the fountain",
		"description": "Dog left tied up without water for several hours",
		"contactInfo": "shouldbedropped@example.com",
		"anonymous":   true,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create report, got %d body=%s", st, string(body))
	}
	var created reportResp
	mustUnmarshal(t, body, &created)
	if created.Status != "submitted" {
		t.Fatalf("new report should start submitted, got %q", created.Status)
	}
	if created.ContactInfo != nil {
		t.Fatalf("anonymous report must not keep contactInfo, got %q", *created.ContactInfo)
	}

	// 2) Denuncia inválida: mensajes agregados del formulario
	st, body = doReq(t, ts.URL, "POST", "/api/reports", "", map[string]any{
		"type":        "",
		"location":    "ab",
		"description": "too short",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid report, got %d body=%s", st, string(body))
	}
	var errResp struct {
		Message string `json:"message"`
	}
	mustUnmarshal(t, body, &errResp)
	for _, want := range []string{
		"Please select an incident type",
		"Please provide a valid location",
		"Please provide more details about the incident",
	} {
		if !contains(errResp.Message, want) {
			t.Fatalf("validation message %q missing from %q", want, errResp.Message)
		}
	}

	token := adminLogin(t, ts.URL, "admin", "password123")

	// 3) Moderación: status y notas mutan, el contenido no
	st, body = doReq(t, ts.URL, "PUT", "/api/admin/reports/"+itoa(created.ID), token, map[string]any{
		"status":     "investigating",
		"adminNotes": "Officer dispatched",
		"assignedTo": "inspector-7",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update report, got %d body=%s", st, string(body))
	}
	var reviewed reportResp
	mustUnmarshal(t, body, &reviewed)
	if reviewed.Status != "investigating" {
		t.Fatalf("expected status investigating, got %q", reviewed.Status)
	}
	if reviewed.Type != "neglect" || reviewed.Description != created.Description {
		t.Fatalf("moderation must not touch report content: %+v", reviewed)
	}
}

func TestHTTP_AdminGate(t *testing.T) {
	ts, tokens := newTestServer(t)

	// Sin token => 401
	st, body := doReq(t, ts.URL, "GET", "/api/admin/pets", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d body=%s", st, string(body))
	}

	// Token basura => 401
	st, _ = doReq(t, ts.URL, "GET", "/api/admin/pets", "not-a-jwt", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", st)
	}

	// Token firmado pero de un admin que no existe => 401
	ghost, err := tokens.Issue(auth.Claims{
		Subject:  "999",
		Username: "ghost",
		Role:     auth.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("issue ghost token: %v", err)
	}
	st, _ = doReq(t, ts.URL, "GET", "/api/admin/pets", ghost, nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown admin, got %d", st)
	}

	// Token de owner (rol no admin) => 401
	ownerTok, err := tokens.Issue(auth.Claims{
		Subject: "1",
		Email:   "sarah@example.com",
		Role:    auth.RoleOwner,
	})
	if err != nil {
		t.Fatalf("issue owner token: %v", err)
	}
	st, _ = doReq(t, ts.URL, "GET", "/api/admin/pets", ownerTok, nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 for owner token on admin route, got %d", st)
	}
}

func TestHTTP_Dashboard(t *testing.T) {
	ts, _ := newTestServer(t)
	token := adminLogin(t, ts.URL, "admin", "password123")

	st, body := doReq(t, ts.URL, "GET", "/api/admin/dashboard", token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
	}

	var stats struct {
		TotalPets     int `json:"totalPets"`
		AdoptablePets int `json:"adoptablePets"`
		TotalOwners   int `json:"totalOwners"`
		PendingOwners int `json:"pendingOwners"`
		TotalReports  int `json:"totalReports"`
	}
	mustUnmarshal(t, body, &stats)

	adoptable := listPets(t, ts.URL, "/api/pets")
	showcase := listPets(t, ts.URL, "/api/pets/showcase")
	if stats.TotalPets != len(adoptable)+len(showcase) {
		t.Fatalf("dashboard totalPets=%d, listings sum=%d", stats.TotalPets, len(adoptable)+len(showcase))
	}
	if stats.AdoptablePets != len(adoptable) {
		t.Fatalf("dashboard adoptablePets=%d, listing has %d", stats.AdoptablePets, len(adoptable))
	}
	if stats.PendingOwners == 0 {
		t.Fatal("seed includes a pending owner; dashboard should count it")
	}
}

// --- helpers ---

type petResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Breed       string `json:"breed"`
	Age         int    `json:"age"`
	Status      string `json:"status"`
	IsAdoptable bool   `json:"isAdoptable"`
	Likes       int    `json:"likes"`
}

type ownerResp struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsApproved bool   `json:"isApproved"`
}

type reportResp struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	ContactInfo *string `json:"contactInfo"`
	Status      string  `json:"status"`
}

func adminLogin(t *testing.T, baseURL, username, password string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/admin/login", "", map[string]any{
		"username": username,
		"password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 admin login, got %d body=%s", st, string(body))
	}
	var resp struct {
		Token string `json:"token"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.Token == "" {
		t.Fatalf("admin login: missing token body=%s", string(body))
	}
	return resp.Token
}

func listPets(t *testing.T, baseURL, path string) []petResp {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", path, "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 %s, got %d body=%s", path, st, string(body))
	}
	var items []petResp
	mustUnmarshal(t, body, &items)
	return items
}

func ownerInList(t *testing.T, baseURL, path, token string, id int64) bool {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", path, token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 %s, got %d body=%s", path, st, string(body))
	}
	var items []ownerResp
	mustUnmarshal(t, body, &items)
	for _, o := range items {
		if o.ID == id {
			return true
		}
	}
	return false
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func mustUnmarshal(t *testing.T, data []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("unmarshal %s: %v", string(data), err)
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
