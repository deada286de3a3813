package browse

import (
	"strings"
	"sync"
	"time"
)

// Session es la única fuente de verdad de la sesión autenticada del
// cliente (token + rol + expiración). Reemplaza los dos espejos
// divergentes que mantenía la UI original.
type Session struct {
	mu sync.RWMutex

	token     string
	role      string // "admin" | "owner"
	expiresAt time.Time
}

func NewSession() *Session {
	return &Session{}
}

// Start arranca una sesión nueva pisando la anterior.
func (s *Session) Start(token, role string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
	s.role = role
	s.expiresAt = expiresAt
}

// Clear cierra la sesión (logout).
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.role = ""
	s.expiresAt = time.Time{}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// Active indica si hay sesión vigente en el instante dado.
func (s *Session) Active(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && !s.expired(now)
}

// Expired es true si hubo sesión pero ya venció.
func (s *Session) Expired(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.expired(now)
}

// Authorization devuelve el valor del header ("Bearer <token>") o ""
// si no hay sesión.
func (s *Session) Authorization() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return ""
	}
	return "Bearer " + s.token
}

func (s *Session) expired(now time.Time) bool {
	return !s.expiresAt.IsZero() && now.After(s.expiresAt)
}
