package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pet-adoption-api/internal/domain/admins"
)

type adminRepo struct {
	mu     sync.RWMutex
	byID   map[int64]admins.Admin
	nextID int64
}

func NewAdminRepo() admins.Repository {
	return &adminRepo{
		byID:   make(map[int64]admins.Admin),
		nextID: 1,
	}
}

func (r *adminRepo) Create(ctx context.Context, a admins.Admin) (admins.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	r.byID[a.ID] = a
	return a, nil
}

func (r *adminRepo) GetByID(ctx context.Context, id int64) (admins.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return admins.Admin{}, admins.ErrNotFound
	}
	return a, nil
}

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (admins.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if strings.EqualFold(a.Username, username) {
			return a, nil
		}
	}
	return admins.Admin{}, admins.ErrNotFound
}

func (r *adminRepo) ListAll(ctx context.Context) ([]admins.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]admins.Admin, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
