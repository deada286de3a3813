package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pet-adoption-api/internal/domain/owners"
)

type ownerRepo struct {
	mu     sync.RWMutex
	byID   map[int64]owners.Owner
	nextID int64
}

func NewOwnerRepo() owners.Repository {
	return &ownerRepo{
		byID:   make(map[int64]owners.Owner),
		nextID: 1,
	}
}

func (r *ownerRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	r.byID[o.ID] = o
	return o, nil
}

func (r *ownerRepo) Update(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID]; !exists {
		return owners.ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *ownerRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return owners.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *ownerRepo) GetByEmail(ctx context.Context, email string) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.byID {
		if strings.EqualFold(o.Email, email) {
			return o, nil
		}
	}
	return owners.Owner{}, owners.ErrNotFound
}

func (r *ownerRepo) ListAll(ctx context.Context) ([]owners.Owner, error) {
	return r.list(func(owners.Owner) bool { return true }), nil
}

func (r *ownerRepo) ListPending(ctx context.Context) ([]owners.Owner, error) {
	return r.list(func(o owners.Owner) bool { return !o.IsApproved }), nil
}

func (r *ownerRepo) list(keep func(owners.Owner) bool) []owners.Owner {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0)
	for _, o := range r.byID {
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
