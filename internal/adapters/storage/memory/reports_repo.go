package memory

import (
	"context"
	"sort"
	"sync"

	"pet-adoption-api/internal/domain/reports"
)

type reportRepo struct {
	mu     sync.RWMutex
	byID   map[int64]reports.Report
	nextID int64
}

func NewReportRepo() reports.Repository {
	return &reportRepo{
		byID:   make(map[int64]reports.Report),
		nextID: 1,
	}
}

func (r *reportRepo) Create(ctx context.Context, rep reports.Report) (reports.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rep.ID = r.nextID
	r.nextID++
	r.byID[rep.ID] = rep
	return rep, nil
}

func (r *reportRepo) Update(ctx context.Context, rep reports.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rep.ID]; !exists {
		return reports.ErrNotFound
	}
	r.byID[rep.ID] = rep
	return nil
}

func (r *reportRepo) GetByID(ctx context.Context, id int64) (reports.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep, ok := r.byID[id]
	if !ok {
		return reports.Report{}, reports.ErrNotFound
	}
	return rep, nil
}

func (r *reportRepo) ListAll(ctx context.Context) ([]reports.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reports.Report, 0, len(r.byID))
	for _, rep := range r.byID {
		out = append(out, rep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
