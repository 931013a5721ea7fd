// Package memory keeps batches in process memory. It is used when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/artem13815/resumeparser/pkg/resume"
)

type BatchRepository struct {
	mu      sync.RWMutex
	batches map[uuid.UUID]resume.Batch
}

func NewBatchRepository() *BatchRepository {
	return &BatchRepository{batches: map[uuid.UUID]resume.Batch{}}
}

func (r *BatchRepository) Save(_ context.Context, b resume.Batch) error {
	b.Records = append([]resume.Record(nil), b.Records...)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches[b.ID] = b
	return nil
}

func (r *BatchRepository) Get(_ context.Context, id uuid.UUID) (resume.Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.batches[id]
	if !ok {
		return resume.Batch{}, resume.ErrNotFound
	}
	b.Records = append([]resume.Record(nil), b.Records...)
	return b, nil
}

func (r *BatchRepository) List(_ context.Context, limit, offset int) ([]resume.Batch, error) {
	if limit <= 0 {
		limit = 50
	}
	r.mu.RLock()
	all := make([]resume.Batch, 0, len(r.batches))
	for _, b := range r.batches {
		b.Records = nil
		all = append(all, b)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return []resume.Batch{}, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
