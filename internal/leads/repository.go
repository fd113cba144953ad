package leads

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for lead storage. The store assigns
// ID and CreatedAt; records are never updated or deleted through it.
type Repository interface {
	Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error)
	ListAll(ctx context.Context) ([]*Lead, error)
	ListSince(ctx context.Context, since time.Time) ([]*Lead, error)
	ListMostRecent(ctx context.Context, n int) ([]*Lead, error)
}

// InMemoryRepository keeps leads in memory. Used in tests and when the
// service runs without a database locally.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads []*Lead
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Create appends a new lead, assigning id and creation time.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	lead := &Lead{
		ID:           uuid.NewString(),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Location:     req.Location,
		ProjectType:  req.ProjectType,
		Message:      req.Message,
		Source:       req.Source,
		CustomerType: req.CustomerType,
		CreatedAt:    time.Now().UTC(),
	}

	r.mu.Lock()
	r.leads = append(r.leads, lead)
	r.mu.Unlock()

	return lead, nil
}

// ListAll returns every lead, newest first.
func (r *InMemoryRepository) ListAll(ctx context.Context) ([]*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(*Lead) bool { return true }), nil
}

// ListSince returns leads with created_at >= since, newest first.
func (r *InMemoryRepository) ListSince(ctx context.Context, since time.Time) ([]*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(l *Lead) bool { return !l.CreatedAt.Before(since) }), nil
}

// ListMostRecent returns at most n leads, newest first.
func (r *InMemoryRepository) ListMostRecent(ctx context.Context, n int) ([]*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := r.snapshot(func(*Lead) bool { return true })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// snapshot copies matching leads sorted newest first. Callers hold the lock.
func (r *InMemoryRepository) snapshot(keep func(*Lead) bool) []*Lead {
	out := make([]*Lead, 0, len(r.leads))
	for _, l := range r.leads {
		if keep(l) {
			copied := *l
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
