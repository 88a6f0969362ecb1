package repositories

import (
	"context"
	"sync"

	"travelapi/internal/domain"
)

type memoryCollection struct {
	order []string
	byID  map[string]domain.Record
}

// MemoryStore keeps records for the lifetime of the process.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[domain.ResourceKind]*memoryCollection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: map[domain.ResourceKind]*memoryCollection{}}
}

func (s *MemoryStore) collection(kind domain.ResourceKind) *memoryCollection {
	c, ok := s.collections[kind]
	if !ok {
		c = &memoryCollection{byID: map[string]domain.Record{}}
		s.collections[kind] = c
	}
	return c
}

func (s *MemoryStore) Init(ctx context.Context, seed map[domain.ResourceKind][]domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for kind, records := range seed {
		c := s.collection(kind)
		if len(c.order) > 0 {
			continue
		}
		for _, rec := range records {
			if err := ctx.Err(); err != nil {
				return err
			}
			if rec.ID() == "" {
				return domain.ValidationError{Field: domain.FieldID, Msg: "seed record without id in " + string(kind)}
			}
			if _, dup := c.byID[rec.ID()]; dup {
				return domain.ConflictError{Kind: kind, ID: rec.ID()}
			}
			c.order = append(c.order, rec.ID())
			c.byID[rec.ID()] = rec.Clone()
		}
	}
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) List(ctx context.Context, kind domain.ResourceKind) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[kind]
	if !ok {
		return []domain.Record{}, nil
	}
	out := make([]domain.Record, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id].Clone())
	}
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, kind domain.ResourceKind, id string) (domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.collections[kind]; ok {
		if rec, ok := c.byID[id]; ok {
			return rec.Clone(), nil
		}
	}
	return nil, domain.NotFoundError{Kind: kind, ID: id}
}

func (s *MemoryStore) Create(ctx context.Context, kind domain.ResourceKind, rec domain.Record) (domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if rec.ID() == "" {
		return nil, domain.ValidationError{Field: domain.FieldID, Msg: "must be a non-empty string"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(kind)
	if _, dup := c.byID[rec.ID()]; dup {
		return nil, domain.ConflictError{Kind: kind, ID: rec.ID()}
	}
	c.order = append(c.order, rec.ID())
	c.byID[rec.ID()] = rec.Clone()
	return rec.Clone(), nil
}

func (s *MemoryStore) Close() error { return nil }
