package services

import (
	"context"
	"fmt"

	"travelapi/internal/domain"
	"travelapi/internal/repositories"
	"travelapi/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResourceService is the list/create capability behind one listing endpoint.
type ResourceService struct {
	Kind  domain.ResourceKind
	Store repositories.Store
	NewID func() string
}

func NewResourceService(kind domain.ResourceKind, store repositories.Store) ResourceService {
	return ResourceService{Kind: kind, Store: store}
}

func (s ResourceService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s ResourceService) List(ctx context.Context) ([]domain.Record, error) {
	return s.Store.List(ctx, s.Kind)
}

func (s ResourceService) Get(ctx context.Context, id string) (domain.Record, error) {
	return s.Store.Get(ctx, s.Kind, id)
}

// Create accepts any JSON object without validation. The server-assigned id
// replaces whatever "id" the caller sent.
func (s ResourceService) Create(ctx context.Context, payload domain.Record) (domain.Record, error) {
	if payload == nil {
		return nil, domain.InternalError{Op: fmt.Sprintf("create %s", s.Kind), Err: fmt.Errorf("payload must be a JSON object")}
	}
	rec := payload.Clone()
	rec[domain.FieldID] = s.newID()

	created, err := s.Store.Create(ctx, s.Kind, rec)
	if err != nil {
		return nil, err
	}
	utils.LogEvent(requestIDFrom(ctx), string(s.Kind), "create", "record created", zap.String("id", created.ID()))
	return created, nil
}

type requestIDKey struct{}

// WithRequestID lets handlers pass the request id down for event logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
