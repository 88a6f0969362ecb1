package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"travelapi/internal/domain"
)

// Store is the storage handle shared by every resource endpoint. It is
// built once at start-up and injected; there is no package-level instance.
type Store interface {
	// Init prepares backing structures and loads seed records for kinds that are still empty.
	Init(ctx context.Context, seed map[domain.ResourceKind][]domain.Record) error
	Ping(ctx context.Context) error
	List(ctx context.Context, kind domain.ResourceKind) ([]domain.Record, error)
	Get(ctx context.Context, kind domain.ResourceKind, id string) (domain.Record, error)
	Create(ctx context.Context, kind domain.ResourceKind, rec domain.Record) (domain.Record, error)
	Close() error
}

func encodeRecord(rec domain.Record) ([]byte, error) {
	if rec.ID() == "" {
		return nil, domain.ValidationError{Field: domain.FieldID, Msg: "must be a non-empty string"}
	}
	return json.Marshal(rec)
}

func decodeStored(kind domain.ResourceKind, raw []byte) (domain.Record, error) {
	rec, err := domain.DecodeRecord(raw)
	if err != nil {
		return nil, domain.InternalError{Op: fmt.Sprintf("decode %s record", kind), Err: err}
	}
	return rec, nil
}
