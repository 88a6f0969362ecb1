package repositories

import (
	"context"
	"testing"

	"travelapi/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newMiniredisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "travel-test")
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStoreContract(t *testing.T) {
	s, _ := newMiniredisStore(t)
	exerciseStore(t, s)
}

func TestRedisStoreCreateFailureLeavesNoPartialRecord(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()

	// a wrong-typed ids key makes RPUSH fail inside the script
	if err := mr.Set(s.idsKey(domain.KindBuses), "not-a-list"); err != nil {
		t.Fatalf("miniredis set: %v", err)
	}
	if _, err := s.Create(ctx, domain.KindBuses, domain.Record{"id": "bus-9", "name": "Night Coach"}); !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if mr.Exists(s.recordsKey(domain.KindBuses)) {
		t.Fatalf("payload was written although the id was not listed")
	}
	if _, err := s.Get(ctx, domain.KindBuses, "bus-9"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found after failed create, got %v", err)
	}

	mr.Del(s.idsKey(domain.KindBuses))
	if _, err := s.Create(ctx, domain.KindBuses, domain.Record{"id": "bus-9", "name": "Night Coach"}); err != nil {
		t.Fatalf("retry should succeed, got %v", err)
	}
	got, err := s.List(ctx, domain.KindBuses)
	if err != nil || len(got) != 1 || got[0].ID() != "bus-9" {
		t.Fatalf("retried record not listed: %#v, %v", got, err)
	}
}

func TestRedisStoreConflictDoesNotAppend(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, domain.KindHotels, domain.Record{"id": "h1", "name": "First"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, domain.KindHotels, domain.Record{"id": "h1", "name": "Second"}); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}

	ids, err := mr.List(s.idsKey(domain.KindHotels))
	if err != nil {
		t.Fatalf("miniredis list: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("conflicting create appended to ids: %v", ids)
	}
	rec, err := s.Get(ctx, domain.KindHotels, "h1")
	if err != nil || rec["name"] != "First" {
		t.Fatalf("original payload overwritten: %#v, %v", rec, err)
	}
}
