package repositories

import (
	"context"
	"errors"
	"fmt"

	"travelapi/internal/domain"

	"github.com/go-redis/redis/v8"
)

// createRecordScript appends the id and stores the payload in one step.
// RPUSH runs before HSET so a failure leaves neither key touched.
// KEYS[1] records hash, KEYS[2] ids list, ARGV[1] id, ARGV[2] payload.
var createRecordScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 1 then
	return 0
end
redis.call('RPUSH', KEYS[2], ARGV[1])
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
return 1
`)

// RedisStore keeps insertion order in a list of ids and the payloads in a hash, per kind.
type RedisStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "travel"
	}
	return &RedisStore{Client: client, Prefix: prefix}
}

func (s *RedisStore) idsKey(kind domain.ResourceKind) string {
	return fmt.Sprintf("%s:%s:ids", s.Prefix, kind)
}

func (s *RedisStore) recordsKey(kind domain.ResourceKind) string {
	return fmt.Sprintf("%s:%s:records", s.Prefix, kind)
}

func (s *RedisStore) Init(ctx context.Context, seed map[domain.ResourceKind][]domain.Record) error {
	for _, kind := range sortedKinds(seed) {
		n, err := s.Client.LLen(ctx, s.idsKey(kind)).Result()
		if err != nil {
			return domain.InternalError{Op: fmt.Sprintf("count %s", kind), Err: err}
		}
		if n > 0 {
			continue
		}

		_, err = s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, rec := range seed[kind] {
				payload, err := encodeRecord(rec)
				if err != nil {
					return err
				}
				pipe.HSet(ctx, s.recordsKey(kind), rec.ID(), payload)
				pipe.RPush(ctx, s.idsKey(kind), rec.ID())
			}
			return nil
		})
		if err != nil {
			if domain.IsValidation(err) {
				return err
			}
			return domain.InternalError{Op: fmt.Sprintf("seed %s", kind), Err: err}
		}
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

func (s *RedisStore) List(ctx context.Context, kind domain.ResourceKind) ([]domain.Record, error) {
	ids, err := s.Client.LRange(ctx, s.idsKey(kind), 0, -1).Result()
	if err != nil {
		return nil, domain.InternalError{Op: fmt.Sprintf("list %s", kind), Err: err}
	}
	out := []domain.Record{}
	if len(ids) == 0 {
		return out, nil
	}

	vals, err := s.Client.HMGet(ctx, s.recordsKey(kind), ids...).Result()
	if err != nil {
		return nil, domain.InternalError{Op: fmt.Sprintf("list %s", kind), Err: err}
	}
	for _, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		rec, err := decodeStored(kind, []byte(raw))
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *RedisStore) Get(ctx context.Context, kind domain.ResourceKind, id string) (domain.Record, error) {
	raw, err := s.Client.HGet(ctx, s.recordsKey(kind), id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.NotFoundError{Kind: kind, ID: id}
		}
		return nil, domain.InternalError{Op: fmt.Sprintf("get %s", kind), Err: err}
	}
	return decodeStored(kind, []byte(raw))
}

func (s *RedisStore) Create(ctx context.Context, kind domain.ResourceKind, rec domain.Record) (domain.Record, error) {
	payload, err := encodeRecord(rec)
	if err != nil {
		return nil, err
	}

	created, err := createRecordScript.Run(ctx, s.Client,
		[]string{s.recordsKey(kind), s.idsKey(kind)}, rec.ID(), string(payload)).Int()
	if err != nil {
		return nil, domain.InternalError{Op: fmt.Sprintf("create %s", kind), Err: err}
	}
	if created == 0 {
		return nil, domain.ConflictError{Kind: kind, ID: rec.ID()}
	}
	return rec.Clone(), nil
}

func (s *RedisStore) Close() error {
	return s.Client.Close()
}
