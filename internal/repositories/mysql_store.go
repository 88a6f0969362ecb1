package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"travelapi/internal/domain"

	"github.com/go-sql-driver/mysql"
)

const (
	mysqlDuplicateEntry = 1062
	resourceTable       = "resource_records"
)

const createResourceTableSQL = `
	CREATE TABLE IF NOT EXISTS resource_records (
		seq BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		kind VARCHAR(64) NOT NULL,
		record_id VARCHAR(128) NOT NULL,
		payload JSON NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE KEY uq_resource_kind_id (kind, record_id),
		KEY idx_resource_kind_seq (kind, seq)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

const insertResourceSQL = `INSERT INTO resource_records (kind, record_id, payload, created_at) VALUES (?, ?, ?, UTC_TIMESTAMP())`

// MySQLStore keeps every kind in one table; seq preserves insertion order.
type MySQLStore struct {
	DB *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{DB: db}
}

func (s *MySQLStore) Init(ctx context.Context, seed map[domain.ResourceKind][]domain.Record) error {
	exists, err := tableExists(ctx, s.DB, resourceTable)
	if err != nil {
		return domain.InternalError{Op: "check resource_records", Err: err}
	}
	if !exists {
		if _, err := s.DB.ExecContext(ctx, createResourceTableSQL); err != nil {
			return domain.InternalError{Op: "create resource_records", Err: err}
		}
	}

	for _, kind := range sortedKinds(seed) {
		var count int
		err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM resource_records WHERE kind = ?`, string(kind)).Scan(&count)
		if err != nil {
			return domain.InternalError{Op: fmt.Sprintf("count %s", kind), Err: err}
		}
		if count > 0 {
			continue
		}
		if err := s.seedKind(ctx, kind, seed[kind]); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStore) seedKind(ctx context.Context, kind domain.ResourceKind, records []domain.Record) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return domain.InternalError{Op: fmt.Sprintf("seed %s", kind), Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	for _, rec := range records {
		payload, err := encodeRecord(rec)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertResourceSQL, string(kind), rec.ID(), string(payload)); err != nil {
			return mapMySQLError(kind, rec.ID(), fmt.Sprintf("seed %s", kind), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Op: fmt.Sprintf("seed %s", kind), Err: err}
	}
	return nil
}

func (s *MySQLStore) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *MySQLStore) List(ctx context.Context, kind domain.ResourceKind) ([]domain.Record, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT payload
		FROM resource_records
		WHERE kind = ?
		ORDER BY seq ASC
	`, string(kind))
	if err != nil {
		return nil, domain.InternalError{Op: fmt.Sprintf("list %s", kind), Err: err}
	}
	defer rows.Close()

	out := []domain.Record{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, domain.InternalError{Op: fmt.Sprintf("scan %s", kind), Err: err}
		}
		rec, err := decodeStored(kind, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Op: fmt.Sprintf("iterate %s", kind), Err: err}
	}
	return out, nil
}

func (s *MySQLStore) Get(ctx context.Context, kind domain.ResourceKind, id string) (domain.Record, error) {
	var raw []byte
	err := s.DB.QueryRowContext(ctx, `
		SELECT payload
		FROM resource_records
		WHERE kind = ? AND record_id = ?
	`, string(kind), id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Kind: kind, ID: id}
		}
		return nil, domain.InternalError{Op: fmt.Sprintf("get %s", kind), Err: err}
	}
	return decodeStored(kind, raw)
}

func (s *MySQLStore) Create(ctx context.Context, kind domain.ResourceKind, rec domain.Record) (domain.Record, error) {
	payload, err := encodeRecord(rec)
	if err != nil {
		return nil, err
	}
	if _, err := s.DB.ExecContext(ctx, insertResourceSQL, string(kind), rec.ID(), string(payload)); err != nil {
		return nil, mapMySQLError(kind, rec.ID(), fmt.Sprintf("create %s", kind), err)
	}
	return rec.Clone(), nil
}

func (s *MySQLStore) Close() error {
	return s.DB.Close()
}

func mapMySQLError(kind domain.ResourceKind, id, op string, err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return domain.ConflictError{Kind: kind, ID: id, Err: err}
	}
	return domain.InternalError{Op: op, Err: err}
}

func sortedKinds(seed map[domain.ResourceKind][]domain.Record) []domain.ResourceKind {
	kinds := make([]domain.ResourceKind, 0, len(seed))
	for k := range seed {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
