package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Pjt727/classwatch/data"
)

const (
	getTermCache = `
SELECT validator, document
FROM term_cache
WHERE term_code = $1`

	upsertTermCache = `
INSERT INTO term_cache (term_code, validator, document, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (term_code) DO UPDATE
SET validator = EXCLUDED.validator,
    document = EXCLUDED.document,
    updated_at = EXCLUDED.updated_at`

	deleteTermCache = `
DELETE FROM term_cache
WHERE term_code = $1`
)

type termCacheRow struct {
	Validator string `db:"validator"`
	Document  []byte `db:"document"`
}

// SQLStore keeps records in the term_cache table (see migrations)
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, term data.Term) (Record, error) {
	var row termCacheRow
	err := s.db.GetContext(ctx, &row, getTermCache, term.Code())
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrCacheMiss
	}
	if err != nil {
		return Record{}, fmt.Errorf("select term cache %s: %w", term.Code(), err)
	}
	return Record{Validator: row.Validator, Document: row.Document}, nil
}

func (s *SQLStore) Put(ctx context.Context, term data.Term, record Record) error {
	_, err := s.db.ExecContext(ctx, upsertTermCache, term.Code(), record.Validator, record.Document)
	if err != nil {
		return fmt.Errorf("upsert term cache %s: %w", term.Code(), err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, term data.Term) error {
	_, err := s.db.ExecContext(ctx, deleteTermCache, term.Code())
	if err != nil {
		return fmt.Errorf("delete term cache %s: %w", term.Code(), err)
	}
	return nil
}
