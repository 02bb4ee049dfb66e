package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PG is the Postgres-backed document store. All collections share a single
// documents table; filters run against the JSONB payload.
type PG struct {
	pool *pgxpool.Pool
}

// NewPG creates a Postgres document store over the given pool.
func NewPG(pool *pgxpool.Pool) *PG {
	return &PG{pool: pool}
}

// EnsureSchema creates the documents table and its indexes.
func (s *PG) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id UUID PRIMARY KEY,
			collection TEXT NOT NULL,
			data JSONB NOT NULL,
			inserted_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS documents_collection_idx
			ON documents (collection, inserted_at)`,
		`CREATE INDEX IF NOT EXISTS documents_data_idx
			ON documents USING GIN (data jsonb_path_ops)`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure documents schema: %w", err)
		}
	}
	return nil
}

func (s *PG) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	id := uuid.New()
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (id, collection, data) VALUES ($1, $2, $3)`,
		id, collection, data)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id.String(), nil
}

func (s *PG) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	query := `SELECT id, data FROM documents WHERE collection = $1`
	args := []interface{}{collection}
	idx := 2

	if len(filter.Eq) > 0 {
		eq, err := json.Marshal(filter.Eq)
		if err != nil {
			return nil, fmt.Errorf("encode filter: %w", err)
		}
		query += fmt.Sprintf(` AND data @> $%d`, idx)
		args = append(args, eq)
		idx++
	}
	for field, min := range filter.Gte {
		query += fmt.Sprintf(` AND data->>$%d >= $%d`, idx, idx+1)
		args = append(args, field, min)
		idx += 2
	}

	query += ` ORDER BY inserted_at, id`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, idx)
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		var id uuid.UUID
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		doc, err := decodeDocument(id, data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *PG) FindOne(ctx context.Context, collection, id string) (Document, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	var data []byte
	err = s.pool.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`,
		collection, uid).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find one in %s: %w", collection, err)
	}
	return decodeDocument(uid, data)
}

func (s *PG) UpdateOne(ctx context.Context, collection, id string, set Document) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	patch, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode update: %w", err)
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE documents SET data = data || $3 WHERE collection = $1 AND id = $2`,
		collection, uid, patch)
	if err != nil {
		return fmt.Errorf("update in %s: %w", collection, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PG) DeleteOne(ctx context.Context, collection, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, uid)
	if err != nil {
		return fmt.Errorf("delete in %s: %w", collection, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PG) Collections(ctx context.Context, limit int) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT collection FROM documents ORDER BY collection LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan collection name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *PG) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func decodeDocument(id uuid.UUID, data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	doc["id"] = id.String()
	return doc, nil
}
