package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atomixxxx/cuisine-app/internal/dbx"
)

// Document is one stored record: its identity plus the JSON body the
// rest of the app reads and writes.
type Document struct {
	ID  string
	Doc json.RawMessage
}

// CollectionRepository reads and writes documents grouped by collection
// name. Bound to a DBTX, it works both standalone and inside a
// dbx.WithTx transaction.
type CollectionRepository struct {
	db dbx.DBTX
}

// NewCollectionRepository returns a repository bound to the given DBTX.
func NewCollectionRepository(db dbx.DBTX) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// GetAll returns every document in a collection, ordered by id for
// deterministic export output.
func (r *CollectionRepository) GetAll(ctx context.Context, collection string) ([]Document, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, doc FROM documents WHERE collection = ? ORDER BY id`, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", collection, err)
	}
	defer rows.Close()

	var result []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Doc); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Put upserts a single document.
func (r *CollectionRepository) Put(ctx context.Context, collection string, d Document) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, doc) VALUES (?, ?, ?)
		ON CONFLICT(collection, id) DO UPDATE SET doc = excluded.doc
	`, collection, d.ID, []byte(d.Doc))
	if err != nil {
		return fmt.Errorf("failed to upsert %s/%s: %w", collection, d.ID, err)
	}
	return nil
}

// ReplaceAll clears a collection and inserts docs in its place. Callers
// replacing several collections atomically must run it inside
// dbx.WithTx.
func (r *CollectionRepository) ReplaceAll(ctx context.Context, collection string, docs []Document) error {
	if err := r.Clear(ctx, collection); err != nil {
		return err
	}
	for _, d := range docs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO documents (collection, id, doc) VALUES (?, ?, ?)`,
			collection, d.ID, []byte(d.Doc)); err != nil {
			return fmt.Errorf("failed to insert %s/%s: %w", collection, d.ID, err)
		}
	}
	return nil
}

// Clear removes every document in a collection.
func (r *CollectionRepository) Clear(ctx context.Context, collection string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ?`, collection); err != nil {
		return fmt.Errorf("failed to clear %s: %w", collection, err)
	}
	return nil
}
