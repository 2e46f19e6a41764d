// ABOUTME: Generic document persistence methods on SQLiteStore
// ABOUTME: One row per document, grouped into named collections, JSON body opaque to the store

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InsertDocument stores a JSON document in the named collection and returns
// its generated ID.
func (s *SQLiteStore) InsertDocument(ctx context.Context, collection string, body []byte) (string, error) {
	id := uuid.New().String()
	query := `
		INSERT INTO documents (id, collection, body, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		id,
		collection,
		string(body),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("inserting document: %w", err)
	}

	s.logger.Debug("inserted document", "id", id, "collection", collection)
	return id, nil
}

// ListDocuments returns all documents in a collection in insertion order.
func (s *SQLiteStore) ListDocuments(ctx context.Context, collection string) ([]*Document, error) {
	query := `
		SELECT id, collection, body, created_at
		FROM documents
		WHERE collection = ?
		ORDER BY created_at ASC, rowid ASC
	`

	rows, err := s.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var docs []*Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return docs, nil
}

// FindOneDocument returns the oldest document in a collection, or ErrNotFound
// if the collection is empty. Used for singleton collections (social links,
// resume) that hold at most one document.
func (s *SQLiteStore) FindOneDocument(ctx context.Context, collection string) (*Document, error) {
	query := `
		SELECT id, collection, body, created_at
		FROM documents
		WHERE collection = ?
		ORDER BY created_at ASC, rowid ASC
		LIMIT 1
	`

	var doc Document
	var body, createdAtStr string

	err := s.db.QueryRowContext(ctx, query, collection).Scan(
		&doc.ID,
		&doc.Collection,
		&body,
		&createdAtStr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying document: %w", err)
	}

	doc.Body = []byte(body)
	doc.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &doc, nil
}

// DeleteDocuments removes all documents in a collection.
func (s *SQLiteStore) DeleteDocuments(ctx context.Context, collection string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE collection = ?", collection)
	if err != nil {
		return fmt.Errorf("deleting documents: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected > 0 {
		s.logger.Debug("deleted documents", "collection", collection, "count", rowsAffected)
	}
	return nil
}

// ListCollections returns the distinct collection names that hold documents.
func (s *SQLiteStore) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT collection FROM documents ORDER BY collection ASC")
	if err != nil {
		return nil, fmt.Errorf("querying collections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning collection name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating collections: %w", err)
	}

	return names, nil
}

// scanDocument reads a document row from a multi-row result set.
func scanDocument(rows *sql.Rows) (*Document, error) {
	var doc Document
	var body, createdAtStr string

	if err := rows.Scan(&doc.ID, &doc.Collection, &body, &createdAtStr); err != nil {
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	doc.Body = []byte(body)

	var err error
	doc.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &doc, nil
}
