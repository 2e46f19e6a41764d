// ABOUTME: Store interfaces and data types for portfolio-api persistence
// ABOUTME: Defines Principal, Document and the store interfaces for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrPrincipalNotFound is returned when a principal doesn't exist.
var ErrPrincipalNotFound = errors.New("principal not found")

// ErrUsernameExists is returned when trying to create a principal with an existing username.
var ErrUsernameExists = errors.New("username already exists")

// Principal represents a registered identity that can authenticate.
type Principal struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash
	Role         string
	CreatedAt    time.Time
}

// Document is a stored content record. Body holds the JSON-encoded payload;
// the store does not interpret it.
type Document struct {
	ID         string
	Collection string
	Body       []byte
	CreatedAt  time.Time
}

// PrincipalStore defines the interface for credential persistence.
// Username uniqueness is enforced at the storage layer so that concurrent
// registrations of the same username cannot both succeed.
type PrincipalStore interface {
	CreatePrincipal(ctx context.Context, p *Principal) error
	GetPrincipalByUsername(ctx context.Context, username string) (*Principal, error)
}

// DocumentStore defines generic per-collection document persistence.
type DocumentStore interface {
	InsertDocument(ctx context.Context, collection string, body []byte) (string, error)
	ListDocuments(ctx context.Context, collection string) ([]*Document, error)
	FindOneDocument(ctx context.Context, collection string) (*Document, error)
	DeleteDocuments(ctx context.Context, collection string) error
	ListCollections(ctx context.Context) ([]string, error)
}

// Store combines all persistence interfaces plus lifecycle operations.
type Store interface {
	PrincipalStore
	DocumentStore

	// Ping reports whether the underlying database is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store
	Close() error
}
