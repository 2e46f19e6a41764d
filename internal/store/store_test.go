// ABOUTME: Tests for the SQLite store: principals and documents
// ABOUTME: Covers uniqueness under concurrency and basic CRUD round-trips

package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func testPrincipal(username string) *Principal {
	return &Principal{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "$2a$10$notarealhashbutlongenoughxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		Role:         "admin",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestStore_CreateAndGetPrincipal(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	p := testPrincipal("alice")
	err := store.CreatePrincipal(ctx, p)
	require.NoError(t, err)

	retrieved, err := store.GetPrincipalByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, p.ID, retrieved.ID)
	assert.Equal(t, "alice", retrieved.Username)
	assert.Equal(t, p.PasswordHash, retrieved.PasswordHash)
	assert.Equal(t, "admin", retrieved.Role)
	assert.Equal(t, p.CreatedAt, retrieved.CreatedAt)
}

func TestStore_GetPrincipal_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetPrincipalByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrPrincipalNotFound)
}

func TestStore_GetPrincipal_CaseSensitive(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreatePrincipal(ctx, testPrincipal("Alice")))

	// Usernames are compared byte-for-byte, no normalization
	_, err := store.GetPrincipalByUsername(ctx, "alice")
	assert.ErrorIs(t, err, ErrPrincipalNotFound)

	_, err = store.GetPrincipalByUsername(ctx, "Alice")
	assert.NoError(t, err)
}

func TestStore_CreatePrincipal_Duplicate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreatePrincipal(ctx, testPrincipal("alice")))

	err := store.CreatePrincipal(ctx, testPrincipal("alice"))
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestStore_CreatePrincipal_DuplicateRace(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// Concurrent registrations of the same username: exactly one succeeds.
	// The UNIQUE constraint, not an application-level check, enforces this.
	const racers = 8
	var wg sync.WaitGroup
	results := make(chan error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.CreatePrincipal(ctx, testPrincipal("alice"))
		}()
	}
	wg.Wait()
	close(results)

	successes, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrUsernameExists):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "exactly one registration should win")
	assert.Equal(t, racers-1, conflicts)
}

func TestStore_InsertAndListDocuments(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id1, err := store.InsertDocument(ctx, "project", []byte(`{"name":"one"}`))
	require.NoError(t, err)
	require.NotEmpty(t, id1)

	id2, err := store.InsertDocument(ctx, "project", []byte(`{"name":"two"}`))
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	docs, err := store.ListDocuments(ctx, "project")
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// Insertion order
	assert.Equal(t, id1, docs[0].ID)
	assert.Equal(t, id2, docs[1].ID)
	assert.JSONEq(t, `{"name":"one"}`, string(docs[0].Body))

	// Other collections are unaffected
	other, err := store.ListDocuments(ctx, "blogpost")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestStore_FindOneDocument(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.FindOneDocument(ctx, "resume")
	assert.ErrorIs(t, err, ErrNotFound)

	id, err := store.InsertDocument(ctx, "resume", []byte(`{"url":"https://example.com/cv.pdf"}`))
	require.NoError(t, err)

	doc, err := store.FindOneDocument(ctx, "resume")
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "resume", doc.Collection)
}

func TestStore_DeleteDocuments(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.InsertDocument(ctx, "sociallinks", []byte(fmt.Sprintf(`{"n":%d}`, i)))
		require.NoError(t, err)
	}
	_, err := store.InsertDocument(ctx, "project", []byte(`{"name":"keep"}`))
	require.NoError(t, err)

	require.NoError(t, store.DeleteDocuments(ctx, "sociallinks"))

	docs, err := store.ListDocuments(ctx, "sociallinks")
	require.NoError(t, err)
	assert.Empty(t, docs)

	kept, err := store.ListDocuments(ctx, "project")
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	// Deleting an empty collection is not an error
	assert.NoError(t, store.DeleteDocuments(ctx, "sociallinks"))
}

func TestStore_ListCollections(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	names, err := store.ListCollections(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = store.InsertDocument(ctx, "project", []byte(`{}`))
	require.NoError(t, err)
	_, err = store.InsertDocument(ctx, "blogpost", []byte(`{}`))
	require.NoError(t, err)
	_, err = store.InsertDocument(ctx, "blogpost", []byte(`{}`))
	require.NoError(t, err)

	names, err = store.ListCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"blogpost", "project"}, names)
}

func TestStore_Ping(t *testing.T) {
	store := setupTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
