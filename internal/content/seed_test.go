// ABOUTME: Tests for TOML seed file parsing and import
// ABOUTME: Verifies validation applies to seeded content and singletons replace

package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedTOML = `
[[certifications]]
title = "Cloud Architect"
issuer = "Example Org"
issued_at = 2024-03-01T00:00:00Z

[[projects]]
name = "Alpha"
slug = "alpha"
summary = "first project"
featured = true
skills = ["go", "sql"]

[[posts]]
title = "Hello"
slug = "hello"
excerpt = "first post"
content = "# Hello"
published_at = 2024-06-01T12:00:00Z

[social]
github = "https://github.com/alice"
email = "alice@example.com"

[resume]
url = "https://example.com/cv.pdf"
updated_at = 2024-06-01T12:00:00Z
`

func writeSeedFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	seed, err := LoadSeedFile(writeSeedFile(t, seedTOML))
	require.NoError(t, err)

	require.Len(t, seed.Certifications, 1)
	assert.Equal(t, "Cloud Architect", seed.Certifications[0].Title)
	require.Len(t, seed.Projects, 1)
	assert.True(t, seed.Projects[0].Featured)
	require.Len(t, seed.Posts, 1)
	require.NotNil(t, seed.Social)
	assert.Equal(t, "alice@example.com", seed.Social.Email)
	require.NotNil(t, seed.Resume)
}

func TestLoadSeedFile_Malformed(t *testing.T) {
	_, err := LoadSeedFile(writeSeedFile(t, "[[projects]\nname ="))
	assert.Error(t, err)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestService_Seed(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	seed, err := LoadSeedFile(writeSeedFile(t, seedTOML))
	require.NoError(t, err)

	count, err := svc.Seed(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	projects, err := svc.ListProjects(ctx, nil)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, []string{"go", "sql"}, projects[0].Skills)

	resume, err := svc.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/cv.pdf", resume.URL)
}

func TestService_Seed_InvalidEntry(t *testing.T) {
	svc := setupTestService(t)

	// The same validation as API writes applies: a project without a slug fails
	seed := &SeedFile{Projects: []Project{{Name: "NoSlug"}}}
	_, err := svc.Seed(context.Background(), seed)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}
