// ABOUTME: TOML seed file loading for bulk content import
// ABOUTME: Used by the `portfolio-api seed` command to populate the store

package content

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// SeedFile is the TOML layout accepted by the seed command. All sections are
// optional; singleton sections (social, resume) replace any stored value.
type SeedFile struct {
	Certifications []Certification `toml:"certifications"`
	Projects       []Project       `toml:"projects"`
	Posts          []BlogPost      `toml:"posts"`
	Social         *SocialLinks    `toml:"social"`
	Resume         *Resume         `toml:"resume"`
}

// LoadSeedFile parses a TOML seed file from disk.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var seed SeedFile
	if err := toml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	return &seed, nil
}

// Seed imports everything in the seed file through the service, so the same
// validation applies as for API writes. Returns the number of documents
// written.
func (s *Service) Seed(ctx context.Context, seed *SeedFile) (int, error) {
	count := 0

	for _, c := range seed.Certifications {
		if _, err := s.AddCertification(ctx, c); err != nil {
			return count, fmt.Errorf("seeding certification %q: %w", c.Title, err)
		}
		count++
	}

	for _, p := range seed.Projects {
		if _, err := s.AddProject(ctx, p); err != nil {
			return count, fmt.Errorf("seeding project %q: %w", p.Name, err)
		}
		count++
	}

	for _, p := range seed.Posts {
		if _, err := s.AddPost(ctx, p); err != nil {
			return count, fmt.Errorf("seeding post %q: %w", p.Title, err)
		}
		count++
	}

	if seed.Social != nil {
		if _, err := s.SetSocialLinks(ctx, *seed.Social); err != nil {
			return count, fmt.Errorf("seeding social links: %w", err)
		}
		count++
	}

	if seed.Resume != nil {
		if _, err := s.SetResume(ctx, *seed.Resume); err != nil {
			return count, fmt.Errorf("seeding resume: %w", err)
		}
		count++
	}

	s.logger.Info("seeded content", "documents", count)
	return count, nil
}
