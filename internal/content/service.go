// ABOUTME: Content service over the document store
// ABOUTME: Typed list/add operations per content type, replace semantics for singletons

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yuin/goldmark"

	"github.com/devfolio/portfolio-api/internal/store"
)

// ErrInvalidDocument is returned when a submitted document is missing
// required fields.
var ErrInvalidDocument = errors.New("invalid document")

// ErrResumeNotFound is returned when no resume has been set.
var ErrResumeNotFound = errors.New("resume not found")

// Service reads and writes portfolio content through the document store.
type Service struct {
	docs   store.DocumentStore
	logger *slog.Logger
}

// NewService creates a content service backed by the given document store.
func NewService(docs store.DocumentStore) *Service {
	return &Service{
		docs:   docs,
		logger: slog.Default().With("component", "content"),
	}
}

// ListCertifications returns all certifications in insertion order.
func (s *Service) ListCertifications(ctx context.Context) ([]Certification, error) {
	docs, err := s.docs.ListDocuments(ctx, CollectionCertifications)
	if err != nil {
		return nil, err
	}

	certs := make([]Certification, 0, len(docs))
	for _, doc := range docs {
		var c Certification
		if err := json.Unmarshal(doc.Body, &c); err != nil {
			return nil, fmt.Errorf("decoding certification %s: %w", doc.ID, err)
		}
		certs = append(certs, c)
	}
	return certs, nil
}

// AddCertification stores a certification and returns its document ID.
func (s *Service) AddCertification(ctx context.Context, c Certification) (string, error) {
	if c.Title == "" || c.Issuer == "" {
		return "", fmt.Errorf("%w: certification requires title and issuer", ErrInvalidDocument)
	}
	return s.insert(ctx, CollectionCertifications, c)
}

// ListProjects returns projects in insertion order. A non-nil featured
// filters to projects whose featured flag matches.
func (s *Service) ListProjects(ctx context.Context, featured *bool) ([]Project, error) {
	docs, err := s.docs.ListDocuments(ctx, CollectionProjects)
	if err != nil {
		return nil, err
	}

	projects := make([]Project, 0, len(docs))
	for _, doc := range docs {
		var p Project
		if err := json.Unmarshal(doc.Body, &p); err != nil {
			return nil, fmt.Errorf("decoding project %s: %w", doc.ID, err)
		}
		if featured != nil && p.Featured != *featured {
			continue
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// AddProject stores a project and returns its document ID.
func (s *Service) AddProject(ctx context.Context, p Project) (string, error) {
	if p.Name == "" || p.Slug == "" {
		return "", fmt.Errorf("%w: project requires name and slug", ErrInvalidDocument)
	}
	return s.insert(ctx, CollectionProjects, p)
}

// ListPosts returns blog posts in insertion order with ContentHTML populated
// from the Markdown source.
func (s *Service) ListPosts(ctx context.Context) ([]BlogPost, error) {
	docs, err := s.docs.ListDocuments(ctx, CollectionBlogPosts)
	if err != nil {
		return nil, err
	}

	posts := make([]BlogPost, 0, len(docs))
	for _, doc := range docs {
		var p BlogPost
		if err := json.Unmarshal(doc.Body, &p); err != nil {
			return nil, fmt.Errorf("decoding blog post %s: %w", doc.ID, err)
		}
		p.ContentHTML = renderMarkdown(s.logger, p.Content)
		posts = append(posts, p)
	}
	return posts, nil
}

// AddPost stores a blog post and returns its document ID. Only the Markdown
// source is persisted; HTML is rendered on read.
func (s *Service) AddPost(ctx context.Context, p BlogPost) (string, error) {
	if p.Title == "" || p.Slug == "" {
		return "", fmt.Errorf("%w: blog post requires title and slug", ErrInvalidDocument)
	}
	p.ContentHTML = ""
	return s.insert(ctx, CollectionBlogPosts, p)
}

// SocialLinks returns the stored social links, or a zero value if none have
// been set.
func (s *Service) SocialLinks(ctx context.Context) (SocialLinks, error) {
	var links SocialLinks

	doc, err := s.docs.FindOneDocument(ctx, CollectionSocialLinks)
	if errors.Is(err, store.ErrNotFound) {
		return links, nil
	}
	if err != nil {
		return links, err
	}

	if err := json.Unmarshal(doc.Body, &links); err != nil {
		return links, fmt.Errorf("decoding social links: %w", err)
	}
	return links, nil
}

// SetSocialLinks replaces the stored social links.
func (s *Service) SetSocialLinks(ctx context.Context, links SocialLinks) (string, error) {
	if err := s.docs.DeleteDocuments(ctx, CollectionSocialLinks); err != nil {
		return "", err
	}
	return s.insert(ctx, CollectionSocialLinks, links)
}

// Resume returns the stored resume, or ErrResumeNotFound if none has been set.
func (s *Service) Resume(ctx context.Context) (Resume, error) {
	var resume Resume

	doc, err := s.docs.FindOneDocument(ctx, CollectionResume)
	if errors.Is(err, store.ErrNotFound) {
		return resume, ErrResumeNotFound
	}
	if err != nil {
		return resume, err
	}

	if err := json.Unmarshal(doc.Body, &resume); err != nil {
		return resume, fmt.Errorf("decoding resume: %w", err)
	}
	return resume, nil
}

// SetResume replaces the stored resume.
func (s *Service) SetResume(ctx context.Context, resume Resume) (string, error) {
	if resume.URL == "" {
		return "", fmt.Errorf("%w: resume requires url", ErrInvalidDocument)
	}
	if err := s.docs.DeleteDocuments(ctx, CollectionResume); err != nil {
		return "", err
	}
	return s.insert(ctx, CollectionResume, resume)
}

// insert marshals a value and stores it in the named collection.
func (s *Service) insert(ctx context.Context, collection string, v any) (string, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding %s document: %w", collection, err)
	}
	return s.docs.InsertDocument(ctx, collection, body)
}

// renderMarkdown converts Markdown to HTML. A conversion failure is logged
// and yields a placeholder rather than failing the whole listing.
func renderMarkdown(logger *slog.Logger, src string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		logger.Error("failed to convert markdown", "error", err)
		return "<p>Failed to render content.</p>"
	}
	return buf.String()
}
