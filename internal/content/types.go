// ABOUTME: Portfolio content types stored as JSON documents
// ABOUTME: Each type maps to one store collection named by CollectionX constants

package content

import "time"

// Collection names, one per content type.
const (
	CollectionCertifications = "certification"
	CollectionProjects       = "project"
	CollectionBlogPosts      = "blogpost"
	CollectionSocialLinks    = "sociallinks"
	CollectionResume         = "resume"
)

// Certification is a professional certification entry.
type Certification struct {
	Title         string    `json:"title" toml:"title"`
	Issuer        string    `json:"issuer" toml:"issuer"`
	IssuedAt      time.Time `json:"issued_at" toml:"issued_at"`
	LogoURL       string    `json:"logo_url,omitempty" toml:"logo_url"`
	CredentialID  string    `json:"credential_id,omitempty" toml:"credential_id"`
	CredentialURL string    `json:"credential_url,omitempty" toml:"credential_url"`
}

// Project is a portfolio project entry.
type Project struct {
	Name           string   `json:"name" toml:"name"`
	Slug           string   `json:"slug" toml:"slug"`
	Summary        string   `json:"summary" toml:"summary"`
	MarketplaceURL string   `json:"marketplace_url,omitempty" toml:"marketplace_url"`
	Featured       bool     `json:"featured" toml:"featured"`
	Skills         []string `json:"skills" toml:"skills"`
	Technologies   []string `json:"technologies" toml:"technologies"`
	Features       []string `json:"features" toml:"features"`
	Screenshots    []string `json:"screenshots" toml:"screenshots"`
}

// BlogPost is a blog entry. Content is Markdown source; ContentHTML is
// populated on read with the rendered HTML and never stored.
type BlogPost struct {
	Title       string    `json:"title" toml:"title"`
	Slug        string    `json:"slug" toml:"slug"`
	Excerpt     string    `json:"excerpt" toml:"excerpt"`
	Content     string    `json:"content" toml:"content"`
	ContentHTML string    `json:"content_html,omitempty" toml:"-"`
	PublishedAt time.Time `json:"published_at" toml:"published_at"`
}

// SocialLinks holds the site's social profile URLs. At most one document
// exists; setting it replaces any previous one.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty" toml:"linkedin"`
	GitHub    string `json:"github,omitempty" toml:"github"`
	Medium    string `json:"medium,omitempty" toml:"medium"`
	GoogleDev string `json:"google_dev,omitempty" toml:"google_dev"`
	Email     string `json:"email,omitempty" toml:"email"`
}

// Resume points at the downloadable resume. At most one document exists;
// setting it replaces any previous one.
type Resume struct {
	URL       string    `json:"url" toml:"url"`
	UpdatedAt time.Time `json:"updated_at" toml:"updated_at"`
}
