// Package content implements typed portfolio content on top of the generic
// document store.
//
// Each content type (Certification, Project, BlogPost, SocialLinks, Resume)
// is stored as a JSON document in its own collection. List-shaped types
// accumulate documents in insertion order; singleton types (social links,
// resume) use replace semantics, deleting any previous document before the
// new one is written.
//
// Blog post bodies are Markdown. The stored document holds only the source;
// ContentHTML is rendered with goldmark on every read.
package content
