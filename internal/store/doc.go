// Package store provides persistent storage for portfolio-api using SQLite.
//
// # Architecture
//
// The package uses an interface-driven architecture:
//
//   - PrincipalStore: Registered identities (username, password hash, role)
//   - DocumentStore: Generic per-collection JSON document persistence
//
// SQLiteStore implements both interfaces in a single struct, allowing easy
// composition while maintaining clear interface boundaries.
//
// # Data Models
//
//   - Principal: A registered identity capable of authenticating. Usernames
//     are unique; uniqueness is enforced with a UNIQUE constraint so that
//     concurrent registrations of the same username cannot both succeed.
//   - Document: An opaque JSON payload in a named collection. Content types
//     (certifications, projects, blog posts, social links, resume) each map
//     to one collection; the store never interprets document bodies.
//
// # SQLite Configuration
//
// The store uses SQLite with WAL mode for concurrent reads:
//
//	PRAGMA journal_mode=WAL;
//	PRAGMA foreign_keys=ON;
//
// Use NewSQLiteStore(":memory:") for tests that don't need a file on disk.
//
// # Error Handling
//
// Common errors:
//
//   - ErrNotFound: Requested document does not exist
//   - ErrPrincipalNotFound: No principal with the given username
//   - ErrUsernameExists: Registration conflict on username
//
// All methods accept context.Context for cancellation support.
package store
