// Package auth provides authentication and authorization for portfolio-api.
//
// # Components
//
//   - Password hashing: bcrypt with a fixed work factor. Hashing is salted
//     and one-way; verification is constant-time with respect to where a
//     mismatch occurs. Input is capped at bcrypt's 72-byte limit.
//
//   - TokenCodec: HS256-signed JWTs carrying a subject claim. The signing
//     secret is injected at construction and fixed for the process lifetime;
//     restarting with a new secret invalidates all outstanding tokens, which
//     is the system's only revocation mechanism.
//
//   - Service: Composes the codec and the credential store. Register creates
//     principals, Login exchanges a username/password for a bearer token, and
//     Authenticate resolves a bearer token back to a principal.
//
// # Failure Semantics
//
// Login failures collapse to a single ErrInvalidCredentials regardless of
// whether the username was unknown or the password wrong, and unknown-user
// lookups burn a dummy bcrypt comparison to keep timing uniform. Token
// failures collapse to a single ErrUnauthorized. Only registration reveals
// username existence, via store.ErrUsernameExists.
//
// # Principal Resolution
//
// Authenticate re-fetches the principal from the store on every call instead
// of trusting claims embedded in the token. A deleted user or a changed role
// therefore takes effect on the very next request.
//
// # HTTP Integration
//
// RequireAuth wraps handlers that mutate content:
//
//	mux.Handle("POST /admin/projects", auth.RequireAuth(svc)(handler))
//
// On failure it answers 401 with a WWW-Authenticate: Bearer challenge and a
// generic JSON error body. The authenticated principal is available to
// downstream handlers via PrincipalFromContext.
package auth
