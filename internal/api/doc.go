// Package api exposes the portfolio HTTP API.
//
// # Routes
//
// Public reads:
//
//	GET /                GET /healthz
//	GET /certifications  GET /projects[?featured=]  GET /blog
//	GET /social          GET /resume
//
// Authentication:
//
//	POST /auth/register  (JSON: username, password, role)
//	POST /auth/token     (form: username, password) -> {access_token, token_type}
//
// Admin writes, all behind bearer token auth:
//
//	POST /admin/certifications  POST /admin/projects  POST /admin/blog
//	POST /admin/social          POST /admin/resume
//
// Writes to /admin/social and /admin/resume replace the stored document;
// the other admin writes append.
//
// The whole route table runs behind CORS, request logging, and panic
// recovery middleware. Errors are JSON objects of the form {"error": "..."};
// authentication failures are a uniform 401 with a WWW-Authenticate: Bearer
// challenge, produced by the auth package middleware.
package api
