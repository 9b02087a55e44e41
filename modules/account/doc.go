// Package account exposes the credential authentication endpoints over HTTP.
//
// PasswordHandler serves, relative to its mount point:
//
//	POST /login     form username, password
//	POST /register  JSON {"email", "password"}
//	POST /refresh   refresh cookie
//	POST /logout
//	GET  /me        Authorization header or access cookie
//
// Login and register can be throttled per client IP with WithRateLimiter.
// RequireAuth is exported for other routers that need an identified user.
package account
