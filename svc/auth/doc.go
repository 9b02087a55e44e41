// Package auth orchestrates credential authentication and the session-token
// lifecycle on top of the credential store, the token codec and the session
// cookies.
//
// Every operation returns *Error. Its Kind tells the HTTP layer which status
// to use (400, 401 or 500) and its Message is what the client sees.
// Unexpected failures always carry the message "internal server error"; the
// cause is logged here and kept in Err.
//
// Sessions are stateless. Access tokens live for Config.AccessTokenTTL and
// are accepted from the Authorization header or the access cookie. Refresh
// tokens live for Config.RefreshTokenTTL, travel only in a cookie scoped to
// the refresh endpoint, and are neither rotated nor revocable. Logout clears
// the cookies but does not invalidate tokens already issued.
package auth
