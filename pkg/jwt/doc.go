// Package jwt issues and verifies the signed identity tokens used for
// access and refresh sessions.
//
// Tokens are HS256 JWTs carrying the subject (the user's email), the
// numeric user id, iat and exp. Verification is pinned to HS256 and
// requires exp; every failure collapses to ErrInvalidToken so callers
// cannot tell a forged token from an expired one.
//
//	svc, err := jwt.NewFromString(secret)
//	token, err := svc.CreateToken("user@example.com", 42, 30*time.Minute)
//	payload, err := svc.VerifyToken(token)
package jwt
