// Package auth stores user identities and authenticates email/password pairs.
//
// Store is the entry point. It normalizes emails, validates input, hashes
// passwords through a PasswordHasher and persists users through a Storage.
// Two storages ship with the package: PostgresStorage over a pgx pool and
// MemoryStorage for tests.
//
// Expected failures are sentinels. Authenticate collapses unknown email,
// malformed email and wrong password into ErrInvalidCredentials so callers
// cannot enumerate accounts.
package auth
