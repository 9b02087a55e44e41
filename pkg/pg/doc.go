// Package pg connects to PostgreSQL through a bounded pgx pool, applies
// goose migrations from an fs.FS and classifies driver errors.
//
//	pool, err := pg.Connect(ctx, cfg)
//	err = pg.Migrate(ctx, pool, cfg, migrations.FS, log)
//
// Every pool query acquires one connection and returns it to the pool when
// the result is consumed, so callers never hold connections across calls.
package pg
