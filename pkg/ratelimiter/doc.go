// Package ratelimiter implements token-bucket rate limiting with in-memory
// and Redis stores and an HTTP middleware.
//
// A Bucket pairs a Config with a Store. Each key (for example
// "login:203.0.113.7") starts with Capacity tokens and regains RefillRate
// tokens per RefillInterval. A request that finds too few tokens is denied
// without consuming any, so a client hammering a closed bucket does not
// push its own recovery further out.
//
//	bucket, _ := ratelimiter.NewBucket(ratelimiter.NewRedisStore(rdb), cfg)
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.Composite(
//	    ratelimiter.Static("login"), ratelimiter.ByClientIP,
//	))).Post("/login", login)
//
// RedisStore runs the refill and take as one Lua script so that concurrent
// instances observe a single bucket.
package ratelimiter
