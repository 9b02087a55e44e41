// Package redis connects to Redis with github.com/redis/go-redis/v9 and
// exposes a readiness probe for it.
//
// Redis is optional. When REDIS_URL is empty, Config.Enabled reports false
// and the server keeps rate-limit buckets in process memory instead.
package redis
