package ratelimiter

import (
	"fmt"
	"time"
)

// Config describes one token bucket. Each key starts full and regains
// RefillRate tokens every RefillInterval, up to Capacity.
type Config struct {
	Capacity       int           `env:"RATELIMIT_CAPACITY" envDefault:"10"`          // Capacity is the burst size.
	RefillRate     int           `env:"RATELIMIT_REFILL_RATE" envDefault:"1"`        // RefillRate is tokens added per interval.
	RefillInterval time.Duration `env:"RATELIMIT_REFILL_INTERVAL" envDefault:"6s"`   // RefillInterval is the refill period.
	KeyPrefix      string        `env:"RATELIMIT_KEY_PREFIX" envDefault:"ratelimit"` // KeyPrefix namespaces keys in shared stores.
}

func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// ttl is how long an idle bucket needs to refill completely, plus one interval.
func (c Config) ttl() time.Duration {
	intervals := (c.Capacity + c.RefillRate - 1) / c.RefillRate
	return time.Duration(intervals+1) * c.RefillInterval
}
