package delivery

import (
	"math"
	"math/rand/v2"
	"time"
)

// backoff grows exponentially with up to half a base delay of jitter.
type backoff struct {
	base        time.Duration
	max         time.Duration
	maxAttempts int
	attempt     int
}

func (b *backoff) exhausted() bool {
	return b.maxAttempts > 0 && b.attempt >= b.maxAttempts
}

func (b *backoff) next() time.Duration {
	jitter := rand.Float64() * float64(b.base) * 0.5
	delay := math.Min(float64(b.base)*math.Pow(2, float64(b.attempt))+jitter, float64(b.max))
	b.attempt++
	return time.Duration(delay)
}

func (b *backoff) reset() { b.attempt = 0 }
