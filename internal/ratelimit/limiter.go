package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// KeyedLimiter hands out one token bucket per key (client IP, forecast
// source name, ...).
type KeyedLimiter struct {
	limiters map[string]*entry
	mu       sync.RWMutex
	defaults RateLimitConfig
	now      func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewKeyedLimiter(config RateLimitConfig) *KeyedLimiter {
	return &KeyedLimiter{
		limiters: make(map[string]*entry),
		defaults: config,
		now:      time.Now,
	}
}

func NewKeyedLimiterWithDefaults() *KeyedLimiter {
	return NewKeyedLimiter(DefaultConfig())
}

func (k *KeyedLimiter) GetLimiter(key string) *rate.Limiter {
	now := k.now()

	k.mu.RLock()
	e, exists := k.limiters[key]
	k.mu.RUnlock()

	if exists {
		k.mu.Lock()
		e.lastSeen = now
		k.mu.Unlock()
		return e.limiter
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if e, exists = k.limiters[key]; exists {
		e.lastSeen = now
		return e.limiter
	}

	e = &entry{
		limiter:  rate.NewLimiter(rate.Limit(k.defaults.RequestsPerSecond), k.defaults.BurstSize),
		lastSeen: now,
	}
	k.limiters[key] = e
	return e.limiter
}

func (k *KeyedLimiter) SetLimit(key string, rps float64, burst int) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.limiters[key] = &entry{
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		lastSeen: k.now(),
	}
}

func (k *KeyedLimiter) Allow(key string) bool {
	return k.GetLimiter(key).Allow()
}

func (k *KeyedLimiter) Wait(ctx context.Context, key string) error {
	return k.GetLimiter(key).Wait(ctx)
}

// Prune drops limiters idle for longer than maxIdle and returns how many
// were removed.
func (k *KeyedLimiter) Prune(maxIdle time.Duration) int {
	cutoff := k.now().Add(-maxIdle)

	k.mu.Lock()
	defer k.mu.Unlock()

	removed := 0
	for key, e := range k.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(k.limiters, key)
			removed++
		}
	}
	return removed
}

func (k *KeyedLimiter) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.limiters)
}
