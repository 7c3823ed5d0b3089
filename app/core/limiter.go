package core

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/time/rate"
)

type LimitConfig struct {
	Limit int
	Every time.Duration
}

type LimitOption func(l *LimitConfig)

func WithLimit(limit int) LimitOption {
	return func(l *LimitConfig) {
		l.Limit = limit
	}
}

func WithRange(r time.Duration) LimitOption {
	return func(l *LimitConfig) {
		l.Every = r
	}
}

type Limiter interface {
	Allow() bool
}

type LimiterPool struct {
	limiters cmap.ConcurrentMap[string, *rate.Limiter]
}

func NewLimiterPool() *LimiterPool {
	return &LimiterPool{
		limiters: cmap.New[*rate.Limiter](),
	}
}

// UseLimiter returns the token bucket for key, 60 events per minute unless
// overridden via options. Buckets are never evicted; the pool grows with the
// set of distinct keys seen by the process.
func (s *Core) UseLimiter(key string, opts ...LimitOption) Limiter {
	cfg := &LimitConfig{
		Limit: 60,
		Every: time.Minute,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	l, exist := s.limiters.limiters.Get(key)
	if !exist {
		limit := rate.Every(cfg.Every / time.Duration(cfg.Limit))
		l = rate.NewLimiter(limit, cfg.Limit*2)
		s.limiters.limiters.SetIfAbsent(key, l)
		l, _ = s.limiters.limiters.Get(key)
	}
	return l
}
