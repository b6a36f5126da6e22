package core

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
)

type Limiter interface {
	Allow() bool
}

type limiterEntry struct {
	*rate.Limiter
	lastSeen time.Time
}

type limiterPool struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	lastSweep time.Time
	now       func() time.Time
}

func newLimiterPool() *limiterPool {
	return &limiterPool{
		limiters: make(map[string]*limiterEntry),
		now:      time.Now,
	}
}

// sweep drops limiters that have not been used for limiterIdleTTL. The caller holds mu.
func (p *limiterPool) sweep(now time.Time) {
	if now.Sub(p.lastSweep) < limiterSweepInterval {
		return
	}
	p.lastSweep = now
	for key, e := range p.limiters {
		if now.Sub(e.lastSeen) > limiterIdleTTL {
			delete(p.limiters, key)
		}
	}
}

func (p *limiterPool) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.limiters)
}

// UseLimiter returns the limiter of key, allowing perMinute requests per minute.
func (s *Core) UseLimiter(key string, perMinute int) Limiter {
	p := s.limiter
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	p.sweep(now)

	e, exist := p.limiters[key]
	if !exist {
		e = &limiterEntry{Limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)}
		p.limiters[key] = e
	}
	e.lastSeen = now
	return e.Limiter
}
