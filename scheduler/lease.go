package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Leaser hands out a slot key once so several replicas (or a replica and
// the Lambda job) never deliver the same reminder slot twice.
type Leaser interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type RedisLeaser struct {
	client *redis.Client
}

func NewRedisLeaser(client *redis.Client) *RedisLeaser {
	return &RedisLeaser{client: client}
}

func (l *RedisLeaser) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, key, time.Now().Unix(), ttl).Result()
}

// MemoryLeaser is the single-process fallback when Redis is not configured.
type MemoryLeaser struct {
	mu     sync.Mutex
	leases map[string]time.Time
	now    func() time.Time
}

func NewMemoryLeaser() *MemoryLeaser {
	return &MemoryLeaser{leases: make(map[string]time.Time), now: time.Now}
}

func (l *MemoryLeaser) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, exp := range l.leases {
		if now.After(exp) {
			delete(l.leases, k)
		}
	}
	if _, taken := l.leases[key]; taken {
		return false, nil
	}
	l.leases[key] = now.Add(ttl)
	return true, nil
}
