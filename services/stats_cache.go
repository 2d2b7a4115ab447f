package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

const statsCacheKey = "stats:completion"

// StatsCache keeps the derived completion stats in Redis between
// recomputations. Every method is best effort: a cache failure is logged
// and swallowed, never surfaced to the request.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates and connects a stats cache
func NewStatsCache(redisURL string, ttl, dialTimeout time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &StatsCache{client: client, ttl: ttl}, nil
}

func (sc *StatsCache) Get(ctx context.Context) (*model.CompletionStats, bool) {
	data, err := sc.client.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("stats cache read failed: %v", err)
		}
		return nil, false
	}

	var stats model.CompletionStats
	if err := json.Unmarshal(data, &stats); err != nil {
		log.Printf("stats cache entry undecodable, dropping it: %v", err)
		sc.Invalidate(ctx)
		return nil, false
	}
	return &stats, true
}

func (sc *StatsCache) Set(ctx context.Context, stats *model.CompletionStats) {
	data, err := json.Marshal(stats)
	if err != nil {
		log.Printf("failed to marshal stats for cache: %v", err)
		return
	}
	if err := sc.client.Set(ctx, statsCacheKey, data, sc.ttl).Err(); err != nil {
		log.Printf("stats cache write failed: %v", err)
	}
}

func (sc *StatsCache) Invalidate(ctx context.Context) {
	if err := sc.client.Del(ctx, statsCacheKey).Err(); err != nil {
		log.Printf("stats cache invalidation failed: %v", err)
	}
}
