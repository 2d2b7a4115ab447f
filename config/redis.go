package config

import (
	"time"

	"main/utils"
)

type RedisConfig struct {
	URL         string
	StatsTTL    time.Duration
	DialTimeout time.Duration
}

func LoadRedisConfig() RedisConfig {
	return RedisConfig{
		URL:         utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
		StatsTTL:    utils.GetEnvAsDuration("STATS_CACHE_TTL", 5*time.Minute),
		DialTimeout: utils.GetEnvAsDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
	}
}
