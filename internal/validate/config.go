// Package validate checks runtime configuration before the server starts.
package validate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Env validates required configuration. Fail-fast on bad config.
func Env() error {
	if os.Getenv("DATABASE_URL") == "" {
		return errors.New("DATABASE_URL must be set")
	}

	if err := envMinInt("MAX_BODY_SIZE", 1); err != nil {
		return fmt.Errorf("MAX_BODY_SIZE: %w", err)
	}
	if err := envMinInt("BOOKS_CACHE_TTL", 1); err != nil {
		return fmt.Errorf("BOOKS_CACHE_TTL: %w", err)
	}
	if err := envMinInt("BOOKS_CACHE_TIMEOUT_MS", 1); err != nil {
		return fmt.Errorf("BOOKS_CACHE_TIMEOUT_MS: %w", err)
	}
	if err := envMinFloat("RATE_LIMIT_RPS", 0); err != nil {
		return fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if err := envMinInt("RATE_LIMIT_BURST", 1); err != nil {
		return fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	return nil
}

// HardeningWarnings returns non-fatal warnings worth logging on startup.
func HardeningWarnings(appEnv string) []string {
	var warns []string

	if strings.EqualFold(appEnv, "production") {
		if u := os.Getenv("REDIS_URL"); u != "" && strings.HasPrefix(u, "redis://") {
			warns = append(warns, "REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
		}
		if os.Getenv("REDIS_URL") == "" && os.Getenv("REDIS_ADDR") != "" {
			if os.Getenv("REDIS_PASSWORD") == "" {
				warns = append(warns, "REDIS_ADDR provided without REDIS_PASSWORD; require auth in production")
			}
		}
		if os.Getenv("REDIS_URL") == "" && os.Getenv("REDIS_ADDR") == "" {
			warns = append(warns, "no Redis configured; list caching and rate limiting are disabled")
		}
	}

	return warns
}

// PingRedis checks connectivity with a short timeout.
func PingRedis(rdb *redis.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return rdb.Ping(ctx).Err()
}

func envMinFloat(key string, min float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("not a number: %v", err)
	}
	if f <= min {
		return fmt.Errorf("must be > %v", min)
	}
	return nil
}

func envMinInt(key string, min int64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil // unset -> code defaults apply elsewhere
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("not a number: %v", err)
	}
	if n < min {
		return fmt.Errorf("must be >= %d", min)
	}
	return nil
}
