package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	mw "github.com/bookly-app/bookly-api/internal/api/middlewares"
	"github.com/bookly-app/bookly-api/internal/api/router"
	"github.com/bookly-app/bookly-api/internal/repository/sqlconnect"
	storebooks "github.com/bookly-app/bookly-api/internal/store/books"
	"github.com/bookly-app/bookly-api/internal/validate"
	"github.com/bookly-app/bookly-api/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	if err := validate.Env(); err != nil {
		log.Fatalf("config: %v", err)
	}
	for _, warn := range validate.HardeningWarnings(os.Getenv("APP_ENV")) {
		log.Printf("[config] %s", warn)
	}

	db, err := sqlconnect.ConnectDB()
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := redisClient()
	if rdb != nil {
		if err := validate.PingRedis(rdb, 3*time.Second); err != nil {
			log.Fatalf("redis: %v", err)
		}
	}

	cache := storebooks.NewCache(rdb)

	chain := []utils.Middleware{
		mw.RequestID,
		mw.Recovery,
		mw.Cors,
		mw.ResponseTime,
		mw.SecurityHeaders,
		mw.BodySizeLimit,
	}
	if rdb != nil {
		tb := mw.NewRedisTokenBucket(rdb, envFloat("RATE_LIMIT_RPS", 5), envInt("RATE_LIMIT_BURST", 20), mw.PerIPKey("tb"))
		chain = append(chain, tb.Middleware)
	}

	server := &http.Server{
		Addr:         ":" + envStr("PORT", "3000"),
		Handler:      utils.ApplyMiddleware(router.Router(db, cache), chain...),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("bookly-api listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// redisClient builds the optional Redis client from REDIS_URL or the split
// REDIS_ADDR/REDIS_USER/REDIS_PASSWORD fields. nil disables cache and
// rate limiting.
func redisClient() *redis.Client {
	if url := os.Getenv("REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		return redis.NewClient(opt)
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("[config] Redis not configured; cache and rate limiting disabled")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Username:     os.Getenv("REDIS_USER"),
		Password:     os.Getenv("REDIS_PASSWORD"),
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return def
}
