package sqlconnect

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Pool defaults; each knob can be overridden via env.
const (
	defMaxOpenConns = 10
	defMaxIdleConns = 10
	defConnMaxIdle  = 5 * time.Minute
	defConnMaxLife  = 30 * time.Minute
)

// ConnectDB opens the Postgres pool described by DATABASE_URL and verifies it
// with a short ping.
func ConnectDB() (*sql.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(envConns("DB_MAX_OPEN_CONNS", defMaxOpenConns))
	db.SetMaxIdleConns(envConns("DB_MAX_IDLE_CONNS", defMaxIdleConns))
	db.SetConnMaxIdleTime(envDuration("DB_CONN_MAX_IDLE", defConnMaxIdle))
	db.SetConnMaxLifetime(envDuration("DB_CONN_MAX_LIFETIME", defConnMaxLife))
	return db, nil
}

func envConns(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
