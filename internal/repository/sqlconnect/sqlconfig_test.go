package sqlconnect

import (
	"testing"
	"time"
)

func TestConnectDB_MissingDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := ConnectDB(); err == nil {
		t.Fatal("expected error when DATABASE_URL is unset")
	}
}

func TestEnvConns(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	if got := envConns("DB_MAX_OPEN_CONNS", 10); got != 25 {
		t.Errorf("got %d, want 25", got)
	}

	t.Setenv("DB_MAX_OPEN_CONNS", "zero")
	if got := envConns("DB_MAX_OPEN_CONNS", 10); got != 10 {
		t.Errorf("bad value should fall back to default, got %d", got)
	}

	t.Setenv("DB_MAX_OPEN_CONNS", "-1")
	if got := envConns("DB_MAX_OPEN_CONNS", 10); got != 10 {
		t.Errorf("non-positive value should fall back to default, got %d", got)
	}
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("DB_CONN_MAX_IDLE", "90s")
	if got := envDuration("DB_CONN_MAX_IDLE", time.Minute); got != 90*time.Second {
		t.Errorf("got %v, want 90s", got)
	}

	t.Setenv("DB_CONN_MAX_IDLE", "soon")
	if got := envDuration("DB_CONN_MAX_IDLE", time.Minute); got != time.Minute {
		t.Errorf("bad value should fall back to default, got %v", got)
	}
}
