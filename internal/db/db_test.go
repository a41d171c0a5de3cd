package db

import (
	"context"
	"strings"
	"testing"
	"time"

	"hepi-staff/internal/config"
)

func TestPoolConfig_Defaults(t *testing.T) {
	got, err := poolConfig(&config.Config{
		DatabaseURL: "postgres://hepi:pw@localhost:5432/hepi",
		DBMaxConns:  10,
		DBMinConns:  1,
	})
	if err != nil {
		t.Fatalf("pool config: %v", err)
	}
	if got.MaxConns != 10 || got.MinConns != 1 {
		t.Fatalf("unexpected pool size %d/%d", got.MinConns, got.MaxConns)
	}
	if got.ConnConfig.ConnectTimeout != 5*time.Second {
		t.Fatalf("unexpected connect timeout %s", got.ConnConfig.ConnectTimeout)
	}
	if got.ConnConfig.RuntimeParams["application_name"] != "hepi-staff" {
		t.Fatalf("unexpected application_name %q", got.ConnConfig.RuntimeParams["application_name"])
	}
	if got.ConnConfig.Database != "hepi" || got.ConnConfig.User != "hepi" {
		t.Fatalf("unexpected connection target %s@%s", got.ConnConfig.User, got.ConnConfig.Database)
	}
}

func TestPoolConfig_URLSettingsWin(t *testing.T) {
	got, err := poolConfig(&config.Config{
		DatabaseURL: "postgres://localhost/hepi?connect_timeout=2&application_name=worker",
		DBMaxConns:  0,
		DBMinConns:  -3,
	})
	if err != nil {
		t.Fatalf("pool config: %v", err)
	}
	if got.ConnConfig.ConnectTimeout != 2*time.Second {
		t.Fatalf("connect_timeout from the URL ignored: %s", got.ConnConfig.ConnectTimeout)
	}
	if got.ConnConfig.RuntimeParams["application_name"] != "worker" {
		t.Fatalf("application_name from the URL ignored: %q", got.ConnConfig.RuntimeParams["application_name"])
	}
	if got.MaxConns != 10 || got.MinConns != 0 {
		t.Fatalf("unexpected pool size %d/%d", got.MinConns, got.MaxConns)
	}
}

func TestPoolConfig_Errors(t *testing.T) {
	if _, err := poolConfig(&config.Config{DatabaseURL: "postgres://localhost/hepi", DBMaxConns: 2, DBMinConns: 3}); err == nil || !strings.Contains(err.Error(), "DB_MIN_CONNS") {
		t.Fatalf("expected min/max error, got %v", err)
	}
	if _, err := poolConfig(&config.Config{DatabaseURL: "postgres://localhost/%zz"}); err == nil || !strings.Contains(err.Error(), "parse DATABASE_URL") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestNewPool_FailsWithoutDatabase(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	// Puerto 1 en loopback: nadie escucha.
	pool, err := NewPool(ctx, &config.Config{DatabaseURL: "postgres://hepi@127.0.0.1:1/hepi?connect_timeout=1&sslmode=disable", DBMaxConns: 2})
	if err == nil {
		pool.Close()
		t.Fatalf("expected ping error")
	}
	if !strings.Contains(err.Error(), "ping database") {
		t.Fatalf("unexpected error %v", err)
	}
}
