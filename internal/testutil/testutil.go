// Package testutil provides test helpers for carmodpicker integration tests.
// Database and Redis backed tests skip themselves when the backing service
// is not reachable, so the unit suite stays runnable everywhere.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/WebbPulse/carmodpicker/internal/migrate"
)

// TestDBConfig holds connection settings for the test database.
type TestDBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// DefaultTestDBConfig reads the test database settings from the
// environment, falling back to the local docker-compose defaults.
func DefaultTestDBConfig() TestDBConfig {
	return TestDBConfig{
		Host:     getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:     getEnvOrDefault("TEST_DB_PORT", "55432"),
		User:     getEnvOrDefault("TEST_DB_USER", "carmodpicker"),
		Password: getEnvOrDefault("TEST_DB_PASSWORD", "carmodpicker"),
		DBName:   getEnvOrDefault("TEST_DB_NAME", "carmodpicker"),
	}
}

// SetupTestDB opens the test database, runs the production migrations,
// and truncates all tables. Skips the test when Postgres is unreachable.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := DefaultTestDBConfig()
	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		cfg.User, cfg.Password, hostPort, cfg.DBName)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatal("open test database:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		closeQuietly(t, db)
		t.Skipf("test database not available at %s: %v", hostPort, pingErr)
	}

	if migrateErr := migrate.Run(ctx, db); migrateErr != nil {
		closeQuietly(t, db)
		t.Fatal("run migrations:", migrateErr)
	}

	CleanupTestDB(t, db)
	t.Cleanup(func() { closeQuietly(t, db) })
	return db
}

// CleanupTestDB removes all rows from application tables. The cascade
// from users covers cars, build lists, and parts.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, `TRUNCATE users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatal("cleanup test database:", err)
	}
}

// SetupTestRedis creates a Redis client for testing, isolated on a
// non-default DB index. Skips the test when Redis is unreachable.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := getEnvOrDefault("TEST_REDIS_ADDR", "localhost:6379")
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   9,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		closeQuietly(t, client)
		t.Skipf("redis not available at %s: %v", addr, err)
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		closeQuietly(t, client)
		t.Fatal("flush test redis db:", err)
	}

	t.Cleanup(func() { closeQuietly(t, client) })
	return client
}

type closer interface{ Close() error }

func closeQuietly(t *testing.T, c closer) {
	t.Helper()
	if err := c.Close(); err != nil {
		t.Logf("warning: close failed: %v", err)
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
