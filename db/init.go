// Package db owns the PostgreSQL connection pool used by the postgres cache
// backend. With the default in-memory backend the pool is never created.
package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/ddekshina/ProjectProbe/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:embed schema/*.sql
var embedSchema embed.FS

var defaultPool *pgxpool.Pool

// Init initializes the connection pool and applies the schema. It is a
// no-op unless the postgres cache backend is configured.
func Init(lc fx.Lifecycle, l *zap.Logger) error {
	if config.Cache.Backend() != "postgres" {
		l.Info("postgres backend not configured, skipping database init")
		return nil
	}

	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(config.Database.Dsn())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	defaultPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := defaultPool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			l.Info("closing database pool")
			if defaultPool != nil {
				defaultPool.Close()
			}
			return nil
		},
	})

	l.Info("database pool initialized")

	if err := ApplySchema(ctx, l); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	l.Info("database schema applied")
	return nil
}

// GetPool returns the default connection pool, nil when postgres is not
// configured.
func GetPool() *pgxpool.Pool {
	return defaultPool
}

// ApplySchema applies all SQL schema files.
func ApplySchema(ctx context.Context, l *zap.Logger) error {
	if defaultPool == nil {
		return fmt.Errorf("pool not initialized")
	}

	sqlFiles, err := getSchemaSQLFiles()
	if err != nil {
		return err
	}

	conn, err := defaultPool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	for _, filename := range sqlFiles {
		l.Info("executing schema file", zap.String("file", filename))

		content, err := embedSchema.ReadFile("schema/" + filename)
		if err != nil {
			return fmt.Errorf("failed to read schema file %s: %w", filename, err)
		}
		if _, err := conn.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute schema %s: %w", filename, err)
		}
	}

	return nil
}

// getSchemaSQLFiles returns the sorted list of embedded SQL files.
func getSchemaSQLFiles() ([]string, error) {
	fsys, err := fs.Sub(embedSchema, "schema")
	if err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}

	sort.Strings(sqlFiles)
	return sqlFiles, nil
}
