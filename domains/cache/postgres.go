package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ddekshina/ProjectProbe/db"
	"github.com/ddekshina/ProjectProbe/domains/analysis"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Postgres stores results as JSONB rows in the analysis_cache table. Reads
// that fail for any reason count as misses; writes are best-effort.
type Postgres struct {
	l *zap.Logger
}

func NewPostgres(l *zap.Logger) *Postgres {
	return &Postgres{l: l}
}

func (p *Postgres) Get(ctx context.Context, key string) (*analysis.AnalysisResult, bool) {
	payload, err := db.Query1(ctx, func(pool *pgxpool.Pool) ([]byte, error) {
		var payload []byte
		err := pool.QueryRow(ctx,
			`SELECT payload FROM analysis_cache WHERE key = $1`, key,
		).Scan(&payload)
		return payload, err
	})
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			p.l.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var result analysis.AnalysisResult
	if err := json.Unmarshal(payload, &result); err != nil {
		p.l.Warn("cache entry undecodable", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &result, true
}

func (p *Postgres) Put(ctx context.Context, key string, result *analysis.AnalysisResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		p.l.Warn("cache entry unencodable", zap.String("key", key), zap.Error(err))
		return
	}

	err = db.Query(ctx, func(pool *pgxpool.Pool) error {
		_, err := pool.Exec(ctx,
			`INSERT INTO analysis_cache (key, payload, created_at)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (key) DO UPDATE SET payload = $2, created_at = $3`,
			key, payload, time.Now().Unix(),
		)
		return err
	})
	if err != nil {
		p.l.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (p *Postgres) Clear(ctx context.Context) error {
	return db.Query(ctx, func(pool *pgxpool.Pool) error {
		_, err := pool.Exec(ctx, `DELETE FROM analysis_cache`)
		return err
	})
}
