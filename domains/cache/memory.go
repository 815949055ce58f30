// Package cache provides the analysis result cache backends: a bounded
// in-memory LRU (the default) and a PostgreSQL table for deployments that
// want results to survive restarts.
package cache

import (
	"context"

	"github.com/ddekshina/ProjectProbe/domains/analysis"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Memory is a bounded in-process LRU cache.
type Memory struct {
	entries *lru.Cache[string, *analysis.AnalysisResult]
	l       *zap.Logger
}

func NewMemory(l *zap.Logger, size int) (*Memory, error) {
	entries, err := lru.New[string, *analysis.AnalysisResult](size)
	if err != nil {
		return nil, err
	}
	return &Memory{entries: entries, l: l}, nil
}

func (m *Memory) Get(ctx context.Context, key string) (*analysis.AnalysisResult, bool) {
	return m.entries.Get(key)
}

func (m *Memory) Put(ctx context.Context, key string, result *analysis.AnalysisResult) {
	m.entries.Add(key, result)
}

func (m *Memory) Clear(ctx context.Context) error {
	m.entries.Purge()
	return nil
}
