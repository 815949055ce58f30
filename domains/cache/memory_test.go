package cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/ddekshina/ProjectProbe/domains/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryGetPut(t *testing.T) {
	m, err := NewMemory(zap.NewNop(), 4)
	require.NoError(t, err)
	ctx := context.Background()

	_, ok := m.Get(ctx, "octocat/hello")
	assert.False(t, ok)

	result := &analysis.AnalysisResult{Readme: "hi"}
	m.Put(ctx, "octocat/hello", result)

	got, ok := m.Get(ctx, "octocat/hello")
	require.True(t, ok)
	assert.Same(t, result, got)
}

func TestMemoryEvictsOldest(t *testing.T) {
	m, err := NewMemory(zap.NewNop(), 2)
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		m.Put(ctx, fmt.Sprintf("owner/repo%d", i), &analysis.AnalysisResult{})
	}

	_, ok := m.Get(ctx, "owner/repo0")
	assert.False(t, ok)
	_, ok = m.Get(ctx, "owner/repo2")
	assert.True(t, ok)
}

func TestMemoryClear(t *testing.T) {
	m, err := NewMemory(zap.NewNop(), 4)
	require.NoError(t, err)
	ctx := context.Background()

	m.Put(ctx, "a/b", &analysis.AnalysisResult{})
	require.NoError(t, m.Clear(ctx))

	_, ok := m.Get(ctx, "a/b")
	assert.False(t, ok)
}
