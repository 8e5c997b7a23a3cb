package job

import (
	"Craftstone/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubTrendingRepo struct {
	lastCutoff time.Time
	reset      int64
}

func (s *stubTrendingRepo) IncrementCounter(_ context.Context, _ string, _ string) error {
	return nil
}

func (s *stubTrendingRepo) GetMetric(_ context.Context, _ string) (*model.TrendingMetric, error) {
	return nil, nil
}

func (s *stubTrendingRepo) ResetStale(_ context.Context, cutoff time.Time) (int64, error) {
	s.lastCutoff = cutoff
	return s.reset, nil
}

func TestTrendingDecayJobResetsStaleWindow(t *testing.T) {
	repo := &stubTrendingRepo{reset: 42}
	job := NewTrendingDecayJob(repo)

	before := time.Now().Add(-decayWindow)
	job.Run()
	after := time.Now().Add(-decayWindow)

	require.False(t, repo.lastCutoff.Before(before))
	require.False(t, repo.lastCutoff.After(after))
}
