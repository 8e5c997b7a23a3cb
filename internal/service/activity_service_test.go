package service

import (
	"Craftstone/internal/api/dto"
	"Craftstone/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newActivityService() (*ActivityServiceImpl, *fakeActivityRepo, *fakeTrendingRepo, *fakeResourceRepo) {
	activityRepo := &fakeActivityRepo{}
	trendingRepo := &fakeTrendingRepo{}
	resourceRepo := &fakeResourceRepo{
		getFn: func(id string) (*model.Resource, error) {
			if id == "res-1" {
				return publicResource("res-1", "castle"), nil
			}
			return nil, nil
		},
	}
	svc := NewActivityService(activityRepo, trendingRepo, resourceRepo).(*ActivityServiceImpl)
	return svc, activityRepo, trendingRepo, resourceRepo
}

func TestTrackActivityInvalidAction(t *testing.T) {
	svc, _, _, _ := newActivityService()

	_, err := svc.TrackActivity(context.Background(), "user-1", &dto.TrackActivityRequest{
		ResourceID: "res-1",
		ActionType: "teleport",
	})
	require.ErrorIs(t, err, ErrActionTypeInvalid)
}

func TestTrackActivityResourceNotFound(t *testing.T) {
	svc, _, _, _ := newActivityService()

	_, err := svc.TrackActivity(context.Background(), "user-1", &dto.TrackActivityRequest{
		ResourceID: "res-missing",
		ActionType: model.ActionView,
	})
	require.ErrorIs(t, err, ErrResourceNotFound)
}

func TestTrackActivityViewRollsTrendingAndTotals(t *testing.T) {
	svc, activityRepo, trendingRepo, resourceRepo := newActivityService()
	trendingRepo.metric = &model.TrendingMetric{
		ResourceID:    "res-1",
		Views24h:      10,
		Downloads24h:  5,
		Likes24h:      2,
		Comments24h:   1,
		TrendingScore: 10*model.TrendingWeightView + 5*model.TrendingWeightDownload + 2*model.TrendingWeightLike + 1*model.TrendingWeightComment,
	}

	result, err := svc.TrackActivity(context.Background(), "user-1", &dto.TrackActivityRequest{
		ResourceID: "res-1",
		ActionType: model.ActionView,
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.InDelta(t, 17.0, result.TrendingScore, 1e-9)

	require.Len(t, activityRepo.events, 1)
	require.Equal(t, model.ActionView, activityRepo.events[0].ActionType)
	require.Equal(t, 1.0, activityRepo.events[0].Weight)

	require.Equal(t, []string{model.ActionView}, trendingRepo.increments)
	require.Equal(t, []string{"total_views"}, resourceRepo.incrementedColumns)
}

func TestTrackActivityRateLeavesTrendingAlone(t *testing.T) {
	svc, activityRepo, trendingRepo, resourceRepo := newActivityService()

	result, err := svc.TrackActivity(context.Background(), "user-1", &dto.TrackActivityRequest{
		ResourceID: "res-1",
		ActionType: model.ActionRate,
		Weight:     4.5,
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Zero(t, result.TrendingScore)

	require.Len(t, activityRepo.events, 1)
	require.Equal(t, 4.5, activityRepo.events[0].Weight)
	require.Empty(t, trendingRepo.increments)
	require.Empty(t, resourceRepo.incrementedColumns)
}

func TestTrackActivityDismissRecordsExclusion(t *testing.T) {
	svc, activityRepo, trendingRepo, _ := newActivityService()

	_, err := svc.TrackActivity(context.Background(), "user-1", &dto.TrackActivityRequest{
		ResourceID: "res-1",
		ActionType: model.ActionDismiss,
	})
	require.NoError(t, err)

	require.Len(t, activityRepo.events, 1)
	require.Len(t, activityRepo.dismissed, 1)
	require.Equal(t, "user-1", activityRepo.dismissed[0].UserID)
	require.Equal(t, "res-1", activityRepo.dismissed[0].ResourceID)
	require.Empty(t, trendingRepo.increments)
}

func TestTrendingScoreFormula(t *testing.T) {
	metric := &model.TrendingMetric{
		Views24h:     100,
		Downloads24h: 20,
		Likes24h:     10,
		Comments24h:  4,
	}
	// 100*0.3 + 20*2.0 + 10*1.5 + 4*1.0
	require.InDelta(t, 89.0, metric.Score(), 1e-9)
}
