package service

import (
	"Craftstone/internal/api/dto"
	"Craftstone/internal/model"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFeedService() (*FeedServiceImpl, *fakeResourceRepo, *fakeRecommendationRepo, *fakeActivityRepo, *fakeFollowRepo) {
	resourceRepo := &fakeResourceRepo{}
	recommendationRepo := &fakeRecommendationRepo{}
	activityRepo := &fakeActivityRepo{}
	followRepo := &fakeFollowRepo{}
	svc := NewFeedService(resourceRepo, recommendationRepo, activityRepo, followRepo).(*FeedServiceImpl)
	return svc, resourceRepo, recommendationRepo, activityRepo, followRepo
}

func manyResources(n int) []*model.Resource {
	resources := make([]*model.Resource, 0, n)
	for i := 0; i < n; i++ {
		resources = append(resources, publicResource(fmt.Sprintf("res-%d", i), fmt.Sprintf("build %d", i)))
	}
	return resources
}

func TestGetFeedUnknownTypeFallsBackToForYou(t *testing.T) {
	svc, resourceRepo, _, _, _ := newFeedService()
	resourceRepo.listByTrendingFn = func(_ []string, limit, _ int) ([]*model.Resource, error) {
		return manyResources(limit), nil
	}

	result, err := svc.GetFeed(context.Background(), "user-1", &dto.FeedRequest{Type: "random"})
	require.NoError(t, err)
	require.Equal(t, FeedForYou, result.FeedType)
	require.Len(t, result.Resources, 20)
}

func TestGetFeedDefaultsToForYou(t *testing.T) {
	svc, resourceRepo, _, _, _ := newFeedService()
	// 没有推荐候选，整页由热门兜底填满
	resourceRepo.listByTrendingFn = func(_ []string, limit, _ int) ([]*model.Resource, error) {
		return manyResources(limit), nil
	}

	result, err := svc.GetFeed(context.Background(), "user-1", &dto.FeedRequest{})
	require.NoError(t, err)
	require.Equal(t, FeedForYou, result.FeedType)
	require.Equal(t, 0, result.Page)
	require.Equal(t, 20, result.Limit)
	require.Len(t, result.Resources, 20)
	require.True(t, result.HasMore)
	for _, item := range result.Resources {
		require.Equal(t, ReasonCommunityFallback, item.Reason)
	}
}

func TestGetFeedForYouShortPageStaysShort(t *testing.T) {
	svc, resourceRepo, recommendationRepo, activityRepo, _ := newFeedService()
	activityRepo.dismissIds = []string{"res-dismissed"}

	recommendationRepo.recommendations = []*model.Recommendation{
		{
			UserID:     "user-1",
			ResourceID: "res-a",
			Score:      0.9,
			Reason:     "Because you liked redstone builds",
			Resource:   *publicResource("res-a", "piston door"),
		},
	}
	fallbackCalled := false
	resourceRepo.listByTrendingFn = func(_ []string, _, _ int) ([]*model.Resource, error) {
		fallbackCalled = true
		return nil, nil
	}

	result, err := svc.GetFeed(context.Background(), "user-1", &dto.FeedRequest{Type: FeedForYou, Limit: 5})
	require.NoError(t, err)

	// 候选不空就原样返回短页，不用热门凑满
	require.Len(t, result.Resources, 1)
	require.False(t, result.HasMore)
	require.False(t, fallbackCalled)

	require.Equal(t, "res-a", result.Resources[0].ID)
	require.Equal(t, "Because you liked redstone builds", result.Resources[0].Reason)
	require.InDelta(t, 0.9, result.Resources[0].Score, 1e-9)

	require.Equal(t, []string{"res-dismissed"}, recommendationRepo.lastExclude)
}

func TestGetFeedForYouFallbackPaginates(t *testing.T) {
	svc, resourceRepo, _, activityRepo, _ := newFeedService()
	activityRepo.dismissIds = []string{"res-dismissed"}

	catalog := manyResources(40)
	var offsets []int
	resourceRepo.listByTrendingFn = func(excludeIDs []string, limit, offset int) ([]*model.Resource, error) {
		require.Equal(t, []string{"res-dismissed"}, excludeIDs)
		offsets = append(offsets, offset)
		return catalog[offset : offset+limit], nil
	}

	page0, err := svc.GetFeed(context.Background(), "user-1", &dto.FeedRequest{Type: FeedForYou, Page: 0})
	require.NoError(t, err)
	page1, err := svc.GetFeed(context.Background(), "user-1", &dto.FeedRequest{Type: FeedForYou, Page: 1})
	require.NoError(t, err)

	// 兜底沿用请求的 offset，第二页不能是第一页的复读
	require.Equal(t, []int{0, 20}, offsets)
	require.Equal(t, "res-0", page0.Resources[0].ID)
	require.Equal(t, "res-20", page1.Resources[0].ID)
	for _, item := range page1.Resources {
		require.Equal(t, ReasonCommunityFallback, item.Reason)
	}
}

func TestGetFeedForYouSkipsNonPublicRecommendation(t *testing.T) {
	svc, resourceRepo, recommendationRepo, _, _ := newFeedService()

	private := publicResource("res-private", "secret base")
	private.Visibility = model.VisibilityPrivate
	recommendationRepo.recommendations = []*model.Recommendation{
		{ResourceID: "res-private", Resource: *private},
		{ResourceID: "res-b", Resource: *publicResource("res-b", "village")},
	}
	resourceRepo.listByTrendingFn = func(_ []string, limit, _ int) ([]*model.Resource, error) {
		return nil, nil
	}

	result, err := svc.GetFeed(context.Background(), "user-1", &dto.FeedRequest{Type: FeedForYou, Limit: 5})
	require.NoError(t, err)
	require.Len(t, result.Resources, 1)
	require.Equal(t, "res-b", result.Resources[0].ID)
	require.False(t, result.HasMore)
}

func TestGetFeedTrendingUsesMetricOrder(t *testing.T) {
	svc, resourceRepo, _, _, _ := newFeedService()
	resourceRepo.listWithMetricsFn = func(limit, offset int) ([]*model.Resource, error) {
		require.Equal(t, 20, limit)
		require.Equal(t, 40, offset)
		first := publicResource("res-hot", "hot build")
		first.TrendingScore = 99.5
		return []*model.Resource{first}, nil
	}

	result, err := svc.GetFeed(context.Background(), "user-1", &dto.FeedRequest{Type: FeedTrending, Page: 2})
	require.NoError(t, err)
	require.Len(t, result.Resources, 1)
	require.Equal(t, "res-hot", result.Resources[0].ID)
	require.InDelta(t, 99.5, result.Resources[0].TrendingScore, 1e-9)
	require.False(t, result.HasMore)
}

func TestGetFeedFollowingEmptyWithoutFollows(t *testing.T) {
	svc, _, _, _, followRepo := newFeedService()
	followRepo.creatorIds = nil

	result, err := svc.GetFeed(context.Background(), "user-1", &dto.FeedRequest{Type: FeedFollowing})
	require.NoError(t, err)
	require.Empty(t, result.Resources)
	require.False(t, result.HasMore)
}

func TestGetFeedFollowingUsesCreatorSet(t *testing.T) {
	svc, resourceRepo, _, _, followRepo := newFeedService()
	followRepo.creatorIds = []string{"creator-1", "creator-2"}
	resourceRepo.listByCreatorsFn = func(creatorIDs []string, limit, offset int) ([]*model.Resource, error) {
		require.Equal(t, []string{"creator-1", "creator-2"}, creatorIDs)
		require.Equal(t, 10, limit)
		require.Equal(t, 20, offset)
		return manyResources(3), nil
	}

	result, err := svc.GetFeed(context.Background(), "user-1", &dto.FeedRequest{Type: FeedFollowing, Page: 2, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Resources, 3)
	require.False(t, result.HasMore)
}

func TestGetFeedTopRatedAppliesRatingFloor(t *testing.T) {
	svc, resourceRepo, _, _, _ := newFeedService()
	resourceRepo.listTopRatedFn = func(minRatingCount, limit, _ int) ([]*model.Resource, error) {
		require.Equal(t, 5, minRatingCount)
		return manyResources(limit), nil
	}

	result, err := svc.GetFeed(context.Background(), "user-1", &dto.FeedRequest{Type: FeedTopRated, Limit: 4})
	require.NoError(t, err)
	require.Len(t, result.Resources, 4)
	require.True(t, result.HasMore)
}

func TestGetFeedClampsLimit(t *testing.T) {
	svc, resourceRepo, _, _, _ := newFeedService()
	resourceRepo.listNewestFn = func(limit, offset int) ([]*model.Resource, error) {
		require.Equal(t, 50, limit)
		require.Equal(t, 0, offset)
		return nil, nil
	}

	result, err := svc.GetFeed(context.Background(), "user-1", &dto.FeedRequest{Type: FeedNew, Limit: 500})
	require.NoError(t, err)
	require.Equal(t, 50, result.Limit)
}

func TestGetFeedStoreErrorSurfaces(t *testing.T) {
	svc, resourceRepo, _, _, _ := newFeedService()
	errStore := errors.New("connection refused")
	resourceRepo.listNewestFn = func(_, _ int) ([]*model.Resource, error) {
		return nil, errStore
	}

	_, err := svc.GetFeed(context.Background(), "user-1", &dto.FeedRequest{Type: FeedNew})
	require.ErrorIs(t, err, errStore)
}
