package service

import (
	"Craftstone/internal/model"
	"Craftstone/internal/pkg/es"
	redispkg "Craftstone/internal/pkg/redis"
	"Craftstone/internal/repository"
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// 测试里缓存层不可达，命中路径全部降级为直查
func init() {
	redispkg.Rdb = goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

type fakeResourceRepo struct {
	lastSearch *repository.ResourceSearchQuery

	searchFn           func(q *repository.ResourceSearchQuery) ([]*model.Resource, int64, error)
	countByTypeFn      func() (map[string]int64, error)
	getFn              func(id string) (*model.Resource, error)
	listByTrendingFn   func(excludeIDs []string, limit, offset int) ([]*model.Resource, error)
	listWithMetricsFn  func(limit, offset int) ([]*model.Resource, error)
	listByCreatorsFn   func(creatorIDs []string, limit, offset int) ([]*model.Resource, error)
	listNewestFn       func(limit, offset int) ([]*model.Resource, error)
	listTopRatedFn     func(minRatingCount, limit, offset int) ([]*model.Resource, error)
	incrementedColumns []string
}

func (f *fakeResourceRepo) SearchResources(_ context.Context, q *repository.ResourceSearchQuery) ([]*model.Resource, int64, error) {
	f.lastSearch = q
	if f.searchFn != nil {
		return f.searchFn(q)
	}
	return nil, 0, nil
}

func (f *fakeResourceRepo) CountPublicByType(_ context.Context) (map[string]int64, error) {
	if f.countByTypeFn != nil {
		return f.countByTypeFn()
	}
	return map[string]int64{}, nil
}

func (f *fakeResourceRepo) GetResource(_ context.Context, id string) (*model.Resource, error) {
	if f.getFn != nil {
		return f.getFn(id)
	}
	return nil, nil
}

func (f *fakeResourceRepo) ListPublicByTrending(_ context.Context, excludeIDs []string, limit, offset int) ([]*model.Resource, error) {
	if f.listByTrendingFn != nil {
		return f.listByTrendingFn(excludeIDs, limit, offset)
	}
	return nil, nil
}

func (f *fakeResourceRepo) ListTrendingWithMetrics(_ context.Context, limit, offset int) ([]*model.Resource, error) {
	if f.listWithMetricsFn != nil {
		return f.listWithMetricsFn(limit, offset)
	}
	return nil, nil
}

func (f *fakeResourceRepo) ListPublicByCreators(_ context.Context, creatorIDs []string, limit, offset int) ([]*model.Resource, error) {
	if f.listByCreatorsFn != nil {
		return f.listByCreatorsFn(creatorIDs, limit, offset)
	}
	return nil, nil
}

func (f *fakeResourceRepo) ListPublicNewest(_ context.Context, limit, offset int) ([]*model.Resource, error) {
	if f.listNewestFn != nil {
		return f.listNewestFn(limit, offset)
	}
	return nil, nil
}

func (f *fakeResourceRepo) ListTopRated(_ context.Context, minRatingCount, limit, offset int) ([]*model.Resource, error) {
	if f.listTopRatedFn != nil {
		return f.listTopRatedFn(minRatingCount, limit, offset)
	}
	return nil, nil
}

func (f *fakeResourceRepo) IncrementTotal(_ context.Context, _ string, column string) error {
	f.incrementedColumns = append(f.incrementedColumns, column)
	return nil
}

type fakeTrendingRepo struct {
	increments []string
	metric     *model.TrendingMetric
	resetCount int64
	lastCutoff time.Time
}

func (f *fakeTrendingRepo) IncrementCounter(_ context.Context, _ string, action string) error {
	f.increments = append(f.increments, action)
	return nil
}

func (f *fakeTrendingRepo) GetMetric(_ context.Context, _ string) (*model.TrendingMetric, error) {
	return f.metric, nil
}

func (f *fakeTrendingRepo) ResetStale(_ context.Context, cutoff time.Time) (int64, error) {
	f.lastCutoff = cutoff
	return f.resetCount, nil
}

type fakeActivityRepo struct {
	events     []*model.ActivityEvent
	dismissed  []*model.DismissedResource
	dismissIds []string
}

func (f *fakeActivityRepo) CreateEvent(_ context.Context, event *model.ActivityEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeActivityRepo) CreateDismissed(_ context.Context, dismissed *model.DismissedResource) error {
	f.dismissed = append(f.dismissed, dismissed)
	return nil
}

func (f *fakeActivityRepo) GetDismissedResourceIds(_ context.Context, _ string) ([]string, error) {
	return f.dismissIds, nil
}

type fakeRecommendationRepo struct {
	recommendations []*model.Recommendation
	lastExclude     []string
}

func (f *fakeRecommendationRepo) ListByUser(_ context.Context, _ string, excludeIDs []string, limit, offset int) ([]*model.Recommendation, error) {
	f.lastExclude = excludeIDs
	end := offset + limit
	if offset >= len(f.recommendations) {
		return nil, nil
	}
	if end > len(f.recommendations) {
		end = len(f.recommendations)
	}
	return f.recommendations[offset:end], nil
}

type fakeFollowRepo struct {
	follows       []*model.Follow
	creatorIds    []string
	created       bool
	deleted       bool
	deleteMissing bool
}

func (f *fakeFollowRepo) CreateFollow(_ context.Context, follow *model.Follow) (bool, error) {
	if f.created {
		return false, nil
	}
	f.follows = append(f.follows, follow)
	f.created = true
	return true, nil
}

func (f *fakeFollowRepo) DeleteFollow(_ context.Context, _, _, _ string) (bool, error) {
	if f.deleteMissing {
		return false, nil
	}
	f.deleted = true
	return true, nil
}

func (f *fakeFollowRepo) ListByUser(_ context.Context, _, _ string, limit, offset int) ([]*model.Follow, error) {
	end := offset + limit
	if offset >= len(f.follows) {
		return nil, nil
	}
	if end > len(f.follows) {
		end = len(f.follows)
	}
	return f.follows[offset:end], nil
}

func (f *fakeFollowRepo) GetFollowedCreatorIds(_ context.Context, _ string) ([]string, error) {
	return f.creatorIds, nil
}

type fakeTagRepo struct {
	tags []*model.Tag
}

func (f *fakeTagRepo) SearchByName(_ context.Context, _ string, limit int) ([]*model.Tag, error) {
	if len(f.tags) > limit {
		return f.tags[:limit], nil
	}
	return f.tags, nil
}

type fakeProfileRepo struct {
	profiles []*model.Profile
}

func (f *fakeProfileRepo) SearchByUsername(_ context.Context, _ string, limit int) ([]*model.Profile, error) {
	if len(f.profiles) > limit {
		return f.profiles[:limit], nil
	}
	return f.profiles, nil
}

type fakeCategoryRepo struct {
	categories []*model.Category
}

func (f *fakeCategoryRepo) ListEnabled(_ context.Context) ([]*model.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*model.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

type fakeResourceESRepo struct {
	docs        []*es.ResourceES
	lastKeyword string
}

func (f *fakeResourceESRepo) SuggestResources(_ context.Context, keyword string, size int) ([]*es.ResourceES, error) {
	f.lastKeyword = keyword
	if len(f.docs) > size {
		return f.docs[:size], nil
	}
	return f.docs, nil
}

func (f *fakeResourceESRepo) IndexResource(_ context.Context, _ *es.ResourceES, _ int64) error {
	return nil
}

func (f *fakeResourceESRepo) DeleteResource(_ context.Context, _ string) error {
	return nil
}

// publicResource 构造一条可直接出现在列表里的公开资源
func publicResource(id, title string) *model.Resource {
	return &model.Resource{
		ID:         id,
		Title:      title,
		Slug:       title,
		Type:       "mod",
		Visibility: model.VisibilityPublic,
		CreatorID:  "creator-1",
		Creator: model.Profile{
			ID:       "creator-1",
			Username: "steve",
		},
	}
}
