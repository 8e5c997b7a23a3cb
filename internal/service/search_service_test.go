package service

import (
	"Craftstone/internal/api/dto"
	"Craftstone/internal/model"
	"Craftstone/internal/repository"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newSearchService() (*SearchServiceImpl, *fakeResourceRepo) {
	resourceRepo := &fakeResourceRepo{}
	svc := NewSearchService(resourceRepo).(*SearchServiceImpl)
	return svc, resourceRepo
}

func TestSearchResourcesDefaults(t *testing.T) {
	svc, resourceRepo := newSearchService()

	result, err := svc.SearchResources(context.Background(), &dto.SearchRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, result.Page)
	require.Equal(t, 24, result.Limit)
	require.False(t, result.HasMore)

	require.Equal(t, 0, resourceRepo.lastSearch.Offset)
	require.Equal(t, 24, resourceRepo.lastSearch.Limit)
}

func TestSearchResourcesCompilesFilters(t *testing.T) {
	svc, resourceRepo := newSearchService()

	_, err := svc.SearchResources(context.Background(), &dto.SearchRequest{
		Query: "  medieval castle  ",
		Filters: dto.SearchFilters{
			ResourceTypes:     []string{"map", "schematic"},
			MinecraftVersions: []string{"1.20", "1.21"},
			LicenseTypes:      []string{"MIT"},
			PremiumOnly:       true,
			MinRating:         4,
			MinDownloads:      1000,
			DateRange:         &dto.DateRange{From: "2026-01-01", To: "2026-06-30"},
			VerifiedOnly:      true,
		},
		Sort:  model.SortMostDownloaded,
		Page:  3,
		Limit: 10,
	})
	require.NoError(t, err)

	q := resourceRepo.lastSearch
	require.Equal(t, "medieval castle", q.Keyword)
	require.Equal(t, []string{"map", "schematic"}, q.Types)
	require.Equal(t, []string{"1.20", "1.21"}, q.MinecraftVersions)
	require.Equal(t, []string{"MIT"}, q.Licenses)
	require.Equal(t, 4.0, q.MinRating)
	require.Equal(t, int64(1000), q.MinDownloads)
	require.True(t, q.VerifiedOnly)
	require.Equal(t, model.SortMostDownloaded, q.Sort)
	require.Equal(t, 20, q.Offset)
	require.Equal(t, 10, q.Limit)

	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), q.CreatedFrom.UTC())
	require.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), q.CreatedTo.UTC())
}

func TestSearchResourcesInvalidDate(t *testing.T) {
	svc, _ := newSearchService()

	_, err := svc.SearchResources(context.Background(), &dto.SearchRequest{
		Filters: dto.SearchFilters{
			DateRange: &dto.DateRange{From: "yesterday"},
		},
	})
	require.ErrorIs(t, err, ErrParamInvalid)
}

func TestSearchResourcesHasMore(t *testing.T) {
	svc, resourceRepo := newSearchService()
	resourceRepo.searchFn = func(q *repository.ResourceSearchQuery) ([]*model.Resource, int64, error) {
		return []*model.Resource{publicResource("res-1", "castle")}, 100, nil
	}

	result, err := svc.SearchResources(context.Background(), &dto.SearchRequest{Page: 2, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(100), result.Total)
	require.True(t, result.HasMore)

	result, err = svc.SearchResources(context.Background(), &dto.SearchRequest{Page: 10, Limit: 10})
	require.NoError(t, err)
	require.False(t, result.HasMore)
}

func TestSearchResourcesStoreErrorSurfaces(t *testing.T) {
	svc, resourceRepo := newSearchService()
	errStore := errors.New("fulltext index gone")
	resourceRepo.searchFn = func(_ *repository.ResourceSearchQuery) ([]*model.Resource, int64, error) {
		return nil, 0, errStore
	}

	_, err := svc.SearchResources(context.Background(), &dto.SearchRequest{Query: "castle"})
	require.ErrorIs(t, err, errStore)
}

func TestSearchResourcesAggregationsAndCards(t *testing.T) {
	svc, resourceRepo := newSearchService()
	resourceRepo.countByTypeFn = func() (map[string]int64, error) {
		return map[string]int64{"mod": 40, "map": 12}, nil
	}
	resourceRepo.searchFn = func(q *repository.ResourceSearchQuery) ([]*model.Resource, int64, error) {
		resource := publicResource("res-1", "castle")
		resource.Tags = []model.Tag{{ID: 1, Name: "medieval"}, {ID: 2, Name: "castle"}}
		return []*model.Resource{resource}, 1, nil
	}

	result, err := svc.SearchResources(context.Background(), &dto.SearchRequest{Query: "castle"})
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"mod": 40, "map": 12}, result.Aggregations.ResourceTypes)
	require.Equal(t, "castle", result.Query)

	require.Len(t, result.Results, 1)
	card := result.Results[0]
	require.Equal(t, "res-1", card.ID)
	require.Equal(t, "steve", card.Creator.Username)
	require.Equal(t, []string{"medieval", "castle"}, card.Tags)
	require.GreaterOrEqual(t, result.Took, int64(0))
}
