package service

import (
	"Craftstone/internal/model"
	"Craftstone/internal/pkg/es"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newAutocompleteService() (*AutocompleteServiceImpl, *fakeResourceESRepo, *fakeTagRepo, *fakeProfileRepo) {
	esRepo := &fakeResourceESRepo{}
	tagRepo := &fakeTagRepo{}
	profileRepo := &fakeProfileRepo{}
	svc := NewAutocompleteService(esRepo, tagRepo, profileRepo).(*AutocompleteServiceImpl)
	return svc, esRepo, tagRepo, profileRepo
}

func TestSuggestShortKeywordReturnsEmpty(t *testing.T) {
	svc, esRepo, _, _ := newAutocompleteService()
	esRepo.docs = []*es.ResourceES{{ID: "res-1", Title: "castle"}}

	result, err := svc.Suggest(context.Background(), " c ", 8)
	require.NoError(t, err)
	require.Empty(t, result.Suggestions.Resources)
	require.Empty(t, result.Suggestions.Tags)
	require.Empty(t, result.Suggestions.Creators)
	// 存储层不应该被打扰
	require.Empty(t, esRepo.lastKeyword)
}

func TestSuggestThreeWays(t *testing.T) {
	svc, esRepo, tagRepo, profileRepo := newAutocompleteService()
	esRepo.docs = []*es.ResourceES{
		{ID: "res-1", Title: "castle blueprint", Slug: "castle-blueprint", Type: "schematic"},
	}
	tagRepo.tags = []*model.Tag{
		{ID: 7, Name: "castle", Slug: "castle", UsageCount: 120},
	}
	profileRepo.profiles = []*model.Profile{
		{ID: "creator-9", Username: "castlebuilder", Verified: true},
	}

	result, err := svc.Suggest(context.Background(), "cast", 8)
	require.NoError(t, err)

	suggestions := result.Suggestions
	require.Len(t, suggestions.Resources, 1)
	require.Equal(t, "castle blueprint", suggestions.Resources[0].Title)
	require.Equal(t, "schematic", suggestions.Resources[0].Type)

	require.Len(t, suggestions.Tags, 1)
	require.Equal(t, "castle", suggestions.Tags[0].Name)
	require.Equal(t, 120, suggestions.Tags[0].Count)

	require.Len(t, suggestions.Creators, 1)
	require.True(t, suggestions.Creators[0].Verified)
	require.Equal(t, "cast", esRepo.lastKeyword)
}

func TestSuggestCapsEachLane(t *testing.T) {
	svc, esRepo, tagRepo, _ := newAutocompleteService()
	for i := 0; i < 20; i++ {
		esRepo.docs = append(esRepo.docs, &es.ResourceES{ID: "res", Title: "castle"})
		tagRepo.tags = append(tagRepo.tags, &model.Tag{Name: "castle"})
	}

	result, err := svc.Suggest(context.Background(), "castle", 3)
	require.NoError(t, err)
	require.Len(t, result.Suggestions.Resources, 3)
	require.Len(t, result.Suggestions.Tags, 3)
}
