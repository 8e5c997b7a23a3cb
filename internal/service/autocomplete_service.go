package service

import (
	"Craftstone/internal/api/dto"
	"Craftstone/internal/pkg/consts"
	"Craftstone/internal/pkg/es"
	"Craftstone/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

type AutocompleteService interface {
	Suggest(ctx context.Context, keyword string, limit int) (*dto.AutocompleteResponse, error)
}

type AutocompleteServiceImpl struct {
	resourceESRepo es.ResourceRepo
	tagRepo        repository.TagRepo
	profileRepo    repository.ProfileRepo
}

func NewAutocompleteService(
	resourceESRepo es.ResourceRepo,
	tagRepo repository.TagRepo,
	profileRepo repository.ProfileRepo,
) AutocompleteService {
	return &AutocompleteServiceImpl{
		resourceESRepo: resourceESRepo,
		tagRepo:        tagRepo,
		profileRepo:    profileRepo,
	}
}

// Suggest 三路补全并发执行，互不影响，各自截断到 limit
// 关键词太短时直接返回空结果，不打扰存储层
func (s *AutocompleteServiceImpl) Suggest(ctx context.Context, keyword string, limit int) (*dto.AutocompleteResponse, error) {
	result := &dto.AutocompleteResponse{
		Suggestions: dto.SuggestionGroups{
			Resources: []*dto.ResourceSuggest{},
			Tags:      []*dto.TagSuggest{},
			Creators:  []*dto.CreatorSuggest{},
		},
	}

	keyword = strings.TrimSpace(keyword)
	if utf8.RuneCountInString(keyword) < consts.SuggestMinQueryLen {
		return result, nil
	}
	if limit < 1 {
		limit = consts.SuggestDefaultLimit
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		docs, err := s.resourceESRepo.SuggestResources(gctx, keyword, limit)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			result.Suggestions.Resources = append(result.Suggestions.Resources, &dto.ResourceSuggest{
				ID:    doc.ID,
				Title: doc.Title,
				Slug:  doc.Slug,
				Type:  doc.Type,
			})
		}
		return nil
	})
	g.Go(func() error {
		tags, err := s.tagRepo.SearchByName(gctx, keyword, limit)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			result.Suggestions.Tags = append(result.Suggestions.Tags, &dto.TagSuggest{
				Name:  tag.Name,
				Count: tag.UsageCount,
			})
		}
		return nil
	})
	g.Go(func() error {
		profiles, err := s.profileRepo.SearchByUsername(gctx, keyword, limit)
		if err != nil {
			return err
		}
		for _, profile := range profiles {
			result.Suggestions.Creators = append(result.Suggestions.Creators, &dto.CreatorSuggest{
				ID:        profile.ID,
				Username:  profile.Username,
				AvatarURL: profile.AvatarURL,
				Verified:  profile.Verified,
			})
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error("补全查询失败", "keyword", keyword, "err", err)
		return nil, err
	}
	return result, nil
}
