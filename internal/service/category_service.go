package service

import (
	"Craftstone/internal/api/dto"
	"Craftstone/internal/pkg/consts"
	"Craftstone/internal/pkg/redis"
	"Craftstone/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

// categoryListTTL 分类配置缓存时长
const categoryListTTL = 10 * time.Minute

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*dto.CategoryItem, error)
	GetCategory(ctx context.Context, slug string) (*dto.CategoryItem, error)
}

type CategoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

// ListCategories 分类配置整表缓存
func (s *CategoryServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryItem, error) {
	if cached, err := redis.GetValue(ctx, consts.CategoryListKey); err == nil && cached != "" {
		var items []*dto.CategoryItem
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
	}

	categories, err := s.categoryRepo.ListEnabled(ctx)
	if err != nil {
		log.Error("查询分类配置失败", "err", err)
		return nil, err
	}

	items := make([]*dto.CategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, &dto.CategoryItem{
			Slug:        category.Slug,
			Name:        category.Name,
			Description: category.Description,
			Fields:      json.RawMessage(category.Fields),
			SortOrder:   category.SortOrder,
		})
	}

	if raw, err := json.Marshal(items); err == nil {
		if err := redis.SetWithExpiration(ctx, consts.CategoryListKey, string(raw), categoryListTTL); err != nil {
			log.Warn("分类配置写缓存失败", "err", err)
		}
	}
	return items, nil
}

func (s *CategoryServiceImpl) GetCategory(ctx context.Context, slug string) (*dto.CategoryItem, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		log.Error("查询分类失败", "slug", slug, "err", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return &dto.CategoryItem{
		Slug:        category.Slug,
		Name:        category.Name,
		Description: category.Description,
		Fields:      json.RawMessage(category.Fields),
		SortOrder:   category.SortOrder,
	}, nil
}
