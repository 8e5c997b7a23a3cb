package repository

import (
	"Craftstone/internal/model"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ResourceSearchQuery 一次搜索请求编译出的查询条件
type ResourceSearchQuery struct {
	Keyword           string
	Types             []string
	MinecraftVersions []string
	Licenses          []string
	MinRating         float64
	MinDownloads      int64
	CreatedFrom       *time.Time
	CreatedTo         *time.Time
	VerifiedOnly      bool
	Sort              string
	Offset            int
	Limit             int
}

// sortColumns 排序方式到列的映射，未知值回落到热度
var sortColumns = map[string]string{
	model.SortTrending:        "resources.trending_score DESC",
	model.SortMostDownloaded:  "resources.total_downloads DESC",
	model.SortHighestRated:    "resources.average_rating DESC",
	model.SortNewest:          "resources.created_at DESC",
	model.SortRecentlyUpdated: "resources.updated_at DESC",
}

type ResourceRepo interface {
	SearchResources(ctx context.Context, query *ResourceSearchQuery) ([]*model.Resource, int64, error)
	CountPublicByType(ctx context.Context) (map[string]int64, error)
	GetResource(ctx context.Context, id string) (*model.Resource, error)
	ListPublicByTrending(ctx context.Context, excludeIDs []string, limit, offset int) ([]*model.Resource, error)
	ListTrendingWithMetrics(ctx context.Context, limit, offset int) ([]*model.Resource, error)
	ListPublicByCreators(ctx context.Context, creatorIDs []string, limit, offset int) ([]*model.Resource, error)
	ListPublicNewest(ctx context.Context, limit, offset int) ([]*model.Resource, error)
	ListTopRated(ctx context.Context, minRatingCount int, limit, offset int) ([]*model.Resource, error)
	IncrementTotal(ctx context.Context, id string, column string) error
}

type ResourceRepoImpl struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepo {
	return &ResourceRepoImpl{db: db}
}

// SearchResources 搜索主查询：先精确计数，再取当前页
// 任何条件组合都不会越过 visibility = public
func (s *ResourceRepoImpl) SearchResources(ctx context.Context, query *ResourceSearchQuery) ([]*model.Resource, int64, error) {
	tx := s.db.WithContext(ctx).
		Model(&model.Resource{}).
		Where("resources.visibility = ?", model.VisibilityPublic)

	if query.Keyword != "" {
		// 全文检索 OR 标题子串，不做额外的相关度打分
		pattern := "%" + strings.ToLower(query.Keyword) + "%"
		tx = tx.Where("(MATCH(resources.title, resources.description) AGAINST (?) OR LOWER(resources.title) LIKE ?)",
			query.Keyword, pattern)
	}

	if len(query.Types) > 0 {
		tx = tx.Where("resources.type IN ?", query.Types)
	}
	if len(query.MinecraftVersions) > 0 {
		tx = tx.Where("resources.minecraft_version IN ?", query.MinecraftVersions)
	}
	if len(query.Licenses) > 0 {
		tx = tx.Where("resources.license IN ?", query.Licenses)
	}
	if query.MinRating > 0 {
		tx = tx.Where("resources.average_rating >= ?", query.MinRating)
	}
	if query.MinDownloads > 0 {
		tx = tx.Where("resources.total_downloads >= ?", query.MinDownloads)
	}
	if query.CreatedFrom != nil {
		tx = tx.Where("resources.created_at >= ?", *query.CreatedFrom)
	}
	if query.CreatedTo != nil {
		tx = tx.Where("resources.created_at <= ?", *query.CreatedTo)
	}
	if query.VerifiedOnly {
		tx = tx.Joins("JOIN profiles ON profiles.id = resources.creator_id").
			Where("profiles.verified = ?", true)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := sortColumns[query.Sort]
	if !ok {
		order = sortColumns[model.SortTrending]
	}

	var resources []*model.Resource
	err := tx.Order(order).
		Limit(query.Limit).
		Offset(query.Offset).
		Preload("Creator").
		Preload("Tags").
		Find(&resources).Error
	if err != nil {
		return nil, 0, err
	}

	return resources, total, nil
}

// CountPublicByType 全量公开资源的分类分布，与当前过滤条件无关
func (s *ResourceRepoImpl) CountPublicByType(ctx context.Context) (map[string]int64, error) {
	type typeCount struct {
		Type  string
		Count int64
	}

	var rows []typeCount
	err := s.db.WithContext(ctx).
		Model(&model.Resource{}).
		Select("type, COUNT(*) AS count").
		Where("visibility = ?", model.VisibilityPublic).
		Group("type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}

func (s *ResourceRepoImpl) GetResource(ctx context.Context, id string) (*model.Resource, error) {
	var resource model.Resource
	err := s.db.WithContext(ctx).
		Preload("Creator").
		Preload("Tags").
		First(&resource, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resource, nil
}

// ListPublicByTrending for-you 的兜底：公开资源按热度倒序，排除不感兴趣的
func (s *ResourceRepoImpl) ListPublicByTrending(ctx context.Context, excludeIDs []string, limit, offset int) ([]*model.Resource, error) {
	tx := s.db.WithContext(ctx).
		Where("visibility = ?", model.VisibilityPublic)

	if len(excludeIDs) > 0 {
		tx = tx.Where("id NOT IN ?", excludeIDs)
	}

	var resources []*model.Resource
	err := tx.Order("trending_score DESC").
		Limit(limit).
		Offset(offset).
		Preload("Creator").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// ListTrendingWithMetrics trending Feed：以指标表的分数为准
func (s *ResourceRepoImpl) ListTrendingWithMetrics(ctx context.Context, limit, offset int) ([]*model.Resource, error) {
	var resources []*model.Resource
	err := s.db.WithContext(ctx).
		Model(&model.Resource{}).
		Select("resources.*, trending_metrics.trending_score AS trending_score").
		Joins("JOIN trending_metrics ON trending_metrics.resource_id = resources.id").
		Where("resources.visibility = ?", model.VisibilityPublic).
		Order("trending_metrics.trending_score DESC").
		Limit(limit).
		Offset(offset).
		Preload("Creator").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

func (s *ResourceRepoImpl) ListPublicByCreators(ctx context.Context, creatorIDs []string, limit, offset int) ([]*model.Resource, error) {
	var resources []*model.Resource
	err := s.db.WithContext(ctx).
		Where("creator_id IN ?", creatorIDs).
		Where("visibility = ?", model.VisibilityPublic).
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Creator").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

func (s *ResourceRepoImpl) ListPublicNewest(ctx context.Context, limit, offset int) ([]*model.Resource, error) {
	var resources []*model.Resource
	err := s.db.WithContext(ctx).
		Where("visibility = ?", model.VisibilityPublic).
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Creator").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// ListTopRated 评分样本不足 minRatingCount 的资源不参与排序
func (s *ResourceRepoImpl) ListTopRated(ctx context.Context, minRatingCount int, limit, offset int) ([]*model.Resource, error) {
	var resources []*model.Resource
	err := s.db.WithContext(ctx).
		Where("visibility = ?", model.VisibilityPublic).
		Where("rating_count >= ?", minRatingCount).
		Order("average_rating DESC").
		Limit(limit).
		Offset(offset).
		Preload("Creator").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// totalColumns 可累加的总量列白名单
var totalColumns = map[string]struct{}{
	"total_views":     {},
	"total_downloads": {},
}

// IncrementTotal 累加资源总量列，数据库侧原子自增
func (s *ResourceRepoImpl) IncrementTotal(ctx context.Context, id string, column string) error {
	if _, ok := totalColumns[column]; !ok {
		return errors.New("column not allowed: " + column)
	}
	return s.db.WithContext(ctx).
		Model(&model.Resource{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}
