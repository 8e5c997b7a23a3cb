package service

import (
	"Craftstone/internal/api/dto"
	"Craftstone/internal/pkg/consts"
	"Craftstone/internal/pkg/redis"
	"Craftstone/internal/pkg/util"
	"Craftstone/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// typeAggsTTL 分类分布缓存时长，全量统计代价高但变化慢
const typeAggsTTL = 5 * time.Minute

type SearchService interface {
	SearchResources(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
}

type SearchServiceImpl struct {
	resourceRepo repository.ResourceRepo
}

func NewSearchService(resourceRepo repository.ResourceRepo) SearchService {
	return &SearchServiceImpl{resourceRepo: resourceRepo}
}

// SearchResources 编译过滤条件并执行搜索，命中列表与分类分布并发取
func (s *SearchServiceImpl) SearchResources(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	start := time.Now()

	page := req.Page
	if page < 1 {
		page = consts.SearchDefaultPage
	}
	limit := req.Limit
	if limit < 1 {
		limit = consts.SearchDefaultLimit
	}
	if limit > consts.SearchMaxLimit {
		limit = consts.SearchMaxLimit
	}

	query, err := s.compileQuery(req, page, limit)
	if err != nil {
		return nil, err
	}

	var (
		resources []*dto.ResourceCard
		total     int64
		typeAggs  map[string]int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, count, err := s.resourceRepo.SearchResources(gctx, query)
		if err != nil {
			return err
		}
		cards, err := toResourceCards(rows)
		if err != nil {
			return err
		}
		resources, total = cards, count
		return nil
	})
	g.Go(func() error {
		aggs, err := s.loadTypeAggs(gctx)
		if err != nil {
			return err
		}
		typeAggs = aggs
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error("搜索执行失败", "err", err)
		return nil, err
	}

	return &dto.SearchResponse{
		Results:      resources,
		Total:        total,
		Page:         page,
		Limit:        limit,
		HasMore:      int64(page*limit) < total,
		Query:        query.Keyword,
		Aggregations: dto.SearchAggregations{ResourceTypes: typeAggs},
		Took:         time.Since(start).Milliseconds(),
	}, nil
}

// compileQuery 把请求体编译成仓储层查询，时间解析失败视为参数错误
func (s *SearchServiceImpl) compileQuery(req *dto.SearchRequest, page, limit int) (*repository.ResourceSearchQuery, error) {
	// premiumOnly 不参与编译：premium 是 visibility 的取值，公开目录永远只查 public
	query := &repository.ResourceSearchQuery{
		Keyword:           strings.TrimSpace(req.Query),
		Types:             util.UniqueStrings(req.Filters.ResourceTypes),
		MinecraftVersions: util.UniqueStrings(req.Filters.MinecraftVersions),
		Licenses:          util.UniqueStrings(req.Filters.LicenseTypes),
		MinRating:         req.Filters.MinRating,
		MinDownloads:      req.Filters.MinDownloads,
		VerifiedOnly:      req.Filters.VerifiedOnly,
		Sort:              req.Sort,
		Offset:            (page - 1) * limit,
		Limit:             limit,
	}

	if req.Filters.DateRange != nil {
		from, err := parseDateBound(req.Filters.DateRange.From)
		if err != nil {
			return nil, ErrParamInvalid
		}
		to, err := parseDateBound(req.Filters.DateRange.To)
		if err != nil {
			return nil, ErrParamInvalid
		}
		query.CreatedFrom = from
		query.CreatedTo = to
	}
	return query, nil
}

// loadTypeAggs 分类分布优先走缓存，缓存故障降级为直查
func (s *SearchServiceImpl) loadTypeAggs(ctx context.Context) (map[string]int64, error) {
	if cached, err := redis.GetValue(ctx, consts.SearchTypeAggsKey); err == nil && cached != "" {
		var aggs map[string]int64
		if err := json.Unmarshal([]byte(cached), &aggs); err == nil {
			return aggs, nil
		}
	}

	aggs, err := s.resourceRepo.CountPublicByType(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(aggs); err == nil {
		if err := redis.SetWithExpiration(ctx, consts.SearchTypeAggsKey, string(raw), typeAggsTTL); err != nil {
			log.Warn("分类分布写缓存失败", "err", err)
		}
	}
	return aggs, nil
}

// parseDateBound 支持 RFC3339 和纯日期两种写法，空串表示不限
func parseDateBound(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
