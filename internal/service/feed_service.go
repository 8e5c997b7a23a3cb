package service

import (
	"Craftstone/internal/api/dto"
	"Craftstone/internal/model"
	"Craftstone/internal/pkg/consts"
	"Craftstone/internal/pkg/redis"
	"Craftstone/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

// Feed 类型
const (
	FeedForYou    = "for-you"
	FeedTrending  = "trending"
	FeedFollowing = "following"
	FeedNew       = "new"
	FeedTopRated  = "top-rated"
)

// ReasonCommunityFallback 个性化候选不足时的兜底标注
const ReasonCommunityFallback = "Popular in community"

// followCreatorsTTL 关注作者集合的缓存时长
const followCreatorsTTL = 10 * time.Minute

type FeedService interface {
	GetFeed(ctx context.Context, userID string, req *dto.FeedRequest) (*dto.FeedResponse, error)
}

type FeedServiceImpl struct {
	resourceRepo       repository.ResourceRepo
	recommendationRepo repository.RecommendationRepo
	activityRepo       repository.ActivityRepo
	followRepo         repository.FollowRepo
}

func NewFeedService(
	resourceRepo repository.ResourceRepo,
	recommendationRepo repository.RecommendationRepo,
	activityRepo repository.ActivityRepo,
	followRepo repository.FollowRepo,
) FeedService {
	return &FeedServiceImpl{
		resourceRepo:       resourceRepo,
		recommendationRepo: recommendationRepo,
		activityRepo:       activityRepo,
		followRepo:         followRepo,
	}
}

// GetFeed 组装一页 Feed，page 从 0 开始，hasMore 以整页为判据
// 未识别的类型一律按 for-you 处理
func (s *FeedServiceImpl) GetFeed(ctx context.Context, userID string, req *dto.FeedRequest) (*dto.FeedResponse, error) {
	feedType := req.Type
	page := req.Page
	if page < 0 {
		page = consts.FeedDefaultPage
	}
	limit := req.Limit
	if limit < 1 {
		limit = consts.FeedDefaultLimit
	}
	if limit > consts.FeedMaxLimit {
		limit = consts.FeedMaxLimit
	}
	offset := page * limit

	var (
		items []*dto.FeedItem
		err   error
	)
	switch feedType {
	case FeedTrending:
		items, err = s.buildTrending(ctx, limit, offset)
	case FeedFollowing:
		items, err = s.buildFollowing(ctx, userID, limit, offset)
	case FeedNew:
		items, err = s.buildNew(ctx, limit, offset)
	case FeedTopRated:
		items, err = s.buildTopRated(ctx, limit, offset)
	default:
		feedType = FeedForYou
		items, err = s.buildForYou(ctx, userID, limit, offset)
	}
	if err != nil {
		log.Error("Feed 组装失败", "type", feedType, "err", err)
		return nil, err
	}

	return &dto.FeedResponse{
		Resources: items,
		FeedType:  feedType,
		Page:      page,
		Limit:     limit,
		HasMore:   len(items) == limit,
	}, nil
}

// buildForYou 个性化流：推荐候选优先，候选为空时才整页换成热门兜底
// 短页原样返回，兜底沿用请求的 offset，翻页不会出现重复页
func (s *FeedServiceImpl) buildForYou(ctx context.Context, userID string, limit, offset int) ([]*dto.FeedItem, error) {
	dismissed, err := s.activityRepo.GetDismissedResourceIds(ctx, userID)
	if err != nil {
		return nil, err
	}

	recommendations, err := s.recommendationRepo.ListByUser(ctx, userID, dismissed, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.FeedItem, 0, limit)
	for _, rec := range recommendations {
		if rec.Resource.Visibility != model.VisibilityPublic {
			continue
		}
		card, err := toResourceCard(&rec.Resource)
		if err != nil {
			return nil, err
		}
		items = append(items, &dto.FeedItem{
			ResourceCard: *card,
			Reason:       rec.Reason,
			Score:        rec.Score,
		})
	}
	if len(items) > 0 {
		return items, nil
	}

	fill, err := s.resourceRepo.ListPublicByTrending(ctx, dismissed, limit, offset)
	if err != nil {
		return nil, err
	}
	for _, resource := range fill {
		card, err := toResourceCard(resource)
		if err != nil {
			return nil, err
		}
		items = append(items, &dto.FeedItem{
			ResourceCard: *card,
			Reason:       ReasonCommunityFallback,
		})
	}
	return items, nil
}

func (s *FeedServiceImpl) buildTrending(ctx context.Context, limit, offset int) ([]*dto.FeedItem, error) {
	resources, err := s.resourceRepo.ListTrendingWithMetrics(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.toFeedItems(resources)
}

// buildFollowing 没有关注任何创作者时返回空页，不做兜底
func (s *FeedServiceImpl) buildFollowing(ctx context.Context, userID string, limit, offset int) ([]*dto.FeedItem, error) {
	creatorIDs, err := s.loadFollowedCreators(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(creatorIDs) == 0 {
		return []*dto.FeedItem{}, nil
	}

	resources, err := s.resourceRepo.ListPublicByCreators(ctx, creatorIDs, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.toFeedItems(resources)
}

func (s *FeedServiceImpl) buildNew(ctx context.Context, limit, offset int) ([]*dto.FeedItem, error) {
	resources, err := s.resourceRepo.ListPublicNewest(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.toFeedItems(resources)
}

func (s *FeedServiceImpl) buildTopRated(ctx context.Context, limit, offset int) ([]*dto.FeedItem, error) {
	resources, err := s.resourceRepo.ListTopRated(ctx, consts.TopRatedMinRatingCount, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.toFeedItems(resources)
}

// loadFollowedCreators 关注作者集合优先走缓存，关注变更时由 FollowService 失效
func (s *FeedServiceImpl) loadFollowedCreators(ctx context.Context, userID string) ([]string, error) {
	key := consts.FollowCreatorsKey + userID
	if cached, err := redis.GetValue(ctx, key); err == nil && cached != "" {
		var ids []string
		if err := json.Unmarshal([]byte(cached), &ids); err == nil {
			return ids, nil
		}
	}

	ids, err := s.followRepo.GetFollowedCreatorIds(ctx, userID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(ids); err == nil {
		if err := redis.SetWithExpiration(ctx, key, string(raw), followCreatorsTTL); err != nil {
			log.Warn("关注集合写缓存失败", "err", err)
		}
	}
	return ids, nil
}

func (s *FeedServiceImpl) toFeedItems(resources []*model.Resource) ([]*dto.FeedItem, error) {
	items := make([]*dto.FeedItem, 0, len(resources))
	for _, resource := range resources {
		card, err := toResourceCard(resource)
		if err != nil {
			return nil, err
		}
		items = append(items, &dto.FeedItem{ResourceCard: *card})
	}
	return items, nil
}
