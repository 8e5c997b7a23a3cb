package service

import (
	"Craftstone/internal/api/dto"
	"Craftstone/internal/model"
	"Craftstone/internal/pkg/consts"
	"Craftstone/internal/repository"
	"context"
	log "log/slog"
)

type ResourceService interface {
	GetResourceDetail(ctx context.Context, id, viewerID string) (*dto.ResourceCard, error)
	ListCreatorResources(ctx context.Context, creatorID string, page, limit int) (*dto.FeedResponse, error)
}

type ResourceServiceImpl struct {
	resourceRepo repository.ResourceRepo
}

func NewResourceService(resourceRepo repository.ResourceRepo) ResourceService {
	return &ResourceServiceImpl{resourceRepo: resourceRepo}
}

// GetResourceDetail 非公开资源只有创作者本人可见
func (s *ResourceServiceImpl) GetResourceDetail(ctx context.Context, id, viewerID string) (*dto.ResourceCard, error) {
	resource, err := s.resourceRepo.GetResource(ctx, id)
	if err != nil {
		log.Error("查询资源失败", "resource_id", id, "err", err)
		return nil, err
	}
	if resource == nil {
		return nil, ErrResourceNotFound
	}
	if resource.Visibility != model.VisibilityPublic && resource.CreatorID != viewerID {
		return nil, ErrResourceNotPublic
	}

	card, err := toResourceCard(resource)
	if err != nil {
		return nil, err
	}
	return card, nil
}

// ListCreatorResources 创作者主页的公开作品列表，page 从 0 开始
func (s *ResourceServiceImpl) ListCreatorResources(ctx context.Context, creatorID string, page, limit int) (*dto.FeedResponse, error) {
	if page < 0 {
		page = 0
	}
	if limit < 1 {
		limit = consts.FeedDefaultLimit
	}
	if limit > consts.FeedMaxLimit {
		limit = consts.FeedMaxLimit
	}

	resources, err := s.resourceRepo.ListPublicByCreators(ctx, []string{creatorID}, limit, page*limit)
	if err != nil {
		log.Error("查询创作者作品失败", "creator_id", creatorID, "err", err)
		return nil, err
	}

	items := make([]*dto.FeedItem, 0, len(resources))
	for _, resource := range resources {
		card, err := toResourceCard(resource)
		if err != nil {
			return nil, err
		}
		items = append(items, &dto.FeedItem{ResourceCard: *card})
	}
	return &dto.FeedResponse{
		Resources: items,
		FeedType:  "creator",
		Page:      page,
		Limit:     limit,
		HasMore:   len(items) == limit,
	}, nil
}
