package service

import (
	"Craftstone/internal/api/dto"
	"Craftstone/internal/model"
	"Craftstone/internal/pkg/consts"
	"Craftstone/internal/pkg/redis"
	"Craftstone/internal/repository"
	"context"
	log "log/slog"
)

var validFollowTargets = map[string]struct{}{
	model.FollowTargetCreator:  {},
	model.FollowTargetResource: {},
	model.FollowTargetTag:      {},
}

type FollowService interface {
	Follow(ctx context.Context, userID, targetType, targetID string) error
	Unfollow(ctx context.Context, userID, targetType, targetID string) error
	ListFollows(ctx context.Context, userID, targetType string, page, limit int) (*dto.FollowListResponse, error)
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
}

func NewFollowService(followRepo repository.FollowRepo) FollowService {
	return &FollowServiceImpl{followRepo: followRepo}
}

// Follow 建立关注，重复关注视为冲突
func (s *FollowServiceImpl) Follow(ctx context.Context, userID, targetType, targetID string) error {
	if _, ok := validFollowTargets[targetType]; !ok {
		return ErrFollowTypeInvalid
	}
	if targetType == model.FollowTargetCreator && targetID == userID {
		return ErrFollowSelf
	}

	follow := &model.Follow{
		UserID:     userID,
		TargetID:   targetID,
		TargetType: targetType,
	}
	created, err := s.followRepo.CreateFollow(ctx, follow)
	if err != nil {
		log.Error("写入关注失败", "err", err)
		return err
	}
	if !created {
		return ErrFollowExist
	}

	s.invalidateCreatorSet(ctx, userID, targetType)
	return nil
}

// Unfollow 解除关注，关系不存在视为 404
func (s *FollowServiceImpl) Unfollow(ctx context.Context, userID, targetType, targetID string) error {
	if _, ok := validFollowTargets[targetType]; !ok {
		return ErrFollowTypeInvalid
	}

	deleted, err := s.followRepo.DeleteFollow(ctx, userID, targetID, targetType)
	if err != nil {
		log.Error("解除关注失败", "err", err)
		return err
	}
	if !deleted {
		return ErrFollowNotFound
	}

	s.invalidateCreatorSet(ctx, userID, targetType)
	return nil
}

// ListFollows page 从 0 开始
func (s *FollowServiceImpl) ListFollows(ctx context.Context, userID, targetType string, page, limit int) (*dto.FollowListResponse, error) {
	if _, ok := validFollowTargets[targetType]; !ok {
		return nil, ErrFollowTypeInvalid
	}
	if page < 0 {
		page = 0
	}
	if limit < 1 {
		limit = consts.FeedDefaultLimit
	}
	if limit > consts.FeedMaxLimit {
		limit = consts.FeedMaxLimit
	}

	follows, err := s.followRepo.ListByUser(ctx, userID, targetType, limit, page*limit)
	if err != nil {
		log.Error("查询关注列表失败", "err", err)
		return nil, err
	}

	items := make([]*dto.FollowListItem, 0, len(follows))
	for _, follow := range follows {
		items = append(items, &dto.FollowListItem{
			TargetID:   follow.TargetID,
			TargetType: follow.TargetType,
			CreatedAt:  follow.CreatedAt,
		})
	}
	return &dto.FollowListResponse{
		Items:   items,
		Page:    page,
		Limit:   limit,
		HasMore: len(items) == limit,
	}, nil
}

// invalidateCreatorSet 关注作者集合被 Feed 缓存，变更后失效
func (s *FollowServiceImpl) invalidateCreatorSet(ctx context.Context, userID, targetType string) {
	if targetType != model.FollowTargetCreator {
		return
	}
	if err := redis.DeleteKey(ctx, consts.FollowCreatorsKey+userID); err != nil {
		log.Warn("关注集合缓存失效失败", "err", err)
	}
}
