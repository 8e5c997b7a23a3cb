package service

import (
	"Craftstone/internal/api/dto"
	"Craftstone/internal/model"
	"Craftstone/internal/repository"
	"context"
	log "log/slog"
)

// countableActions 计入热度的行为，rate 和 dismiss 只留痕
var countableActions = map[string]struct{}{
	model.ActionView:     {},
	model.ActionDownload: {},
	model.ActionLike:     {},
	model.ActionComment:  {},
}

var validActions = map[string]struct{}{
	model.ActionView:     {},
	model.ActionDownload: {},
	model.ActionLike:     {},
	model.ActionRate:     {},
	model.ActionComment:  {},
	model.ActionDismiss:  {},
}

// totalColumnByAction 同步累加到资源表的总量列
var totalColumnByAction = map[string]string{
	model.ActionView:     "total_views",
	model.ActionDownload: "total_downloads",
}

type ActivityService interface {
	TrackActivity(ctx context.Context, userID string, req *dto.TrackActivityRequest) (*dto.TrackActivityResponse, error)
}

type ActivityServiceImpl struct {
	activityRepo repository.ActivityRepo
	trendingRepo repository.TrendingRepo
	resourceRepo repository.ResourceRepo
}

func NewActivityService(
	activityRepo repository.ActivityRepo,
	trendingRepo repository.TrendingRepo,
	resourceRepo repository.ResourceRepo,
) ActivityService {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
		trendingRepo: trendingRepo,
		resourceRepo: resourceRepo,
	}
}

// TrackActivity 记录行为事实并滚动热度计数
// 事实表先落库，热度更新失败只告警不回滚，不能因为指标丢事件
func (s *ActivityServiceImpl) TrackActivity(ctx context.Context, userID string, req *dto.TrackActivityRequest) (*dto.TrackActivityResponse, error) {
	if _, ok := validActions[req.ActionType]; !ok {
		return nil, ErrActionTypeInvalid
	}

	resource, err := s.resourceRepo.GetResource(ctx, req.ResourceID)
	if err != nil {
		log.Error("查询资源失败", "resource_id", req.ResourceID, "err", err)
		return nil, err
	}
	if resource == nil {
		return nil, ErrResourceNotFound
	}

	weight := req.Weight
	if weight <= 0 {
		weight = 1
	}
	event := &model.ActivityEvent{
		UserID:     userID,
		ResourceID: req.ResourceID,
		ActionType: req.ActionType,
		Weight:     weight,
	}
	if err := s.activityRepo.CreateEvent(ctx, event); err != nil {
		log.Error("写入行为事件失败", "err", err)
		return nil, err
	}

	if req.ActionType == model.ActionDismiss {
		dismissed := &model.DismissedResource{UserID: userID, ResourceID: req.ResourceID}
		if err := s.activityRepo.CreateDismissed(ctx, dismissed); err != nil {
			log.Error("写入不感兴趣记录失败", "err", err)
			return nil, err
		}
	}

	var score float64
	if _, ok := countableActions[req.ActionType]; ok {
		if err := s.trendingRepo.IncrementCounter(ctx, req.ResourceID, req.ActionType); err != nil {
			log.Warn("热度计数更新失败", "resource_id", req.ResourceID, "action", req.ActionType, "err", err)
		} else if metric, err := s.trendingRepo.GetMetric(ctx, req.ResourceID); err == nil && metric != nil {
			score = metric.TrendingScore
		}

		if column, ok := totalColumnByAction[req.ActionType]; ok {
			if err := s.resourceRepo.IncrementTotal(ctx, req.ResourceID, column); err != nil {
				log.Warn("资源总量更新失败", "resource_id", req.ResourceID, "column", column, "err", err)
			}
		}
	}

	return &dto.TrackActivityResponse{Success: true, TrendingScore: score}, nil
}
