package repository

import (
	"Craftstone/internal/model"
	"context"

	"gorm.io/gorm"
)

type RecommendationRepo interface {
	ListByUser(ctx context.Context, userID string, excludeIDs []string, limit, offset int) ([]*model.Recommendation, error)
}

type RecommendationRepoImpl struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepo {
	return &RecommendationRepoImpl{db: db}
}

// ListByUser 按推荐分倒序取用户的候选集，排除不感兴趣的资源
func (s *RecommendationRepoImpl) ListByUser(ctx context.Context, userID string, excludeIDs []string, limit, offset int) ([]*model.Recommendation, error) {
	tx := s.db.WithContext(ctx).
		Where("user_id = ?", userID)

	if len(excludeIDs) > 0 {
		tx = tx.Where("resource_id NOT IN ?", excludeIDs)
	}

	var recommendations []*model.Recommendation
	err := tx.Order("score DESC").
		Limit(limit).
		Offset(offset).
		Preload("Resource").
		Preload("Resource.Creator").
		Find(&recommendations).Error
	if err != nil {
		return nil, err
	}
	return recommendations, nil
}
