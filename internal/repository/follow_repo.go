package repository

import (
	"Craftstone/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepo interface {
	CreateFollow(ctx context.Context, follow *model.Follow) (bool, error)
	DeleteFollow(ctx context.Context, userID, targetID, targetType string) (bool, error)
	ListByUser(ctx context.Context, userID, targetType string, limit, offset int) ([]*model.Follow, error)
	GetFollowedCreatorIds(ctx context.Context, userID string) ([]string, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// CreateFollow 已存在时返回 false，不报错
func (s *FollowRepoImpl) CreateFollow(ctx context.Context, follow *model.Follow) (bool, error) {
	tx := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(follow)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// DeleteFollow 不存在时返回 false
func (s *FollowRepoImpl) DeleteFollow(ctx context.Context, userID, targetID, targetType string) (bool, error) {
	tx := s.db.WithContext(ctx).
		Where("user_id = ? AND target_id = ? AND target_type = ?", userID, targetID, targetType).
		Delete(&model.Follow{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (s *FollowRepoImpl) ListByUser(ctx context.Context, userID, targetType string, limit, offset int) ([]*model.Follow, error) {
	var follows []*model.Follow
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND target_type = ?", userID, targetType).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return follows, nil
}

// GetFollowedCreatorIds following Feed 的作者集合
func (s *FollowRepoImpl) GetFollowedCreatorIds(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("user_id = ? AND target_type = ?", userID, model.FollowTargetCreator).
		Pluck("target_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
