package repository

import (
	"Craftstone/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepo interface {
	CreateEvent(ctx context.Context, event *model.ActivityEvent) error
	CreateDismissed(ctx context.Context, dismissed *model.DismissedResource) error
	GetDismissedResourceIds(ctx context.Context, userID string) ([]string, error)
}

type ActivityRepoImpl struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepo {
	return &ActivityRepoImpl{db: db}
}

func (s *ActivityRepoImpl) CreateEvent(ctx context.Context, event *model.ActivityEvent) error {
	return s.db.WithContext(ctx).Create(event).Error
}

// CreateDismissed 重复点不感兴趣不报错
func (s *ActivityRepoImpl) CreateDismissed(ctx context.Context, dismissed *model.DismissedResource) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(dismissed).Error
}

func (s *ActivityRepoImpl) GetDismissedResourceIds(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&model.DismissedResource{}).
		Where("user_id = ?", userID).
		Pluck("resource_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
