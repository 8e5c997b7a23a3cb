package repository

import (
	"Craftstone/internal/model"
	"context"

	"gorm.io/gorm"
)

type TagRepo interface {
	SearchByName(ctx context.Context, keyword string, limit int) ([]*model.Tag, error)
}

type TagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &TagRepoImpl{db: db}
}

// SearchByName 标签名子串匹配，热门标签靠前
func (s *TagRepoImpl) SearchByName(ctx context.Context, keyword string, limit int) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := s.db.WithContext(ctx).
		Where("name LIKE ?", "%"+keyword+"%").
		Order("usage_count DESC").
		Limit(limit).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
