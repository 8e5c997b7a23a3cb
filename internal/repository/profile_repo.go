package repository

import (
	"Craftstone/internal/model"
	"context"

	"gorm.io/gorm"
)

type ProfileRepo interface {
	SearchByUsername(ctx context.Context, keyword string, limit int) ([]*model.Profile, error)
}

type ProfileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepo {
	return &ProfileRepoImpl{db: db}
}

// SearchByUsername 创作者名子串匹配，高产作者靠前
func (s *ProfileRepoImpl) SearchByUsername(ctx context.Context, keyword string, limit int) ([]*model.Profile, error) {
	var profiles []*model.Profile
	err := s.db.WithContext(ctx).
		Where("username LIKE ?", "%"+keyword+"%").
		Order("total_uploads DESC").
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
