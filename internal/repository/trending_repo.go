package repository

import (
	"Craftstone/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// trendingScoreExpr 24h 窗口热度分公式，自增后在同一条语句内重算
const trendingScoreExpr = "views_24h * ? + downloads_24h * ? + likes_24h * ? + comments_24h * ?"

// actionCounters 行为类型到计数列的映射
var actionCounters = map[string]string{
	model.ActionView:     "views_24h",
	model.ActionDownload: "downloads_24h",
	model.ActionLike:     "likes_24h",
	model.ActionComment:  "comments_24h",
}

// actionWeights 行为类型对应的热度权重
var actionWeights = map[string]float64{
	model.ActionView:     model.TrendingWeightView,
	model.ActionDownload: model.TrendingWeightDownload,
	model.ActionLike:     model.TrendingWeightLike,
	model.ActionComment:  model.TrendingWeightComment,
}

type TrendingRepo interface {
	IncrementCounter(ctx context.Context, resourceID string, action string) error
	GetMetric(ctx context.Context, resourceID string) (*model.TrendingMetric, error)
	ResetStale(ctx context.Context, cutoff time.Time) (int64, error)
}

type TrendingRepoImpl struct {
	db *gorm.DB
}

func NewTrendingRepository(db *gorm.DB) TrendingRepo {
	return &TrendingRepoImpl{db: db}
}

// IncrementCounter 单条原子 upsert：计数自增与分数重算在同一条语句里完成
// MySQL 的 ON DUPLICATE KEY UPDATE 按声明顺序求值，先加计数再算分
func (s *TrendingRepoImpl) IncrementCounter(ctx context.Context, resourceID string, action string) error {
	column, ok := actionCounters[action]
	if !ok {
		return errors.New("action not countable: " + action)
	}

	now := time.Now()
	metric := &model.TrendingMetric{
		ResourceID:    resourceID,
		TrendingScore: actionWeights[action],
		UpdatedAt:     now,
	}
	switch action {
	case model.ActionView:
		metric.Views24h = 1
	case model.ActionDownload:
		metric.Downloads24h = 1
	case model.ActionLike:
		metric.Likes24h = 1
	case model.ActionComment:
		metric.Comments24h = 1
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "resource_id"}},
			DoUpdates: clause.Set{
				{Column: clause.Column{Name: column}, Value: gorm.Expr(column + " + 1")},
				{Column: clause.Column{Name: "trending_score"}, Value: gorm.Expr(trendingScoreExpr,
					model.TrendingWeightView, model.TrendingWeightDownload, model.TrendingWeightLike, model.TrendingWeightComment)},
				{Column: clause.Column{Name: "updated_at"}, Value: now},
			},
		}).
		Create(metric).Error
}

func (s *TrendingRepoImpl) GetMetric(ctx context.Context, resourceID string) (*model.TrendingMetric, error) {
	var metric model.TrendingMetric
	err := s.db.WithContext(ctx).
		First(&metric, "resource_id = ?", resourceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &metric, nil
}

// ResetStale 把窗口外的指标归零，返回受影响行数
func (s *TrendingRepoImpl) ResetStale(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := s.db.WithContext(ctx).
		Model(&model.TrendingMetric{}).
		Where("updated_at < ?", cutoff).
		Where("trending_score > 0").
		Updates(map[string]interface{}{
			"views_24h":      0,
			"downloads_24h":  0,
			"likes_24h":      0,
			"comments_24h":   0,
			"trending_score": 0,
		})
	return tx.RowsAffected, tx.Error
}
