package model

import "time"

// 热度权重：下载意图强于浏览
const (
	TrendingWeightView     = 0.3
	TrendingWeightDownload = 2.0
	TrendingWeightLike     = 1.5
	TrendingWeightComment  = 1.0
)

// TrendingMetric 资源 24 小时滚动计数，trending_score 始终由四个计数推导
type TrendingMetric struct {
	ResourceID    string    `gorm:"type:char(36);primaryKey" json:"resource_id"`
	Views24h      int64     `gorm:"not null;default:0;column:views_24h" json:"views_24h"`
	Downloads24h  int64     `gorm:"not null;default:0;column:downloads_24h" json:"downloads_24h"`
	Likes24h      int64     `gorm:"not null;default:0;column:likes_24h" json:"likes_24h"`
	Comments24h   int64     `gorm:"not null;default:0;column:comments_24h" json:"comments_24h"`
	TrendingScore float64   `gorm:"not null;default:0;index:idx_trending_score" json:"trending_score"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (TrendingMetric) TableName() string {
	return "trending_metrics"
}

// Score 按固定线性权重计算热度分
func (m *TrendingMetric) Score() float64 {
	return float64(m.Views24h)*TrendingWeightView +
		float64(m.Downloads24h)*TrendingWeightDownload +
		float64(m.Likes24h)*TrendingWeightLike +
		float64(m.Comments24h)*TrendingWeightComment
}
