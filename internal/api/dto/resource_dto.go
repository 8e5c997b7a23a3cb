package dto

import "time"

// CreatorInfo 卡片上展示的创作者摘要
type CreatorInfo struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
	Verified  bool   `json:"verified"`
}

// ResourceCard 列表场景的资源卡片，搜索和 Feed 共用
type ResourceCard struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Slug             string      `json:"slug"`
	Description      string      `json:"description"`
	Type             string      `json:"type"`
	MinecraftVersion string      `json:"minecraftVersion"`
	License          string      `json:"license"`
	AverageRating    float64     `json:"averageRating"`
	RatingCount      int         `json:"ratingCount"`
	TotalDownloads   int64       `json:"totalDownloads"`
	TotalViews       int64       `json:"totalViews"`
	TrendingScore    float64     `json:"trendingScore"`
	Featured         bool        `json:"featured"`
	Tags             []string    `json:"tags"`
	Creator          CreatorInfo `json:"creator"`
	CreatedAt        time.Time   `json:"createdAt"`
	PublishedAt      *time.Time  `json:"publishedAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}
