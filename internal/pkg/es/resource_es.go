package es

import "time"

// ResourceES 写入 ES 的建议索引文档，只保留补全需要的字段
type ResourceES struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Type           string    `json:"type"`
	Description    string    `json:"description"`
	Visibility     string    `json:"visibility"`
	TotalDownloads int64     `json:"total_downloads"`
	UpdatedAt      time.Time `json:"updated_at"`
}
