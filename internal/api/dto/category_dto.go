package dto

import "github.com/goccy/go-json"

// CategoryItem 分类配置，fields 是上传向导的字段定义原文
type CategoryItem struct {
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Fields      json.RawMessage `json:"fields"`
	SortOrder   int             `json:"sortOrder"`
}
