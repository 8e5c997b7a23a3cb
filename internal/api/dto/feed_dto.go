package dto

// FeedRequest Feed 入参，page 从 0 开始
type FeedRequest struct {
	Type  string `form:"type"`
	Page  int    `form:"page" binding:"omitempty,gte=0"`
	Limit int    `form:"limit" binding:"omitempty,gte=1"`
}

// FeedItem Feed 条目，reason 标注这条为什么出现在流里
type FeedItem struct {
	ResourceCard
	Reason string  `json:"reason,omitempty"`
	Score  float64 `json:"score,omitempty"`
}

type FeedResponse struct {
	Resources []*FeedItem `json:"resources"`
	FeedType  string      `json:"feedType"`
	Page      int         `json:"page"`
	Limit     int         `json:"limit"`
	HasMore   bool        `json:"hasMore"`
}
