package dto

// DateRange 创建时间范围，RFC3339 或 2006-01-02
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SearchFilters 搜索过滤条件，全部可选，条件之间 AND
// premiumOnly 只接受不生效：可见性始终限定 public
type SearchFilters struct {
	ResourceTypes     []string   `json:"resourceTypes"`
	MinecraftVersions []string   `json:"minecraftVersions"`
	LicenseTypes      []string   `json:"licenseTypes"`
	MinRating         float64    `json:"minRating" binding:"omitempty,gte=0,lte=5"`
	MinDownloads      int64      `json:"minDownloads" binding:"omitempty,gte=0"`
	DateRange         *DateRange `json:"dateRange"`
	VerifiedOnly      bool       `json:"verifiedOnly"`
	PremiumOnly       bool       `json:"premiumOnly"`
}

// SearchRequest 搜索入参，page 从 1 开始
type SearchRequest struct {
	Query   string        `json:"query"`
	Filters SearchFilters `json:"filters"`
	Sort    string        `json:"sort"`
	Page    int           `json:"page" binding:"omitempty,gte=1"`
	Limit   int           `json:"limit" binding:"omitempty,gte=1"`
}

// SearchAggregations 分类分布，统计的是全量公开资源
type SearchAggregations struct {
	ResourceTypes map[string]int64 `json:"resourceTypes"`
}

type SearchResponse struct {
	Results      []*ResourceCard    `json:"results"`
	Total        int64              `json:"total"`
	Page         int                `json:"page"`
	Limit        int                `json:"limit"`
	HasMore      bool               `json:"hasMore"`
	Query        string             `json:"query"`
	Aggregations SearchAggregations `json:"aggregations"`
	Took         int64              `json:"took"`
}
