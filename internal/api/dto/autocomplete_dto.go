package dto

// ResourceSuggest 资源补全项
type ResourceSuggest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Type  string `json:"type"`
}

// TagSuggest 标签补全项
type TagSuggest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CreatorSuggest 创作者补全项
type CreatorSuggest struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
	Verified  bool   `json:"verified"`
}

// SuggestionGroups 三路补全结果互相独立，各自截断
type SuggestionGroups struct {
	Resources []*ResourceSuggest `json:"resources"`
	Tags      []*TagSuggest      `json:"tags"`
	Creators  []*CreatorSuggest  `json:"creators"`
}

type AutocompleteResponse struct {
	Suggestions SuggestionGroups `json:"suggestions"`
}
