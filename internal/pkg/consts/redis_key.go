package consts

const (
	TokenRevokedKey    = "token:revoked:"
	SearchTypeAggsKey  = "search:aggs:resource_types"
	CategoryListKey    = "category:list"
	FollowCreatorsKey  = "follow:creators:"
)
