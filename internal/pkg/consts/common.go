package consts

// 分页默认值。搜索页码从 1 开始，Feed 页码从 0 开始，两端约定不同，不要统一
const (
	SearchDefaultPage  = 1
	SearchDefaultLimit = 24
	SearchMaxLimit     = 100

	FeedDefaultPage  = 0
	FeedDefaultLimit = 20
	FeedMaxLimit     = 50

	SuggestDefaultLimit = 8
	SuggestMinQueryLen  = 2
)

// 精选评分门槛：样本太少时单条五星不应该霸榜
const TopRatedMinRatingCount = 5
