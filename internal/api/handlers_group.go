package api

import "Craftstone/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	SearchHandler       *handler.SearchHandler
	AutocompleteHandler *handler.AutocompleteHandler
	FeedHandler         *handler.FeedHandler
	ActivityHandler     *handler.ActivityHandler
	FollowHandler       *handler.FollowHandler
	ResourceHandler     *handler.ResourceHandler
	CategoryHandler     *handler.CategoryHandler
}
