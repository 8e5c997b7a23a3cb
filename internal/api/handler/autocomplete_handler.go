package handler

import (
	"Craftstone/internal/pkg/response"
	"Craftstone/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AutocompleteHandler struct {
	autocompleteService service.AutocompleteService
}

func NewAutocompleteHandler(autocompleteService service.AutocompleteService) *AutocompleteHandler {
	return &AutocompleteHandler{autocompleteService: autocompleteService}
}

// Suggest 搜索框补全
func (h *AutocompleteHandler) Suggest(c *gin.Context) {
	keyword := c.Query("q")
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.autocompleteService.Suggest(c.Request.Context(), keyword, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
