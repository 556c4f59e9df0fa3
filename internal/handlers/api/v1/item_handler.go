package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	itemsvc "github.com/AnotherWeak/prova/internal/services/item"
)

func (h *Handler) createItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.itemService.CreateItem(c.Request.Context(), &itemsvc.CreateItemInput{
		Name:     req.Name,
		Type:     req.Type,
		Strength: req.Strength,
		Defense:  req.Defense,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(output.Item))
}

func (h *Handler) listItems(c *gin.Context) {
	skip, limit, ok := pageParams(c)
	if !ok {
		return
	}

	output, err := h.itemService.ListItems(c.Request.Context(), &itemsvc.ListItemsInput{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponses(output.Items))
}

func (h *Handler) getItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	output, err := h.itemService.GetItem(c.Request.Context(), &itemsvc.GetItemInput{
		ItemID: id,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(output.Item))
}
