package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	charactersvc "github.com/AnotherWeak/prova/internal/services/character"
)

func (h *Handler) createCharacter(c *gin.Context) {
	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	level := int32(1)
	if req.Level != nil {
		level = *req.Level
	}

	output, err := h.characterService.CreateCharacter(c.Request.Context(), &charactersvc.CreateCharacterInput{
		Name:           req.Name,
		AdventurerName: req.AdventurerName,
		Class:          req.Class,
		Level:          level,
		BaseStrength:   req.BaseStrength,
		BaseDefense:    req.BaseDefense,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCharacterResponse(output.State))
}

func (h *Handler) listCharacters(c *gin.Context) {
	skip, limit, ok := pageParams(c)
	if !ok {
		return
	}

	output, err := h.characterService.ListCharacters(c.Request.Context(), &charactersvc.ListCharactersInput{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]characterResponse, len(output.States))
	for i, state := range output.States {
		responses[i] = toCharacterResponse(state)
	}
	c.JSON(http.StatusOK, responses)
}

func (h *Handler) getCharacter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	output, err := h.characterService.GetCharacter(c.Request.Context(), &charactersvc.GetCharacterInput{
		CharacterID: id,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCharacterResponse(output.State))
}

func (h *Handler) updateAdventurerName(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateAdventurerNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.characterService.UpdateAdventurerName(c.Request.Context(), &charactersvc.UpdateAdventurerNameInput{
		CharacterID:    id,
		AdventurerName: req.AdventurerName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCharacterResponse(output.State))
}

func (h *Handler) deleteCharacter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	_, err := h.characterService.DeleteCharacter(c.Request.Context(), &charactersvc.DeleteCharacterInput{
		CharacterID: id,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Character %d removed successfully", id),
	})
}

func (h *Handler) addItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.characterService.AddItem(c.Request.Context(), &charactersvc.AddItemInput{
		CharacterID: id,
		ItemID:      req.ItemID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCharacterResponse(output.State))
}

func (h *Handler) listCharacterItems(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	output, err := h.characterService.ListItems(c.Request.Context(), &charactersvc.ListItemsInput{
		CharacterID: id,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponses(output.Items))
}

func (h *Handler) removeItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	_, err := h.characterService.RemoveItem(c.Request.Context(), &charactersvc.RemoveItemInput{
		CharacterID: id,
		ItemID:      itemID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Item %d removed from character %d", itemID, id),
	})
}

func (h *Handler) getAmulet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	output, err := h.characterService.GetAmulet(c.Request.Context(), &charactersvc.GetAmuletInput{
		CharacterID: id,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(output.Item))
}
