package v1

import (
	"github.com/AnotherWeak/prova/internal/entities/game"
	charactersvc "github.com/AnotherWeak/prova/internal/services/character"
)

// Request shapes. Binding only checks presence and JSON types; the
// orchestrators remain the single source of truth for business rules.

type createCharacterRequest struct {
	Name           string `json:"name" binding:"required"`
	AdventurerName string `json:"adventurer_name" binding:"required"`
	Class          string `json:"class" binding:"required"`
	Level          *int32 `json:"level"`
	BaseStrength   int32  `json:"base_strength"`
	BaseDefense    int32  `json:"base_defense"`
}

type updateAdventurerNameRequest struct {
	AdventurerName string `json:"adventurer_name" binding:"required"`
}

type createItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Strength int32  `json:"strength"`
	Defense  int32  `json:"defense"`
}

type addItemRequest struct {
	ItemID int64 `json:"item_id" binding:"required"`
}

// Response shapes

type characterResponse struct {
	ID             int64               `json:"id"`
	Name           string              `json:"name"`
	AdventurerName string              `json:"adventurer_name"`
	Class          string              `json:"class"`
	Level          int32               `json:"level"`
	BaseStrength   int32               `json:"base_strength"`
	BaseDefense    int32               `json:"base_defense"`
	TotalStrength  int32               `json:"total_strength"`
	TotalDefense   int32               `json:"total_defense"`
	MagicItems     []magicItemResponse `json:"magic_items"`
}

type magicItemResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Strength int32  `json:"strength"`
	Defense  int32  `json:"defense"`
	OwnerID  *int64 `json:"owner_id,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toCharacterResponse(state *charactersvc.CharacterState) characterResponse {
	char := state.Character
	return characterResponse{
		ID:             char.ID,
		Name:           char.Name,
		AdventurerName: char.AdventurerName,
		Class:          string(char.Class),
		Level:          char.Level,
		BaseStrength:   char.BaseStrength,
		BaseDefense:    char.BaseDefense,
		TotalStrength:  char.TotalStrength(state.Items),
		TotalDefense:   char.TotalDefense(state.Items),
		MagicItems:     toItemResponses(state.Items),
	}
}

func toItemResponse(it *game.MagicItem) magicItemResponse {
	return magicItemResponse{
		ID:       it.ID,
		Name:     it.Name,
		Type:     string(it.Type),
		Strength: it.Strength,
		Defense:  it.Defense,
		OwnerID:  it.OwnerID,
	}
}

func toItemResponses(items []*game.MagicItem) []magicItemResponse {
	responses := make([]magicItemResponse, len(items))
	for i, it := range items {
		responses[i] = toItemResponse(it)
	}
	return responses
}
