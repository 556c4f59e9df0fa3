// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/AnotherWeak/prova/internal/services/character Service

import (
	"context"

	"github.com/AnotherWeak/prova/internal/entities/game"
)

// Service defines the interface for character operations
type Service interface {
	// CRUD
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	UpdateAdventurerName(ctx context.Context, input *UpdateAdventurerNameInput) (*UpdateAdventurerNameOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Item assignment
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
	GetAmulet(ctx context.Context, input *GetAmuletInput) (*GetAmuletOutput, error)
}

// CharacterState bundles a character with its materialized item list.
// Derived totals are computed from this snapshot, never refetched.
type CharacterState struct {
	Character *game.Character
	Items     []*game.MagicItem
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Name           string
	AdventurerName string
	Class          string
	Level          int32
	BaseStrength   int32
	BaseDefense    int32
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	State *CharacterState
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID int64
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	State *CharacterState
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct {
	Skip  int32
	Limit int32
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	States []*CharacterState
}

// UpdateAdventurerNameInput defines the request for renaming an adventurer
type UpdateAdventurerNameInput struct {
	CharacterID    int64
	AdventurerName string
}

// UpdateAdventurerNameOutput defines the response for renaming an adventurer
type UpdateAdventurerNameOutput struct {
	State *CharacterState
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID int64
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	// ReleasedItems is the number of items detached by the delete
	ReleasedItems int64
}

// AddItemInput defines the request for attaching an item to a character
type AddItemInput struct {
	CharacterID int64
	ItemID      int64
}

// AddItemOutput defines the response for attaching an item
type AddItemOutput struct {
	State *CharacterState
}

// RemoveItemInput defines the request for detaching an item from a character
type RemoveItemInput struct {
	CharacterID int64
	ItemID      int64
}

// RemoveItemOutput defines the response for detaching an item
type RemoveItemOutput struct {
	// Empty for now, can be extended later
}

// ListItemsInput defines the request for listing a character's items
type ListItemsInput struct {
	CharacterID int64
}

// ListItemsOutput defines the response for listing a character's items
type ListItemsOutput struct {
	Items []*game.MagicItem
}

// GetAmuletInput defines the request for fetching a character's amulet
type GetAmuletInput struct {
	CharacterID int64
}

// GetAmuletOutput defines the response for fetching a character's amulet
type GetAmuletOutput struct {
	Item *game.MagicItem
}
