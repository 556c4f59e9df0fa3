// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/AnotherWeak/prova/internal/repositories/character Repository

import (
	"context"

	"github.com/AnotherWeak/prova/internal/entities/game"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create inserts a new character; the store assigns the ID.
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// UpdateAdventurerName updates a character's adventurer name
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	UpdateAdventurerName(ctx context.Context, input UpdateAdventurerNameInput) (*UpdateAdventurerNameOutput, error)

	// Delete removes a character, releasing ownership of all its items
	// in the same transaction. Items themselves are never deleted.
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves characters in insertion order with offset/limit
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *game.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *game.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *game.Character
}

// UpdateAdventurerNameInput defines the input for renaming an adventurer
type UpdateAdventurerNameInput struct {
	ID             int64
	AdventurerName string
}

// UpdateAdventurerNameOutput defines the output for renaming an adventurer
type UpdateAdventurerNameOutput struct {
	Character *game.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID int64
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct {
	// ReleasedItems is the number of items whose ownership was cleared
	ReleasedItems int64
}

// ListInput defines the input for listing characters
type ListInput struct {
	Skip  int32
	Limit int32
}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*game.Character
}
