// Package item provides the interface for magic item persistence
package item

//go:generate mockgen -destination=mock/mock_repository.go -package=itemmock github.com/AnotherWeak/prova/internal/repositories/item Repository

import (
	"context"

	"github.com/AnotherWeak/prova/internal/entities/game"
)

// Repository defines the interface for magic item persistence
type Repository interface {
	// Create inserts a new item; the store assigns the ID.
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an item by ID
	// Returns errors.NotFound if the item doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves items in insertion order with offset/limit
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByOwner retrieves all items owned by a character, in insertion order
	// Returns errors.Internal for storage failures
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)

	// ListByOwners retrieves all items owned by any of the given characters
	// Returns errors.Internal for storage failures
	ListByOwners(ctx context.Context, input ListByOwnersInput) (*ListByOwnersOutput, error)

	// SetOwner assigns an item to a character with a conditional update:
	// the write only lands while the item is unowned or already owned by
	// that character.
	// Returns errors.NotFound if the item doesn't exist
	// Returns errors.FailedPrecondition if the item belongs to another character
	// Returns errors.Internal for storage failures
	SetOwner(ctx context.Context, input SetOwnerInput) (*SetOwnerOutput, error)

	// ClearOwner releases an item currently owned by the given character.
	// Returns errors.NotFound if the item is not in that character's inventory
	// Returns errors.Internal for storage failures
	ClearOwner(ctx context.Context, input ClearOwnerInput) (*ClearOwnerOutput, error)
}

// CreateInput defines the input for creating an item
type CreateInput struct {
	Item *game.MagicItem
}

// CreateOutput defines the output for creating an item
type CreateOutput struct {
	Item *game.MagicItem
}

// GetInput defines the input for getting an item
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *game.MagicItem
}

// ListInput defines the input for listing items
type ListInput struct {
	Skip  int32
	Limit int32
}

// ListOutput defines the output for listing items
type ListOutput struct {
	Items []*game.MagicItem
}

// ListByOwnerInput defines the input for listing a character's items
type ListByOwnerInput struct {
	OwnerID int64
}

// ListByOwnerOutput defines the output for listing a character's items
type ListByOwnerOutput struct {
	Items []*game.MagicItem
}

// ListByOwnersInput defines the input for listing items across characters
type ListByOwnersInput struct {
	OwnerIDs []int64
}

// ListByOwnersOutput defines the output for listing items across characters
type ListByOwnersOutput struct {
	Items []*game.MagicItem
}

// SetOwnerInput defines the input for assigning an item
type SetOwnerInput struct {
	ItemID  int64
	OwnerID int64
}

// SetOwnerOutput defines the output for assigning an item
type SetOwnerOutput struct {
	Item *game.MagicItem
}

// ClearOwnerInput defines the input for releasing an item
type ClearOwnerInput struct {
	ItemID  int64
	OwnerID int64
}

// ClearOwnerOutput defines the output for releasing an item
type ClearOwnerOutput struct {
	// Empty for now, can be extended later
}
