// Package item defines the interface for magic item operations
package item

//go:generate mockgen -destination=mock/mock_service.go -package=itemmock github.com/AnotherWeak/prova/internal/services/item Service

import (
	"context"

	"github.com/AnotherWeak/prova/internal/entities/game"
)

// Service defines the interface for magic item operations
type Service interface {
	CreateItem(ctx context.Context, input *CreateItemInput) (*CreateItemOutput, error)
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
}

// CreateItemInput defines the request for creating an item
type CreateItemInput struct {
	Name     string
	Type     string
	Strength int32
	Defense  int32
}

// CreateItemOutput defines the response for creating an item
type CreateItemOutput struct {
	Item *game.MagicItem
}

// GetItemInput defines the request for getting an item
type GetItemInput struct {
	ItemID int64
}

// GetItemOutput defines the response for getting an item
type GetItemOutput struct {
	Item *game.MagicItem
}

// ListItemsInput defines the request for listing items
type ListItemsInput struct {
	Skip  int32
	Limit int32
}

// ListItemsOutput defines the response for listing items
type ListItemsOutput struct {
	Items []*game.MagicItem
}
