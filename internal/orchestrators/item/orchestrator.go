// Package item implements the magic item orchestrator
package item

import (
	"context"
	"log/slog"

	"github.com/AnotherWeak/prova/internal/entities/game"
	"github.com/AnotherWeak/prova/internal/errors"
	itemrepo "github.com/AnotherWeak/prova/internal/repositories/item"
	"github.com/AnotherWeak/prova/internal/services/item"
)

// defaultListLimit applies when a list request does not set a limit
const defaultListLimit = 100

// Config holds the dependencies for the item orchestrator
type Config struct {
	ItemRepo itemrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}

	return vb.Build()
}

// Orchestrator implements the item.Service interface
type Orchestrator struct {
	itemRepo itemrepo.Repository
}

// New creates a new item orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		itemRepo: cfg.ItemRepo,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ item.Service = (*Orchestrator)(nil)

// CreateItem validates the item fields and persists a new, unowned item
func (o *Orchestrator) CreateItem(ctx context.Context, input *item.CreateItemInput) (*item.CreateItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := validateItemFields(input); err != nil {
		return nil, err
	}

	createOut, err := o.itemRepo.Create(ctx, itemrepo.CreateInput{
		Item: &game.MagicItem{
			Name:     input.Name,
			Type:     game.ItemType(input.Type),
			Strength: input.Strength,
			Defense:  input.Defense,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create item")
	}

	slog.InfoContext(ctx, "item created",
		"item_id", createOut.Item.ID,
		"type", createOut.Item.Type,
	)

	return &item.CreateItemOutput{Item: createOut.Item}, nil
}

// GetItem retrieves an item by ID
func (o *Orchestrator) GetItem(ctx context.Context, input *item.GetItemInput) (*item.GetItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOut, err := o.itemRepo.Get(ctx, itemrepo.GetInput{ID: input.ItemID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item")
	}

	return &item.GetItemOutput{Item: getOut.Item}, nil
}

// ListItems retrieves a page of items
func (o *Orchestrator) ListItems(ctx context.Context, input *item.ListItemsInput) (*item.ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("skip", input.Skip, 0, vb)
	errors.ValidateMin("limit", input.Limit, 0, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	listOut, err := o.itemRepo.List(ctx, itemrepo.ListInput{Skip: input.Skip, Limit: limit})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items")
	}

	return &item.ListItemsOutput{Items: listOut.Items}, nil
}

// validateItemFields enforces the per-entity constraints on item creation.
// Range checks run first, then type consistency, then the at-least-one-bonus
// rule: an all-zero armor reports the missing bonus, not a type error.
func validateItemFields(input *item.CreateItemInput) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateEnum("type", input.Type, game.ItemTypeNames(), vb)
	errors.ValidateRange("strength", input.Strength, game.AttributeMin, game.AttributeMax, vb)
	errors.ValidateRange("defense", input.Defense, game.AttributeMin, game.AttributeMax, vb)

	switch game.ItemType(input.Type) {
	case game.ItemTypeWeapon:
		if input.Defense != 0 {
			vb.Field("defense", "weapons cannot carry a defense bonus")
		}
	case game.ItemTypeArmor:
		if input.Strength != 0 {
			vb.Field("strength", "armor cannot carry a strength bonus")
		}
	}

	if input.Strength == 0 && input.Defense == 0 {
		vb.Field("strength", "item must grant at least one bonus greater than zero")
	}

	return vb.Build()
}
