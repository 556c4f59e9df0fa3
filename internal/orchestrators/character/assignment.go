package character

import (
	"context"
	"log/slog"

	"github.com/AnotherWeak/prova/internal/entities/game"
	"github.com/AnotherWeak/prova/internal/errors"
	characterrepo "github.com/AnotherWeak/prova/internal/repositories/character"
	itemrepo "github.com/AnotherWeak/prova/internal/repositories/item"
	"github.com/AnotherWeak/prova/internal/services/character"
)

// AddItem assigns an item to a character. Ownership is exclusive: an item
// held by another character is rejected, and a character may hold at most
// one amulet. Re-attaching an item to its current owner is a no-op success.
func (o *Orchestrator) AddItem(ctx context.Context, input *character.AddItemInput) (*character.AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}

	getOut, err := o.itemRepo.Get(ctx, itemrepo.GetInput{ID: input.ItemID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item")
	}
	it := getOut.Item

	if it.OwnerID != nil && *it.OwnerID != input.CharacterID {
		return nil, errors.FailedPrecondition("item is already assigned to another character")
	}

	if it.Type == game.ItemTypeAmulet {
		ownedOut, err := o.itemRepo.ListByOwner(ctx, itemrepo.ListByOwnerInput{OwnerID: input.CharacterID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list character items")
		}
		if existing := game.FindAmulet(ownedOut.Items); existing != nil && existing.ID != it.ID {
			return nil, errors.FailedPrecondition("character already has an amulet; remove the current one before adding another")
		}
	}

	if !it.OwnedBy(input.CharacterID) {
		if _, err := o.itemRepo.SetOwner(ctx, itemrepo.SetOwnerInput{
			ItemID:  input.ItemID,
			OwnerID: input.CharacterID,
		}); err != nil {
			return nil, errors.Wrapf(err, "failed to assign item")
		}

		slog.InfoContext(ctx, "item assigned",
			"character_id", input.CharacterID,
			"item_id", input.ItemID,
			"item_type", it.Type,
		)
	}

	state, err := o.loadState(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &character.AddItemOutput{State: state}, nil
}

// RemoveItem releases an item from a character's inventory. The item record
// survives; only the ownership reference is cleared. An item owned by a
// different character, or unowned, is reported as not found.
func (o *Orchestrator) RemoveItem(ctx context.Context, input *character.RemoveItemInput) (*character.RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}

	if _, err := o.itemRepo.ClearOwner(ctx, itemrepo.ClearOwnerInput{
		ItemID:  input.ItemID,
		OwnerID: input.CharacterID,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to release item")
	}

	slog.InfoContext(ctx, "item released",
		"character_id", input.CharacterID,
		"item_id", input.ItemID,
	)

	return &character.RemoveItemOutput{}, nil
}

// ListItems returns all items currently owned by the character
func (o *Orchestrator) ListItems(ctx context.Context, input *character.ListItemsInput) (*character.ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}

	itemsOut, err := o.itemRepo.ListByOwner(ctx, itemrepo.ListByOwnerInput{OwnerID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list character items")
	}

	return &character.ListItemsOutput{Items: itemsOut.Items}, nil
}

// GetAmulet returns the character's single owned amulet, if any
func (o *Orchestrator) GetAmulet(ctx context.Context, input *character.GetAmuletInput) (*character.GetAmuletOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}

	itemsOut, err := o.itemRepo.ListByOwner(ctx, itemrepo.ListByOwnerInput{OwnerID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list character items")
	}

	amulet := game.FindAmulet(itemsOut.Items)
	if amulet == nil {
		return nil, errors.NotFoundf("character %d has no amulet", input.CharacterID)
	}

	return &character.GetAmuletOutput{Item: amulet}, nil
}
