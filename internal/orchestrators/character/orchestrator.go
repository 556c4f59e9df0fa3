// Package character implements the character orchestrator
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

// defaultListLimit applies when a list request does not set a limit
const defaultListLimit = 100

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	ItemRepo      itemrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	itemRepo      itemrepo.Repository
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		itemRepo:      cfg.ItemRepo,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// CreateCharacter validates the character fields and persists a new character
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *character.CreateCharacterInput) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := validateCharacterFields(input); err != nil {
		return nil, err
	}

	createOut, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{
		Character: &game.Character{
			Name:           input.Name,
			AdventurerName: input.AdventurerName,
			Class:          game.Class(input.Class),
			Level:          input.Level,
			BaseStrength:   input.BaseStrength,
			BaseDefense:    input.BaseDefense,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.InfoContext(ctx, "character created",
		"character_id", createOut.Character.ID,
		"class", createOut.Character.Class,
	)

	return &character.CreateCharacterOutput{
		State: &character.CharacterState{Character: createOut.Character},
	}, nil
}

// GetCharacter retrieves a character and its materialized item list
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.loadState(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &character.GetCharacterOutput{State: state}, nil
}

// ListCharacters retrieves a page of characters, each with its item list
func (o *Orchestrator) ListCharacters(ctx context.Context, input *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	skip, limit, err := normalizePage(input.Skip, input.Limit)
	if err != nil {
		return nil, err
	}

	listOut, err := o.characterRepo.List(ctx, characterrepo.ListInput{Skip: skip, Limit: limit})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	if len(listOut.Characters) == 0 {
		return &character.ListCharactersOutput{States: []*character.CharacterState{}}, nil
	}

	ids := make([]int64, len(listOut.Characters))
	for i, char := range listOut.Characters {
		ids[i] = char.ID
	}

	itemsOut, err := o.itemRepo.ListByOwners(ctx, itemrepo.ListByOwnersInput{OwnerIDs: ids})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items for characters")
	}

	byOwner := make(map[int64][]*game.MagicItem)
	for _, it := range itemsOut.Items {
		if it.OwnerID == nil {
			continue
		}
		byOwner[*it.OwnerID] = append(byOwner[*it.OwnerID], it)
	}

	states := make([]*character.CharacterState, len(listOut.Characters))
	for i, char := range listOut.Characters {
		states[i] = &character.CharacterState{
			Character: char,
			Items:     byOwner[char.ID],
		}
	}

	return &character.ListCharactersOutput{States: states}, nil
}

// UpdateAdventurerName updates the mutable adventurer name of a character
func (o *Orchestrator) UpdateAdventurerName(ctx context.Context, input *character.UpdateAdventurerNameInput) (*character.UpdateAdventurerNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("adventurer_name", input.AdventurerName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	updateOut, err := o.characterRepo.UpdateAdventurerName(ctx, characterrepo.UpdateAdventurerNameInput{
		ID:             input.CharacterID,
		AdventurerName: input.AdventurerName,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update adventurer name")
	}

	itemsOut, err := o.itemRepo.ListByOwner(ctx, itemrepo.ListByOwnerInput{OwnerID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list character items")
	}

	return &character.UpdateAdventurerNameOutput{
		State: &character.CharacterState{
			Character: updateOut.Character,
			Items:     itemsOut.Items,
		},
	}, nil
}

// DeleteCharacter removes a character; its items are released, never deleted
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	deleteOut, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	slog.InfoContext(ctx, "character deleted",
		"character_id", input.CharacterID,
		"released_items", deleteOut.ReleasedItems,
	)

	return &character.DeleteCharacterOutput{ReleasedItems: deleteOut.ReleasedItems}, nil
}

// loadState fetches a character and materializes its item list once
func (o *Orchestrator) loadState(ctx context.Context, characterID int64) (*character.CharacterState, error) {
	getOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}

	itemsOut, err := o.itemRepo.ListByOwner(ctx, itemrepo.ListByOwnerInput{OwnerID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list character items")
	}

	return &character.CharacterState{
		Character: getOut.Character,
		Items:     itemsOut.Items,
	}, nil
}

// normalizePage validates pagination bounds and applies the default limit
func normalizePage(skip, limit int32) (int32, int32, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("skip", skip, 0, vb)
	errors.ValidateMin("limit", limit, 0, vb)
	if err := vb.Build(); err != nil {
		return 0, 0, err
	}

	if limit == 0 {
		limit = defaultListLimit
	}
	return skip, limit, nil
}
