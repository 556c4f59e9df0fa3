package character

import (
	"github.com/AnotherWeak/prova/internal/entities/game"
	"github.com/AnotherWeak/prova/internal/errors"
	charactersvc "github.com/AnotherWeak/prova/internal/services/character"
)

// validateCharacterFields enforces the per-entity constraints on character
// creation. Pure: no I/O, deterministic given the input.
func validateCharacterFields(input *charactersvc.CreateCharacterInput) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("adventurer_name", input.AdventurerName, vb)
	errors.ValidateEnum("class", input.Class, game.ClassNames(), vb)
	errors.ValidateMin("level", input.Level, game.MinLevel, vb)
	errors.ValidateRange("base_strength", input.BaseStrength, game.AttributeMin, game.AttributeMax, vb)
	errors.ValidateRange("base_defense", input.BaseDefense, game.AttributeMin, game.AttributeMax, vb)

	if input.BaseStrength+input.BaseDefense > game.BasePointBudget {
		vb.Fieldf("base_defense", "base strength and base defense cannot exceed %d points combined", game.BasePointBudget)
	}

	return vb.Build()
}
