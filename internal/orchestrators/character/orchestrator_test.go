package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/AnotherWeak/prova/internal/entities/game"
	"github.com/AnotherWeak/prova/internal/errors"
	"github.com/AnotherWeak/prova/internal/orchestrators/character"
	characterrepo "github.com/AnotherWeak/prova/internal/repositories/character"
	characterrepomock "github.com/AnotherWeak/prova/internal/repositories/character/mock"
	itemrepo "github.com/AnotherWeak/prova/internal/repositories/item"
	itemrepomock "github.com/AnotherWeak/prova/internal/repositories/item/mock"
	charactersvc "github.com/AnotherWeak/prova/internal/services/character"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockCharRepo *characterrepomock.MockRepository
	mockItemRepo *itemrepomock.MockRepository
	orchestrator *character.Orchestrator
	ctx          context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.mockItemRepo = itemrepomock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := character.New(&character.Config{
		CharacterRepo: s.mockCharRepo,
		ItemRepo:      s.mockItemRepo,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewRequiresDependencies() {
	_, err := character.New(&character.Config{ItemRepo: s.mockItemRepo})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "CharacterRepo")

	_, err = character.New(&character.Config{CharacterRepo: s.mockCharRepo})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "ItemRepo")
}

func validCreateInput() *charactersvc.CreateCharacterInput {
	return &charactersvc.CreateCharacterInput{
		Name:           "Aragorn",
		AdventurerName: "Strider",
		Class:          "Warrior",
		Level:          1,
		BaseStrength:   6,
		BaseDefense:    4,
	}
}

func (s *OrchestratorTestSuite) TestCreateCharacter_Success() {
	input := validCreateInput()

	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			s.Equal("Aragorn", in.Character.Name)
			s.Equal(game.ClassWarrior, in.Character.Class)
			created := *in.Character
			created.ID = 1
			return &characterrepo.CreateOutput{Character: &created}, nil
		})

	output, err := s.orchestrator.CreateCharacter(s.ctx, input)
	s.Require().NoError(err)
	s.Require().NotNil(output.State)
	s.Assert().Equal(int64(1), output.State.Character.ID)
	s.Assert().Empty(output.State.Items)
}

func (s *OrchestratorTestSuite) TestCreateCharacter_NilInput() {
	output, err := s.orchestrator.CreateCharacter(s.ctx, nil)
	s.Assert().Nil(output)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter_Validation() {
	testCases := []struct {
		name    string
		mutate  func(*charactersvc.CreateCharacterInput)
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(in *charactersvc.CreateCharacterInput) { in.Name = "" },
			message: "name: is required",
		},
		{
			name:    "missing adventurer name",
			mutate:  func(in *charactersvc.CreateCharacterInput) { in.AdventurerName = "" },
			message: "adventurer_name: is required",
		},
		{
			name:    "unknown class",
			mutate:  func(in *charactersvc.CreateCharacterInput) { in.Class = "Paladin" },
			message: "class: must be one of",
		},
		{
			name:    "level below minimum",
			mutate:  func(in *charactersvc.CreateCharacterInput) { in.Level = 0 },
			message: "level: must be at least 1",
		},
		{
			name:    "strength above range",
			mutate:  func(in *charactersvc.CreateCharacterInput) { in.BaseStrength = 11; in.BaseDefense = 0 },
			message: "base_strength: must be between 0 and 10",
		},
		{
			name:    "negative defense",
			mutate:  func(in *charactersvc.CreateCharacterInput) { in.BaseDefense = -1 },
			message: "base_defense: must be between 0 and 10",
		},
		{
			name:    "budget exceeded",
			mutate:  func(in *charactersvc.CreateCharacterInput) { in.BaseStrength = 7; in.BaseDefense = 4 },
			message: "cannot exceed 10 points combined",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			input := validCreateInput()
			tc.mutate(input)

			output, err := s.orchestrator.CreateCharacter(s.ctx, input)
			s.Assert().Nil(output)
			s.Require().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.message)
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateCharacter_BudgetAtLimit() {
	// 6+4 spends the whole budget and is still legal
	input := validCreateInput()
	input.BaseStrength = 6
	input.BaseDefense = 4

	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(&characterrepo.CreateOutput{Character: &game.Character{ID: 1}}, nil)

	output, err := s.orchestrator.CreateCharacter(s.ctx, input)
	s.Require().NoError(err)
	s.Assert().NotNil(output)
}

func (s *OrchestratorTestSuite) TestGetCharacter_Success() {
	char := &game.Character{ID: 7, Name: "Aragorn", BaseStrength: 6, BaseDefense: 4}
	ownerID := int64(7)
	items := []*game.MagicItem{
		{ID: 1, Type: game.ItemTypeWeapon, Strength: 5, OwnerID: &ownerID},
	}

	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: 7}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
	s.mockItemRepo.EXPECT().
		ListByOwner(s.ctx, itemrepo.ListByOwnerInput{OwnerID: 7}).
		Return(&itemrepo.ListByOwnerOutput{Items: items}, nil)

	output, err := s.orchestrator.GetCharacter(s.ctx, &charactersvc.GetCharacterInput{CharacterID: 7})
	s.Require().NoError(err)
	s.Assert().Equal(char, output.State.Character)
	s.Assert().Equal(items, output.State.Items)
	s.Assert().Equal(int32(11), output.State.Character.TotalStrength(output.State.Items))
}

func (s *OrchestratorTestSuite) TestGetCharacter_NotFound() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: 999}).
		Return(nil, errors.NotFound("character with ID 999 not found"))

	output, err := s.orchestrator.GetCharacter(s.ctx, &charactersvc.GetCharacterInput{CharacterID: 999})
	s.Assert().Nil(output)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListCharacters_GroupsItemsByOwner() {
	frodo := &game.Character{ID: 1, Name: "Frodo"}
	sam := &game.Character{ID: 2, Name: "Sam"}
	frodoID, samID := int64(1), int64(2)
	items := []*game.MagicItem{
		{ID: 10, Type: game.ItemTypeWeapon, Strength: 5, OwnerID: &frodoID},
		{ID: 11, Type: game.ItemTypeWeapon, Strength: 2, OwnerID: &samID},
		{ID: 12, Type: game.ItemTypeArmor, Defense: 8, OwnerID: &frodoID},
	}

	s.mockCharRepo.EXPECT().
		List(s.ctx, characterrepo.ListInput{Skip: 0, Limit: 100}).
		Return(&characterrepo.ListOutput{Characters: []*game.Character{frodo, sam}}, nil)
	s.mockItemRepo.EXPECT().
		ListByOwners(s.ctx, itemrepo.ListByOwnersInput{OwnerIDs: []int64{1, 2}}).
		Return(&itemrepo.ListByOwnersOutput{Items: items}, nil)

	output, err := s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{})
	s.Require().NoError(err)
	s.Require().Len(output.States, 2)
	s.Assert().Len(output.States[0].Items, 2)
	s.Assert().Len(output.States[1].Items, 1)
}

func (s *OrchestratorTestSuite) TestListCharacters_Empty() {
	s.mockCharRepo.EXPECT().
		List(s.ctx, characterrepo.ListInput{Skip: 0, Limit: 100}).
		Return(&characterrepo.ListOutput{}, nil)

	output, err := s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{})
	s.Require().NoError(err)
	s.Assert().Empty(output.States)
}

func (s *OrchestratorTestSuite) TestListCharacters_NegativePage() {
	output, err := s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{Skip: -1})
	s.Assert().Nil(output)
	s.Assert().True(errors.IsInvalidArgument(err))

	output, err = s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{Limit: -5})
	s.Assert().Nil(output)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateAdventurerName_Success() {
	char := &game.Character{ID: 7, AdventurerName: "Strider"}

	s.mockCharRepo.EXPECT().
		UpdateAdventurerName(s.ctx, characterrepo.UpdateAdventurerNameInput{ID: 7, AdventurerName: "Strider"}).
		Return(&characterrepo.UpdateAdventurerNameOutput{Character: char}, nil)
	s.mockItemRepo.EXPECT().
		ListByOwner(s.ctx, itemrepo.ListByOwnerInput{OwnerID: 7}).
		Return(&itemrepo.ListByOwnerOutput{}, nil)

	output, err := s.orchestrator.UpdateAdventurerName(s.ctx, &charactersvc.UpdateAdventurerNameInput{
		CharacterID:    7,
		AdventurerName: "Strider",
	})
	s.Require().NoError(err)
	s.Assert().Equal("Strider", output.State.Character.AdventurerName)
}

func (s *OrchestratorTestSuite) TestUpdateAdventurerName_Blank() {
	output, err := s.orchestrator.UpdateAdventurerName(s.ctx, &charactersvc.UpdateAdventurerNameInput{
		CharacterID:    7,
		AdventurerName: "   ",
	})
	s.Assert().Nil(output)
	s.Require().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "adventurer_name: is required")
}

func (s *OrchestratorTestSuite) TestDeleteCharacter_Success() {
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: 7}).
		Return(&characterrepo.DeleteOutput{ReleasedItems: 3}, nil)

	output, err := s.orchestrator.DeleteCharacter(s.ctx, &charactersvc.DeleteCharacterInput{CharacterID: 7})
	s.Require().NoError(err)
	s.Assert().Equal(int64(3), output.ReleasedItems)
}

func (s *OrchestratorTestSuite) TestDeleteCharacter_NotFound() {
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: 999}).
		Return(nil, errors.NotFound("character with ID 999 not found"))

	output, err := s.orchestrator.DeleteCharacter(s.ctx, &charactersvc.DeleteCharacterInput{CharacterID: 999})
	s.Assert().Nil(output)
	s.Assert().True(errors.IsNotFound(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
