package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/AnotherWeak/prova/internal/entities/game"
	"github.com/AnotherWeak/prova/internal/errors"
	v1 "github.com/AnotherWeak/prova/internal/handlers/api/v1"
	charactersvc "github.com/AnotherWeak/prova/internal/services/character"
	charactermock "github.com/AnotherWeak/prova/internal/services/character/mock"
	itemsvc "github.com/AnotherWeak/prova/internal/services/item"
	itemmock "github.com/AnotherWeak/prova/internal/services/item/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCharacterSvc *charactermock.MockService
	mockItemSvc      *itemmock.MockService
	router           *gin.Engine
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.mockCharacterSvc = charactermock.NewMockService(s.ctrl)
	s.mockItemSvc = itemmock.NewMockService(s.ctrl)

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		CharacterService: s.mockCharacterSvc,
		ItemService:      s.mockItemSvc,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) decode(recorder *httptest.ResponseRecorder, target any) {
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), target))
}

func (s *HandlerTestSuite) TestHealthz() {
	recorder := s.do(http.MethodGet, "/healthz", nil)
	s.Assert().Equal(http.StatusOK, recorder.Code)
}

func (s *HandlerTestSuite) TestCreateCharacter_Success() {
	charID := int64(1)
	state := &charactersvc.CharacterState{
		Character: &game.Character{
			ID: 1, Name: "Aragorn", AdventurerName: "Strider",
			Class: game.ClassWarrior, Level: 1, BaseStrength: 6, BaseDefense: 4,
		},
		Items: []*game.MagicItem{
			{ID: 10, Name: "Anduril", Type: game.ItemTypeWeapon, Strength: 5, OwnerID: &charID},
		},
	}

	s.mockCharacterSvc.EXPECT().
		CreateCharacter(gomock.Any(), &charactersvc.CreateCharacterInput{
			Name:           "Aragorn",
			AdventurerName: "Strider",
			Class:          "Warrior",
			Level:          1,
			BaseStrength:   6,
			BaseDefense:    4,
		}).
		Return(&charactersvc.CreateCharacterOutput{State: state}, nil)

	recorder := s.do(http.MethodPost, "/characters", gin.H{
		"name":            "Aragorn",
		"adventurer_name": "Strider",
		"class":           "Warrior",
		"base_strength":   6,
		"base_defense":    4,
	})

	s.Require().Equal(http.StatusOK, recorder.Code)

	var body map[string]any
	s.decode(recorder, &body)
	s.Assert().Equal(float64(1), body["id"])
	s.Assert().Equal(float64(11), body["total_strength"])
	s.Assert().Equal(float64(4), body["total_defense"])
	s.Assert().Len(body["magic_items"], 1)
}

func (s *HandlerTestSuite) TestCreateCharacter_LevelDefaultsToOne() {
	s.mockCharacterSvc.EXPECT().
		CreateCharacter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *charactersvc.CreateCharacterInput) (*charactersvc.CreateCharacterOutput, error) {
			s.Equal(int32(1), in.Level)
			return &charactersvc.CreateCharacterOutput{
				State: &charactersvc.CharacterState{Character: &game.Character{ID: 1, Level: 1}},
			}, nil
		})

	recorder := s.do(http.MethodPost, "/characters", gin.H{
		"name":            "Aragorn",
		"adventurer_name": "Strider",
		"class":           "Warrior",
	})
	s.Assert().Equal(http.StatusOK, recorder.Code)
}

func (s *HandlerTestSuite) TestCreateCharacter_MissingRequiredField() {
	recorder := s.do(http.MethodPost, "/characters", gin.H{
		"name": "Aragorn",
	})

	s.Require().Equal(http.StatusUnprocessableEntity, recorder.Code)

	var body map[string]any
	s.decode(recorder, &body)
	s.Assert().Equal("INVALID_ARGUMENT", body["code"])
}

func (s *HandlerTestSuite) TestCreateCharacter_ValidationError() {
	s.mockCharacterSvc.EXPECT().
		CreateCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("validation failed: base_defense: base strength and base defense cannot exceed 10 points combined"))

	recorder := s.do(http.MethodPost, "/characters", gin.H{
		"name":            "Aragorn",
		"adventurer_name": "Strider",
		"class":           "Warrior",
		"base_strength":   7,
		"base_defense":    4,
	})

	s.Assert().Equal(http.StatusUnprocessableEntity, recorder.Code)
}

func (s *HandlerTestSuite) TestGetCharacter_Success() {
	state := &charactersvc.CharacterState{
		Character: &game.Character{ID: 7, Name: "Frodo", Class: game.ClassRogue, Level: 1},
	}

	s.mockCharacterSvc.EXPECT().
		GetCharacter(gomock.Any(), &charactersvc.GetCharacterInput{CharacterID: 7}).
		Return(&charactersvc.GetCharacterOutput{State: state}, nil)

	recorder := s.do(http.MethodGet, "/characters/7", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var body map[string]any
	s.decode(recorder, &body)
	s.Assert().Equal("Frodo", body["name"])
	s.Assert().NotNil(body["magic_items"])
}

func (s *HandlerTestSuite) TestGetCharacter_NotFound() {
	s.mockCharacterSvc.EXPECT().
		GetCharacter(gomock.Any(), &charactersvc.GetCharacterInput{CharacterID: 999}).
		Return(nil, errors.NotFound("character with ID 999 not found"))

	recorder := s.do(http.MethodGet, "/characters/999", nil)
	s.Require().Equal(http.StatusNotFound, recorder.Code)

	var body map[string]any
	s.decode(recorder, &body)
	s.Assert().Equal("NOT_FOUND", body["code"])
}

func (s *HandlerTestSuite) TestGetCharacter_NonIntegerID() {
	recorder := s.do(http.MethodGet, "/characters/abc", nil)
	s.Assert().Equal(http.StatusUnprocessableEntity, recorder.Code)
}

func (s *HandlerTestSuite) TestListCharacters_PassesPagination() {
	s.mockCharacterSvc.EXPECT().
		ListCharacters(gomock.Any(), &charactersvc.ListCharactersInput{Skip: 2, Limit: 5}).
		Return(&charactersvc.ListCharactersOutput{States: []*charactersvc.CharacterState{}}, nil)

	recorder := s.do(http.MethodGet, "/characters?skip=2&limit=5", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Assert().JSONEq("[]", recorder.Body.String())
}

func (s *HandlerTestSuite) TestListCharacters_BadQuery() {
	recorder := s.do(http.MethodGet, "/characters?skip=lots", nil)
	s.Assert().Equal(http.StatusUnprocessableEntity, recorder.Code)
}

func (s *HandlerTestSuite) TestUpdateAdventurerName() {
	state := &charactersvc.CharacterState{
		Character: &game.Character{ID: 7, AdventurerName: "Ringbearer"},
	}

	s.mockCharacterSvc.EXPECT().
		UpdateAdventurerName(gomock.Any(), &charactersvc.UpdateAdventurerNameInput{
			CharacterID:    7,
			AdventurerName: "Ringbearer",
		}).
		Return(&charactersvc.UpdateAdventurerNameOutput{State: state}, nil)

	recorder := s.do(http.MethodPut, "/characters/7/adventurer-name", gin.H{
		"adventurer_name": "Ringbearer",
	})
	s.Require().Equal(http.StatusOK, recorder.Code)

	var body map[string]any
	s.decode(recorder, &body)
	s.Assert().Equal("Ringbearer", body["adventurer_name"])
}

func (s *HandlerTestSuite) TestDeleteCharacter() {
	s.mockCharacterSvc.EXPECT().
		DeleteCharacter(gomock.Any(), &charactersvc.DeleteCharacterInput{CharacterID: 7}).
		Return(&charactersvc.DeleteCharacterOutput{ReleasedItems: 2}, nil)

	recorder := s.do(http.MethodDelete, "/characters/7", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var body map[string]any
	s.decode(recorder, &body)
	s.Assert().Equal("Character 7 removed successfully", body["message"])
}

func (s *HandlerTestSuite) TestAddItem_Conflict() {
	s.mockCharacterSvc.EXPECT().
		AddItem(gomock.Any(), &charactersvc.AddItemInput{CharacterID: 7, ItemID: 42}).
		Return(nil, errors.FailedPrecondition("item is already assigned to another character"))

	recorder := s.do(http.MethodPost, "/characters/7/items", gin.H{"item_id": 42})
	s.Require().Equal(http.StatusBadRequest, recorder.Code)

	var body map[string]any
	s.decode(recorder, &body)
	s.Assert().Equal("FAILED_PRECONDITION", body["code"])
	s.Assert().Equal("item is already assigned to another character", body["message"])
}

func (s *HandlerTestSuite) TestAddItem_MissingItemID() {
	recorder := s.do(http.MethodPost, "/characters/7/items", gin.H{})
	s.Assert().Equal(http.StatusUnprocessableEntity, recorder.Code)
}

func (s *HandlerTestSuite) TestRemoveItem() {
	s.mockCharacterSvc.EXPECT().
		RemoveItem(gomock.Any(), &charactersvc.RemoveItemInput{CharacterID: 7, ItemID: 42}).
		Return(&charactersvc.RemoveItemOutput{}, nil)

	recorder := s.do(http.MethodDelete, "/characters/7/items/42", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var body map[string]any
	s.decode(recorder, &body)
	s.Assert().Equal("Item 42 removed from character 7", body["message"])
}

func (s *HandlerTestSuite) TestListCharacterItems() {
	charID := int64(7)
	items := []*game.MagicItem{
		{ID: 1, Name: "Sting", Type: game.ItemTypeWeapon, Strength: 5, OwnerID: &charID},
	}

	s.mockCharacterSvc.EXPECT().
		ListItems(gomock.Any(), &charactersvc.ListItemsInput{CharacterID: 7}).
		Return(&charactersvc.ListItemsOutput{Items: items}, nil)

	recorder := s.do(http.MethodGet, "/characters/7/items", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var body []map[string]any
	s.decode(recorder, &body)
	s.Require().Len(body, 1)
	s.Assert().Equal("Sting", body[0]["name"])
	s.Assert().Equal(float64(7), body[0]["owner_id"])
}

func (s *HandlerTestSuite) TestGetAmulet_NotFound() {
	s.mockCharacterSvc.EXPECT().
		GetAmulet(gomock.Any(), &charactersvc.GetAmuletInput{CharacterID: 7}).
		Return(nil, errors.NotFoundf("character %d has no amulet", 7))

	recorder := s.do(http.MethodGet, "/characters/7/amulet", nil)
	s.Assert().Equal(http.StatusNotFound, recorder.Code)
}

func (s *HandlerTestSuite) TestCreateItem_Success() {
	s.mockItemSvc.EXPECT().
		CreateItem(gomock.Any(), &itemsvc.CreateItemInput{
			Name:     "Sting",
			Type:     "Weapon",
			Strength: 5,
		}).
		Return(&itemsvc.CreateItemOutput{
			Item: &game.MagicItem{ID: 1, Name: "Sting", Type: game.ItemTypeWeapon, Strength: 5},
		}, nil)

	recorder := s.do(http.MethodPost, "/items", gin.H{
		"name":     "Sting",
		"type":     "Weapon",
		"strength": 5,
	})
	s.Require().Equal(http.StatusOK, recorder.Code)

	var body map[string]any
	s.decode(recorder, &body)
	s.Assert().Equal(float64(1), body["id"])
	s.Assert().Equal("Weapon", body["type"])
	s.Assert().NotContains(body, "owner_id")
}

func (s *HandlerTestSuite) TestCreateItem_ValidationError() {
	s.mockItemSvc.EXPECT().
		CreateItem(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("validation failed: defense: weapons cannot carry a defense bonus"))

	recorder := s.do(http.MethodPost, "/items", gin.H{
		"name":     "Sting",
		"type":     "Weapon",
		"strength": 5,
		"defense":  3,
	})
	s.Assert().Equal(http.StatusUnprocessableEntity, recorder.Code)
}

func (s *HandlerTestSuite) TestGetItem() {
	s.mockItemSvc.EXPECT().
		GetItem(gomock.Any(), &itemsvc.GetItemInput{ItemID: 42}).
		Return(&itemsvc.GetItemOutput{
			Item: &game.MagicItem{ID: 42, Name: "Sting", Type: game.ItemTypeWeapon, Strength: 5},
		}, nil)

	recorder := s.do(http.MethodGet, "/items/42", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var body map[string]any
	s.decode(recorder, &body)
	s.Assert().Equal("Sting", body["name"])
}

func (s *HandlerTestSuite) TestListItems() {
	s.mockItemSvc.EXPECT().
		ListItems(gomock.Any(), &itemsvc.ListItemsInput{Skip: 0, Limit: 0}).
		Return(&itemsvc.ListItemsOutput{Items: []*game.MagicItem{}}, nil)

	recorder := s.do(http.MethodGet, "/items", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Assert().JSONEq("[]", recorder.Body.String())
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
