// Package v1 exposes the character and item operations over HTTP
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnotherWeak/prova/internal/errors"
	charactersvc "github.com/AnotherWeak/prova/internal/services/character"
	itemsvc "github.com/AnotherWeak/prova/internal/services/item"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService charactersvc.Service
	ItemService      itemsvc.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.ItemService == nil {
		vb.RequiredField("ItemService")
	}

	return vb.Build()
}

// Handler implements the HTTP resource operations
type Handler struct {
	characterService charactersvc.Service
	itemService      itemsvc.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
		itemService:      cfg.ItemService,
	}, nil
}

// RegisterRoutes mounts every resource operation on the router
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/healthz", h.healthz)

	characters := router.Group("/characters")
	{
		characters.POST("", h.createCharacter)
		characters.GET("", h.listCharacters)
		characters.GET("/:id", h.getCharacter)
		characters.PUT("/:id/adventurer-name", h.updateAdventurerName)
		characters.DELETE("/:id", h.deleteCharacter)

		characters.POST("/:id/items", h.addItem)
		characters.GET("/:id/items", h.listCharacterItems)
		characters.DELETE("/:id/items/:item_id", h.removeItem)
		characters.GET("/:id/amulet", h.getAmulet)
	}

	items := router.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:id", h.getItem)
	}
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
