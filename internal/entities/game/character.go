// Package game implements the character and magic item entities
package game

// Character represents a player character with base combat attributes.
// NOTE: This is a data-only struct. Derived stats (total strength/defense,
// amulet lookup) are computed by the pure functions in this package over a
// materialized item list, never recomputed implicitly on access.
type Character struct {
	ID             int64
	Name           string
	AdventurerName string
	Class          Class
	Level          int32
	BaseStrength   int32
	BaseDefense    int32
	CreatedAt      int64
	UpdatedAt      int64
}

// TotalStrength returns the character's base strength plus the strength of
// every owned item
func (c *Character) TotalStrength(items []*MagicItem) int32 {
	total := c.BaseStrength
	for _, item := range items {
		total += item.Strength
	}
	return total
}

// TotalDefense returns the character's base defense plus the defense of
// every owned item
func (c *Character) TotalDefense(items []*MagicItem) int32 {
	total := c.BaseDefense
	for _, item := range items {
		total += item.Defense
	}
	return total
}

// FindAmulet returns the amulet in the item list, or nil when there is none.
// A character owns at most one amulet; the first match wins.
func FindAmulet(items []*MagicItem) *MagicItem {
	for _, item := range items {
		if item.Type == ItemTypeAmulet {
			return item
		}
	}
	return nil
}
