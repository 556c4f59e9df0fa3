package game

// MagicItem represents an item with a fixed type and attribute bonuses.
// OwnerID is nil while the item is unassigned; an item belongs to at most
// one character at a time.
type MagicItem struct {
	ID        int64
	Name      string
	Type      ItemType
	Strength  int32
	Defense   int32
	OwnerID   *int64
	CreatedAt int64
	UpdatedAt int64
}

// OwnedBy reports whether the item is currently assigned to the given character
func (m *MagicItem) OwnedBy(characterID int64) bool {
	return m.OwnerID != nil && *m.OwnerID == characterID
}

// Unowned reports whether the item has no owner
func (m *MagicItem) Unowned() bool {
	return m.OwnerID == nil
}
