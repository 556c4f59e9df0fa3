package game

// Class identifies a character class
type Class string

// Character classes
const (
	ClassWarrior Class = "Warrior"
	ClassMage    Class = "Mage"
	ClassArcher  Class = "Archer"
	ClassRogue   Class = "Rogue"
	ClassBard    Class = "Bard"
)

// Classes lists every valid character class in declaration order
func Classes() []Class {
	return []Class{ClassWarrior, ClassMage, ClassArcher, ClassRogue, ClassBard}
}

// ClassNames returns the valid class values as plain strings
func ClassNames() []string {
	classes := Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = string(c)
	}
	return names
}

// IsValid reports whether the class is one of the known classes
func (c Class) IsValid() bool {
	for _, known := range Classes() {
		if c == known {
			return true
		}
	}
	return false
}

// ItemType identifies the kind of a magic item
type ItemType string

// Magic item types
const (
	ItemTypeWeapon ItemType = "Weapon"
	ItemTypeArmor  ItemType = "Armor"
	ItemTypeAmulet ItemType = "Amulet"
)

// ItemTypes lists every valid item type in declaration order
func ItemTypes() []ItemType {
	return []ItemType{ItemTypeWeapon, ItemTypeArmor, ItemTypeAmulet}
}

// ItemTypeNames returns the valid item type values as plain strings
func ItemTypeNames() []string {
	types := ItemTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

// IsValid reports whether the item type is one of the known types
func (t ItemType) IsValid() bool {
	for _, known := range ItemTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Attribute bounds shared by characters and items
const (
	// AttributeMin is the lowest value a strength or defense attribute may hold
	AttributeMin = 0
	// AttributeMax is the highest value a strength or defense attribute may hold
	AttributeMax = 10
	// BasePointBudget caps the sum of a character's base strength and defense
	BasePointBudget = 10
	// MinLevel is the lowest valid character level
	MinLevel = 1
)
