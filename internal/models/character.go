package models

import "time"

// Stat values every new character starts with.
const (
	DefaultCharacterHealth = 100
	DefaultCharacterPower  = 100
	DefaultCharacterMoney  = 0
)

// Join tables backing the inventory and equipped relations.
const (
	InventoryTable = "character_inventory"
	EquippedTable  = "character_equipped"
)

// Character is a named game entity owned by an Account.
type Character struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex:idx_characters_name;type:varchar(10);not null"`
	UserID    string    `json:"-" gorm:"index;type:varchar(20);not null"`
	Health    int       `json:"health" gorm:"not null"`
	Power     int       `json:"power" gorm:"not null"`
	Money     int       `json:"money" gorm:"not null"`
	Inventory []Item    `json:"-" gorm:"many2many:character_inventory"`
	Equipped  []Item    `json:"-" gorm:"many2many:character_equipped"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CharacterView is the public projection returned on create and delete.
type CharacterView struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
	Power  int    `json:"power"`
	Money  int    `json:"money"`
}

// CharacterDetailView adds the inventory and equipped sets to CharacterView.
type CharacterDetailView struct {
	CharacterView
	Inventory []ItemView `json:"inventory"`
	Equipped  []ItemView `json:"equipped"`
}

// View returns the summary projection.
func (c *Character) View() CharacterView {
	return CharacterView{
		Name:   c.Name,
		Health: c.Health,
		Power:  c.Power,
		Money:  c.Money,
	}
}

// DetailView returns the summary projection with the attached item relations.
// Relations that were not loaded are reported as empty lists.
func (c *Character) DetailView() CharacterDetailView {
	return CharacterDetailView{
		CharacterView: c.View(),
		Inventory:     itemViews(c.Inventory),
		Equipped:      itemViews(c.Equipped),
	}
}

func itemViews(items []Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for i := range items {
		views = append(views, items[i].View())
	}
	return views
}
