package models

import "time"

// ItemStats is the stat block of a catalog item. Both stats are optional.
type ItemStats struct {
	Health *int `json:"health,omitempty"`
	Power  *int `json:"power,omitempty"`
}

// Item represents a catalog entry.
type Item struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Code      int       `json:"code" gorm:"uniqueIndex:idx_items_code;not null"`
	Name      string    `json:"name" gorm:"type:varchar(20);not null"`
	Stats     ItemStats `json:"stats" gorm:"embedded;embeddedPrefix:stats_"`
	Price     int       `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// ItemView is the public projection of an Item.
type ItemView struct {
	Code  int       `json:"code"`
	Name  string    `json:"name"`
	Stats ItemStats `json:"stats"`
	Price int       `json:"price"`
}

// View returns the public projection.
func (i *Item) View() ItemView {
	return ItemView{
		Code:  i.Code,
		Name:  i.Name,
		Stats: i.Stats,
		Price: i.Price,
	}
}

// ItemPatch lists the fields of an item update. A nil field was not supplied
// and must leave the stored value untouched.
type ItemPatch struct {
	Name  *string
	Stats *ItemStats
	Price *int
}

// Empty reports whether the patch carries no field at all.
func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Stats == nil && p.Price == nil
}

// Apply overwrites the supplied fields of item.
func (p ItemPatch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Stats != nil {
		item.Stats = *p.Stats
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
}
