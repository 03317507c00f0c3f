package domain

import (
	"tlb-server/internal/core/types"
	"tlb-server/internal/core/types/enums"
)

// Item - предмет: лежит в индексе предметов или в инвентаре.
type Item struct {
	ID          types.EntityID     `json:"id"`
	Template    string             `json:"template"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Category    enums.ItemCategory `json:"category"`
	Rarity      enums.Rarity       `json:"rarity"`

	// Оружие
	Damage int `json:"damage,omitempty"`
	Range  int `json:"range,omitempty"`
	// Spread > 0 - оружие бьёт конусом (цепь манрики).
	Spread int `json:"spread,omitempty"`

	// KeyLevel - уровень доступа ключ-карты.
	KeyLevel int `json:"keyLevel,omitempty"`
}

func (it *Item) IsWeapon() bool {
	return it.Category == enums.ItemCategoryWeapon
}

func (it *Item) IsKey() bool {
	return it.Category == enums.ItemCategoryKey
}

// Glyph - символ по категории, цвет по редкости.
func (it *Item) Glyph() types.Glyph {
	return types.MakeGlyph(types.RarityColor(it.Rarity), it.Category.Symbol())
}

// Occupant - предметы не мешают ни проходу, ни обзору.
func (it *Item) Occupant() Occupant {
	return Occupant{ID: it.ID}
}
