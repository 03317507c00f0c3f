package domain

import (
	"tlb-server/internal/core/types"
)

// InteractableKind - вид интерактивного объекта.
type InteractableKind uint8

const (
	// KeyDoor открывается ключ-картой уровня не ниже MinLevel.
	KeyDoor InteractableKind = iota
	// Stairs переносит персонажа на связанный этаж.
	Stairs
)

func (k InteractableKind) String() string {
	if k == Stairs {
		return "STAIRS"
	}
	return "KEY_DOOR"
}

// Interactable - дверь или лестница. Живёт в индексе персонажей.
type Interactable struct {
	ID   types.EntityID   `json:"id"`
	Kind InteractableKind `json:"kind"`
	Name string           `json:"name"`

	// Дверь
	MinLevel int  `json:"minLevel"`
	Open     bool `json:"open"`

	// Лестница
	Target Position `json:"target"`
}

func NewKeyDoor(id types.EntityID, minLevel int) *Interactable {
	return &Interactable{ID: id, Kind: KeyDoor, Name: "Дверь", MinLevel: minLevel}
}

func NewStairs(id types.EntityID, target Position) *Interactable {
	return &Interactable{ID: id, Kind: Stairs, Name: "Лестница", Target: target}
}

// opensWith - откроет ли инструмент закрытую дверь.
func (it *Interactable) opensWith(tool *Item) bool {
	if tool != nil && tool.IsKey() {
		return tool.KeyLevel >= it.MinLevel
	}
	return it.MinLevel == 0
}

// Toggle применяет правила двери к активному и запасному инструментам.
// Открытая дверь закрывается. Закрытая открывается активным инструментом,
// а если он не подошёл - запасным. Возвращает true, если состояние изменилось.
func (it *Interactable) Toggle(active, passive *Item) bool {
	if it.Kind != KeyDoor {
		return false
	}
	if it.Open {
		it.Open = false
		return true
	}
	if it.opensWith(active) || it.opensWith(passive) {
		it.Open = true
		return true
	}
	return false
}

func (it *Interactable) IsBlocking() bool {
	return it.Kind == KeyDoor && !it.Open
}

func (it *Interactable) IsSightBlocking() bool {
	return it.Kind == KeyDoor && !it.Open
}

func (it *Interactable) Occupant() Occupant {
	return Occupant{ID: it.ID, Blocking: it.IsBlocking(), SightBlocking: it.IsSightBlocking()}
}

func (it *Interactable) Glyph() types.Glyph {
	switch {
	case it.Kind == Stairs:
		return types.MakeGlyph(types.ColorPlayer, '>')
	case it.Open:
		return types.MakeGlyph(types.ColorDoor, '_')
	}
	return types.MakeGlyph(types.ColorDoor, 'D')
}
