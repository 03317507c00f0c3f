package domain

import (
	"tlb-server/internal/core/types"
	"tlb-server/internal/core/types/enums"
)

// Actor - персонаж: игрок или NPC.
// Позиция, путь, инвентарь и ход хранятся в отдельных таблицах World по ID.
type Actor struct {
	ID          types.EntityID   `json:"id"`
	Kind        enums.EntityType `json:"kind"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`

	// PlayerControlled - актор получает метку "активный" и ввод игрока.
	PlayerControlled bool `json:"playerControlled"`
	// TakesTurns - участвует в пошаговом режиме.
	TakesTurns bool `json:"takesTurns"`

	// Speed - клеток в секунду при движении по пути.
	Speed float64 `json:"speed"`

	Glyph types.Glyph `json:"glyph"`

	Stats  *StatsComponent  `json:"stats,omitempty"`
	AI     *AIComponent     `json:"ai,omitempty"`
	Vision *VisionComponent `json:"vision,omitempty"`
}

// IsAlive - у актора есть здоровье и он жив.
func (a *Actor) IsAlive() bool {
	return a.Stats == nil || !a.Stats.IsDead
}

// IsHostile - NPC нападает на игроков.
func (a *Actor) IsHostile() bool {
	return a.AI != nil && a.AI.IsHostile
}

// VisionRadius возвращает радиус обзора или fallback.
func (a *Actor) VisionRadius(fallback int) int {
	if a.Vision == nil || a.Vision.Radius <= 0 {
		return fallback
	}
	return a.Vision.Radius
}

// Occupant - запись актора для индекса персонажей. Живые блокируют проход, но не обзор.
func (a *Actor) Occupant() Occupant {
	return Occupant{ID: a.ID, Blocking: a.IsAlive()}
}
