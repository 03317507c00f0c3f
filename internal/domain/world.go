package domain

import (
	"tlb-server/internal/core/types"
	"tlb-server/internal/core/types/enums"
)

// World - таблицы данных симуляции, индексированные по ID сущности.
// Единственный владелец - цикл симуляции; методы не потокобезопасны.
type World struct {
	Tower *Tower

	Actors        map[types.EntityID]*Actor
	Items         map[types.EntityID]*Item
	Interactables map[types.EntityID]*Interactable

	// Positions - только для сущностей, стоящих на этаже.
	// Предметы в инвентаре позиции не имеют.
	Positions   map[types.EntityID]Position
	Paths       map[types.EntityID]*Path
	Inventories map[types.EntityID]*InventoryComponent
	Equipment   map[types.EntityID]*EquipmentComponent

	// Generation растёт при каждом сбросе; ID прошлых поколений не совпадут с новыми.
	Generation uint32

	ids *IDAllocator
}

func NewWorld(tower *Tower, generation uint32) *World {
	w := &World{Tower: tower}
	w.reset(generation)
	return w
}

func (w *World) reset(generation uint32) {
	w.Actors = make(map[types.EntityID]*Actor)
	w.Items = make(map[types.EntityID]*Item)
	w.Interactables = make(map[types.EntityID]*Interactable)
	w.Positions = make(map[types.EntityID]Position)
	w.Paths = make(map[types.EntityID]*Path)
	w.Inventories = make(map[types.EntityID]*InventoryComponent)
	w.Equipment = make(map[types.EntityID]*EquipmentComponent)
	w.Generation = generation
	w.ids = NewIDAllocator(generation)
}

// NextID выдаёт ID нового поколения.
func (w *World) NextID(kind enums.EntityType) types.EntityID {
	return w.ids.Next(kind)
}

// Clear удаляет все сущности, очищает индексы этажей и начинает новое поколение ID.
// Карты тайлов не трогает.
func (w *World) Clear() {
	w.Tower.ClearAll()
	w.reset(w.Generation + 1)
}
