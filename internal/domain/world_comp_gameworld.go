package domain

import (
	"errors"
	"fmt"
	"slices"

	"tlb-server/internal/core/types"
	"tlb-server/internal/geometry"
)

// LevelOf возвращает этаж, на котором стоит сущность.
func (w *World) LevelOf(id types.EntityID) (*Level, bool) {
	pos, ok := w.Positions[id]
	if !ok {
		return nil, false
	}
	return w.Tower.Get(pos.Level)
}

// CellOf - клетка сущности и её этаж.
func (w *World) CellOf(id types.EntityID) (geometry.Pos, LevelID, bool) {
	pos, ok := w.Positions[id]
	if !ok {
		return geometry.Pos{}, 0, false
	}
	return pos.Cell(), pos.Level, true
}

// indexOf - в каком подиндексе живёт сущность и с какой записью.
func (w *World) indexOf(id types.EntityID) (IndexKind, Occupant, bool) {
	if a, ok := w.Actors[id]; ok {
		return IndexCharacter, a.Occupant(), true
	}
	if it, ok := w.Interactables[id]; ok {
		return IndexCharacter, it.Occupant(), true
	}
	if it, ok := w.Items[id]; ok {
		return IndexItem, it.Occupant(), true
	}
	return IndexCharacter, Occupant{}, false
}

func (w *World) place(id types.EntityID, pos Position) error {
	l, ok := w.Tower.Get(pos.Level)
	if !ok {
		return fmt.Errorf("place %v: level %d not found", id, pos.Level)
	}
	kind, occ, _ := w.indexOf(id)
	if !l.Push(kind, occ, pos.Cell()) {
		return fmt.Errorf("place %v: cell %v out of bounds", id, pos.Cell())
	}
	w.Positions[id] = pos
	return nil
}

func (w *World) unplace(id types.EntityID) {
	pos, ok := w.Positions[id]
	if !ok {
		return
	}
	if l, ok := w.Tower.Get(pos.Level); ok {
		kind, _, _ := w.indexOf(id)
		l.Remove(kind, id, pos.Cell())
	}
	delete(w.Positions, id)
}

// SpawnActor ставит персонажа в центр клетки и заводит ему инвентарь.
func (w *World) SpawnActor(a *Actor, level LevelID, cell geometry.Pos) error {
	w.Actors[a.ID] = a
	if err := w.place(a.ID, CellCenter(level, cell)); err != nil {
		delete(w.Actors, a.ID)
		return err
	}
	w.Inventories[a.ID] = &InventoryComponent{MaxSlots: DefaultInventorySlots}
	w.Equipment[a.ID] = &EquipmentComponent{}
	return nil
}

// SpawnItem кладёт предмет на пол.
func (w *World) SpawnItem(it *Item, level LevelID, cell geometry.Pos) error {
	w.Items[it.ID] = it
	if err := w.place(it.ID, CellCenter(level, cell)); err != nil {
		delete(w.Items, it.ID)
		return err
	}
	return nil
}

// SpawnInteractable ставит дверь или лестницу.
func (w *World) SpawnInteractable(it *Interactable, level LevelID, cell geometry.Pos) error {
	w.Interactables[it.ID] = it
	if err := w.place(it.ID, CellCenter(level, cell)); err != nil {
		delete(w.Interactables, it.ID)
		return err
	}
	return nil
}

// GiveItem регистрирует предмет сразу в инвентаре владельца.
func (w *World) GiveItem(owner types.EntityID, it *Item) error {
	inv, ok := w.Inventories[owner]
	if !ok {
		return fmt.Errorf("give %v: %w", owner, ErrUnknownActor)
	}
	if inv.IsFull() {
		return ErrInventory
	}
	w.Items[it.ID] = it
	inv.Add(it.ID)
	return nil
}

// Despawn убирает сущность из индекса и всех таблиц.
func (w *World) Despawn(id types.EntityID) {
	w.unplace(id)
	delete(w.Actors, id)
	delete(w.Items, id)
	delete(w.Interactables, id)
	delete(w.Paths, id)
	delete(w.Inventories, id)
	delete(w.Equipment, id)
}

// Relocate переносит сущность на другую клетку, в том числе на другой этаж.
// Текущий путь сбрасывается. При ошибке сущность остаётся на прежнем месте.
func (w *World) Relocate(id types.EntityID, to Position) error {
	from, ok := w.Positions[id]
	if !ok {
		return fmt.Errorf("relocate %v: %w", id, ErrUnknownActor)
	}
	if _, ok := w.Tower.Get(to.Level); !ok {
		return fmt.Errorf("relocate %v: level %d not found", id, to.Level)
	}
	w.unplace(id)
	if err := w.place(id, to); err != nil {
		if rerr := w.place(id, from); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}
	delete(w.Paths, id)
	return nil
}

// ActorsOn - ID персонажей на этаже по возрастанию.
func (w *World) ActorsOn(level LevelID) []types.EntityID {
	var ids []types.EntityID
	for id := range w.Actors {
		if pos, ok := w.Positions[id]; ok && pos.Level == level {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// ActorIDs - все персонажи по возрастанию ID.
func (w *World) ActorIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(w.Actors))
	for id := range w.Actors {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Tools возвращает предметы в руках: активный и запасной.
func (w *World) Tools(id types.EntityID) (active, passive *Item) {
	eq, ok := w.Equipment[id]
	if !ok {
		return nil, nil
	}
	return w.Items[eq.Active], w.Items[eq.Passive]
}

// InteractableAt ищет интерактивный объект в клетке этажа.
func (w *World) InteractableAt(level LevelID, cell geometry.Pos) (*Interactable, bool) {
	l, ok := w.Tower.Get(level)
	if !ok {
		return nil, false
	}
	for _, occ := range l.Get(IndexCharacter, cell) {
		if it, ok := w.Interactables[occ.ID]; ok {
			return it, true
		}
	}
	return nil, false
}

// ActorAt - живой персонаж в клетке (верхний из стопки).
func (w *World) ActorAt(level LevelID, cell geometry.Pos) (*Actor, bool) {
	l, ok := w.Tower.Get(level)
	if !ok {
		return nil, false
	}
	occs := l.Get(IndexCharacter, cell)
	for i := len(occs) - 1; i >= 0; i-- {
		if a, ok := w.Actors[occs[i].ID]; ok && a.IsAlive() {
			return a, true
		}
	}
	return nil, false
}
