package systems

import (
	"fmt"

	"tlb-server/internal/core/types"
	"tlb-server/internal/domain"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// --- PICKUP ---

// TryPickup поднимает верхний предмет из-под ног персонажа.
// Оружие само ложится в пустой активный слот, снаряжение и ключ-карты - в запасной.
func TryPickup(w *domain.World, actorID types.EntityID) (*domain.Item, error) {
	level, ok := w.LevelOf(actorID)
	inv, hasInv := w.Inventories[actorID]
	if !ok || !hasInv {
		return nil, fmt.Errorf("pickup %v: %w", actorID, domain.ErrUnknownActor)
	}
	cell, _, _ := w.CellOf(actorID)

	occ, ok := level.Pop(domain.IndexItem, cell)
	if !ok {
		return nil, domain.ErrNothingHere
	}
	item, ok := w.Items[occ.ID]
	if !ok {
		return nil, fmt.Errorf("pickup: item %v is indexed but unknown", occ.ID)
	}
	if inv.IsFull() {
		level.Push(domain.IndexItem, occ, cell)
		return nil, domain.ErrInventory
	}

	delete(w.Positions, item.ID)
	inv.Add(item.ID)
	if eq, ok := w.Equipment[actorID]; ok {
		eq.AutoEquip(item)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"actor_id":  actorID,
		"item_id":   item.ID,
		"item":      item.Name,
	}).Debug("Item picked up.")
	return item, nil
}

// --- DROP ---

// TryDrop выкладывает последний подобранный предмет под ноги.
func TryDrop(w *domain.World, actorID types.EntityID) (*domain.Item, error) {
	level, ok := w.LevelOf(actorID)
	inv, hasInv := w.Inventories[actorID]
	if !ok || !hasInv {
		return nil, fmt.Errorf("drop %v: %w", actorID, domain.ErrUnknownActor)
	}
	itemID, ok := inv.Last()
	if !ok {
		return nil, domain.ErrNothingHere
	}
	item := w.Items[itemID]

	inv.Remove(itemID)
	if eq, ok := w.Equipment[actorID]; ok {
		eq.Unequip(itemID)
	}
	pos := w.Positions[actorID]
	level.Push(domain.IndexItem, item.Occupant(), pos.Cell())
	w.Positions[itemID] = domain.CellCenter(pos.Level, pos.Cell())

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"actor_id":  actorID,
		"item_id":   itemID,
	}).Debug("Item dropped.")
	return item, nil
}

// --- EQUIP ---

// SwapEquipment меняет местами активный и запасной слоты.
// Возвращает предмет, оказавшийся в руках (nil - руки пусты).
func SwapEquipment(w *domain.World, actorID types.EntityID) (*domain.Item, error) {
	eq, ok := w.Equipment[actorID]
	if !ok {
		return nil, fmt.Errorf("equip %v: %w", actorID, domain.ErrUnknownActor)
	}
	if eq.Active.IsNil() && eq.Passive.IsNil() {
		return nil, domain.ErrNothingHere
	}
	eq.Active, eq.Passive = eq.Passive, eq.Active

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"actor_id":  actorID,
		"active":    eq.Active,
		"passive":   eq.Passive,
	}).Debug("Equipment slots swapped.")
	return w.Items[eq.Active], nil
}
