package domain

import (
	"slices"

	"tlb-server/internal/core/types"
	"tlb-server/internal/core/types/enums"
)

// --- КОМПОНЕНТЫ ---

// StatsComponent - здоровье персонажа
type StatsComponent struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	IsDead bool `json:"isDead"`
}

// AIComponent - поведение NPC
type AIComponent struct {
	IsHostile   bool `json:"isHostile"`
	AggroRadius int  `json:"aggroRadius"`
}

// VisionComponent - радиус обзора для FOV
type VisionComponent struct {
	Radius int `json:"radius"`
}

// InventoryComponent - что несёт персонаж (ID предметов в порядке подбора)
type InventoryComponent struct {
	Items    []types.EntityID `json:"items"`
	MaxSlots int              `json:"maxSlots"`
}

// EquipmentComponent - предметы в руках.
// Active - основной инструмент (оружие, ключ), Passive - запасной.
type EquipmentComponent struct {
	Active  types.EntityID `json:"active"`
	Passive types.EntityID `json:"passive"`
}

// IsFull проверяет, есть ли свободное место
func (inv *InventoryComponent) IsFull() bool {
	return inv.MaxSlots > 0 && len(inv.Items) >= inv.MaxSlots
}

func (inv *InventoryComponent) Add(id types.EntityID) {
	inv.Items = append(inv.Items, id)
}

// Remove удаляет предмет, сохраняя порядок остальных.
func (inv *InventoryComponent) Remove(id types.EntityID) bool {
	i := slices.Index(inv.Items, id)
	if i < 0 {
		return false
	}
	inv.Items = slices.Delete(inv.Items, i, i+1)
	return true
}

// Last - последний подобранный предмет.
func (inv *InventoryComponent) Last() (types.EntityID, bool) {
	if len(inv.Items) == 0 {
		return types.NilEntityID, false
	}
	return inv.Items[len(inv.Items)-1], true
}

func (inv *InventoryComponent) Contains(id types.EntityID) bool {
	return slices.Contains(inv.Items, id)
}

// Unequip снимает предмет из любого слота.
func (eq *EquipmentComponent) Unequip(id types.EntityID) {
	if eq.Active == id {
		eq.Active = types.NilEntityID
	}
	if eq.Passive == id {
		eq.Passive = types.NilEntityID
	}
}

// AutoEquip занимает пустой слот подходящим предметом:
// оружие в активный, снаряжение и ключ-карты в запасной.
func (eq *EquipmentComponent) AutoEquip(item *Item) {
	switch item.Category {
	case enums.ItemCategoryWeapon:
		if eq.Active.IsNil() {
			eq.Active = item.ID
		}
	case enums.ItemCategoryEquipment, enums.ItemCategoryKey:
		if eq.Passive.IsNil() {
			eq.Passive = item.ID
		}
	}
}
