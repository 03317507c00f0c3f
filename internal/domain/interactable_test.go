package domain

import (
	"testing"

	"tlb-server/internal/core/types/enums"
)

func TestInteractable_Toggle(t *testing.T) {
	key := func(level int) *Item {
		return &Item{Category: enums.ItemCategoryKey, KeyLevel: level}
	}
	knife := &Item{Category: enums.ItemCategoryWeapon, Damage: 5, Range: 1}

	tests := []struct {
		name     string
		minLevel int
		open     bool
		active   *Item
		passive  *Item
		changed  bool
		wantOpen bool
	}{
		{"open door closes", 3, true, nil, nil, true, false},
		{"bare hands on level 0", 0, false, nil, nil, true, true},
		{"bare hands on level 1", 1, false, nil, nil, false, false},
		{"exact key", 2, false, key(2), nil, true, true},
		{"stronger key", 2, false, key(5), nil, true, true},
		{"weak key", 2, false, key(1), nil, false, false},
		{"knife active, key passive", 2, false, knife, key(3), true, true},
		{"weak active, weak passive", 4, false, key(1), key(2), false, false},
		{"knife on level 0", 0, false, knife, nil, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			door := NewKeyDoor(testID(1), tt.minLevel)
			door.Open = tt.open
			if got := door.Toggle(tt.active, tt.passive); got != tt.changed {
				t.Errorf("Toggle() = %v, want %v", got, tt.changed)
			}
			if door.Open != tt.wantOpen {
				t.Errorf("Open = %v, want %v", door.Open, tt.wantOpen)
			}
			if door.IsBlocking() == door.Open || door.IsSightBlocking() == door.Open {
				t.Error("door blocks exactly when closed")
			}
		})
	}
}

func TestInteractable_StairsNeverBlock(t *testing.T) {
	stairs := NewStairs(testID(2), Position{Level: 1, X: 5.5, Y: 5.5})
	if stairs.Toggle(nil, nil) {
		t.Error("stairs cannot be toggled")
	}
	occ := stairs.Occupant()
	if occ.Blocking || occ.SightBlocking {
		t.Error("stairs should not block")
	}
}

func TestStats_TakeDamageAndHeal(t *testing.T) {
	s := &StatsComponent{HP: 10, MaxHP: 20}
	if s.TakeDamage(4) || s.HP != 6 {
		t.Fatalf("after 4 damage: %+v", s)
	}
	s.Heal(100)
	if s.HP != 20 {
		t.Errorf("Heal should cap at MaxHP, got %d", s.HP)
	}
	if !s.TakeDamage(25) || !s.IsDead || s.HP != 0 {
		t.Errorf("lethal damage: %+v", s)
	}
	if s.TakeDamage(5) {
		t.Error("a corpse cannot die twice")
	}
	s.Heal(5)
	if s.HP != 0 {
		t.Error("corpses are not healed")
	}
}

func TestInventory(t *testing.T) {
	inv := &InventoryComponent{MaxSlots: 2}
	inv.Add(testID(1))
	inv.Add(testID(2))
	if !inv.IsFull() {
		t.Error("inventory should be full")
	}
	if last, _ := inv.Last(); last != testID(2) {
		t.Errorf("Last = %v", last)
	}
	if !inv.Remove(testID(1)) || inv.Contains(testID(1)) {
		t.Error("Remove failed")
	}
	if inv.Remove(testID(9)) {
		t.Error("Remove of a missing item should fail")
	}

	eq := &EquipmentComponent{Active: testID(2), Passive: testID(2)}
	eq.Unequip(testID(2))
	if !eq.Active.IsNil() || !eq.Passive.IsNil() {
		t.Error("Unequip should clear both slots")
	}
}
