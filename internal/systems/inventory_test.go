package systems

import (
	"errors"
	"testing"

	"tlb-server/internal/core/types"
	"tlb-server/internal/core/types/enums"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
)

func TestPickupAndDrop(t *testing.T) {
	w, l := createTestWorld(10, 10)
	a := spawnTestActor(t, w, "Hacker", true, geometry.P(3, 3))
	knife := newTestItem(w, "Flick Knife", enums.ItemCategoryWeapon)
	card := newTestItem(w, "Key Card", enums.ItemCategoryKey)
	w.SpawnItem(knife, 0, geometry.P(3, 3))
	w.SpawnItem(card, 0, geometry.P(3, 3))

	got, err := TryPickup(w, a.ID)
	if err != nil || got != card {
		t.Fatalf("first pickup = %v, %v; want the top item", got, err)
	}
	if got, _ := TryPickup(w, a.ID); got != knife {
		t.Fatalf("second pickup = %v", got)
	}
	if _, err := TryPickup(w, a.ID); !errors.Is(err, domain.ErrNothingHere) {
		t.Errorf("empty floor: err = %v", err)
	}

	eq := w.Equipment[a.ID]
	if eq.Active != knife.ID || eq.Passive != card.ID {
		t.Errorf("auto-equip = %+v", eq)
	}
	if _, ok := w.Positions[knife.ID]; ok {
		t.Error("carried item should have no position")
	}

	dropped, err := TryDrop(w, a.ID)
	if err != nil || dropped != knife {
		t.Fatalf("drop = %v, %v", dropped, err)
	}
	if !eq.Active.IsNil() {
		t.Error("dropping clears the equipment slot")
	}
	if items := l.Get(domain.IndexItem, geometry.P(3, 3)); len(items) != 1 || items[0].ID != knife.ID {
		t.Errorf("floor = %+v", items)
	}
}

func TestPickup_FullInventory(t *testing.T) {
	w, l := createTestWorld(10, 10)
	a := spawnTestActor(t, w, "Hacker", true, geometry.P(3, 3))
	w.Inventories[a.ID].MaxSlots = 1
	w.GiveItem(a.ID, newTestItem(w, "Lighter", enums.ItemCategoryItem))
	watch := newTestItem(w, "Watch", enums.ItemCategoryItem)
	w.SpawnItem(watch, 0, geometry.P(3, 3))

	if _, err := TryPickup(w, a.ID); !errors.Is(err, domain.ErrInventory) {
		t.Errorf("err = %v, want ErrInventory", err)
	}
	if len(l.Get(domain.IndexItem, geometry.P(3, 3))) != 1 {
		t.Error("item should stay on the floor")
	}
}

func TestSwapEquipment(t *testing.T) {
	w, _ := createTestWorld(10, 10)
	a := spawnTestActor(t, w, "Hacker", true, geometry.P(3, 3))
	if _, err := SwapEquipment(w, a.ID); !errors.Is(err, domain.ErrNothingHere) {
		t.Errorf("empty slots: err = %v", err)
	}

	knife := newTestItem(w, "Flick Knife", enums.ItemCategoryWeapon)
	card := newTestItem(w, "Key Card", enums.ItemCategoryKey)
	w.SpawnItem(knife, 0, geometry.P(3, 3))
	w.SpawnItem(card, 0, geometry.P(3, 3))
	for range 2 {
		if _, err := TryPickup(w, a.ID); err != nil {
			t.Fatalf("pickup: %v", err)
		}
	}
	eq := w.Equipment[a.ID]

	tests := []struct {
		name        string
		wantHand    *domain.Item
		wantPassive types.EntityID
	}{
		{"card to hand", card, knife.ID},
		{"knife back", knife, card.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SwapEquipment(w, a.ID)
			if err != nil || got != tt.wantHand {
				t.Fatalf("SwapEquipment = %v, %v; want %v", got, err, tt.wantHand)
			}
			if eq.Active == eq.Passive {
				t.Errorf("one item in both slots: %+v", eq)
			}
			if eq.Passive != tt.wantPassive {
				t.Errorf("passive = %v, want %v", eq.Passive, tt.wantPassive)
			}
		})
	}
}

func TestSwapEquipment_SingleSlot(t *testing.T) {
	w, _ := createTestWorld(10, 10)
	a := spawnTestActor(t, w, "Hacker", true, geometry.P(3, 3))
	card := newTestItem(w, "Key Card", enums.ItemCategoryKey)
	w.GiveItem(a.ID, card)
	w.Equipment[a.ID].AutoEquip(card)

	got, err := SwapEquipment(w, a.ID)
	if err != nil || got != card {
		t.Fatalf("SwapEquipment = %v, %v", got, err)
	}
	if !w.Equipment[a.ID].Passive.IsNil() {
		t.Error("passive slot should be empty after the swap")
	}
	if got, _ := SwapEquipment(w, a.ID); got != nil {
		t.Errorf("second swap leaves empty hands, got %v", got)
	}
}
