package systems

import (
	"testing"

	"tlb-server/internal/core/types/enums"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
)

func TestHasLineOfSight(t *testing.T) {
	// Комната 7x7, внутри:
	// . . . . .
	// . . # . .  (3,2) - стена
	// . # # # .  (2,3), (3,3), (4,3) - стена
	// . . # . .  (3,4) - стена
	// . . . . .
	l := createTestLevel(7, 7)
	for _, p := range []geometry.Pos{{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 4}} {
		addWall(l, p)
	}

	tests := []struct {
		name string
		p1   geometry.Pos
		p2   geometry.Pos
		want bool
	}{
		{"Clear horizontal", geometry.P(1, 1), geometry.P(5, 1), true},
		{"Blocked horizontal", geometry.P(1, 3), geometry.P(5, 3), false},
		{"Clear diagonal", geometry.P(1, 1), geometry.P(2, 2), true},
		{"Blocked diagonal", geometry.P(1, 1), geometry.P(5, 5), false},
		{"Adjacent wall", geometry.P(3, 1), geometry.P(3, 2), true},
		{"Behind wall", geometry.P(3, 1), geometry.P(3, 5), false},
		{"Same cell", geometry.P(1, 1), geometry.P(1, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasLineOfSight(l, tt.p1, tt.p2); got != tt.want {
				t.Errorf("HasLineOfSight(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

func TestHasLineOfSight_ClosedDoor(t *testing.T) {
	w, l := createTestWorld(10, 5)
	door := domain.NewKeyDoor(w.NextID(enums.EntityTypeInteractable), 1)
	if err := w.SpawnInteractable(door, 0, geometry.P(4, 2)); err != nil {
		t.Fatal(err)
	}
	if HasLineOfSight(l, geometry.P(1, 2), geometry.P(7, 2)) {
		t.Error("closed door should block sight")
	}
	ApplyDoor(l, door, geometry.P(4, 2), nil, &domain.Item{Category: enums.ItemCategoryKey, KeyLevel: 1})
	if !HasLineOfSight(l, geometry.P(1, 2), geometry.P(7, 2)) {
		t.Error("open door should not block sight")
	}
}
