package systems

import (
	"testing"

	"tlb-server/internal/core/types/enums"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
)

func TestCastRay(t *testing.T) {
	w, l := createTestWorld(20, 10)
	shooter := spawnTestActor(t, w, "Shooter", true, geometry.P(2, 5))
	target := spawnTestActor(t, w, "Target", false, geometry.P(6, 5))
	addWall(l, geometry.P(10, 5))

	t.Run("hits first character", func(t *testing.T) {
		res := CastRay(l, shooter.ID, geometry.P(2, 5), geometry.P(8, 5), 10)
		if res.Hit != target.ID || res.HitCell != geometry.P(6, 5) {
			t.Errorf("Hit = %v at %v", res.Hit, res.HitCell)
		}
		if len(res.Cells) != 4 {
			t.Errorf("ray should include the hit cell and exclude the origin, got %v", res.Cells)
		}
	})

	t.Run("range limit", func(t *testing.T) {
		res := CastRay(l, shooter.ID, geometry.P(2, 5), geometry.P(6, 5), 3)
		if !res.Hit.IsNil() || len(res.Cells) != 3 {
			t.Errorf("short ray: hit=%v cells=%v", res.Hit, res.Cells)
		}
	})

	t.Run("stops before wall", func(t *testing.T) {
		res := CastRay(l, shooter.ID, geometry.P(8, 5), geometry.P(9, 5), 10)
		if !res.Blocked {
			t.Fatal("ray should be blocked by the wall")
		}
		for _, c := range res.Cells {
			if c == geometry.P(10, 5) {
				t.Error("wall cell must not be part of the ray")
			}
		}
	})

	t.Run("does not hit shooter", func(t *testing.T) {
		res := CastRay(l, target.ID, geometry.P(6, 5), geometry.P(7, 5), 2)
		if !res.Hit.IsNil() {
			t.Errorf("unexpected hit %v", res.Hit)
		}
	})

	t.Run("degenerate", func(t *testing.T) {
		if res := CastRay(l, shooter.ID, geometry.P(2, 5), geometry.P(2, 5), 5); len(res.Cells) != 0 {
			t.Error("ray toward own cell is empty")
		}
	})
}

func TestConeCells(t *testing.T) {
	w, l := createTestWorld(20, 20)
	shooter := spawnTestActor(t, w, "Shooter", true, geometry.P(5, 10))

	cells := ConeCells(l, shooter.ID, geometry.P(5, 10), geometry.P(6, 10), 4, 2)
	if len(cells) == 0 {
		t.Fatal("cone should cover some cells")
	}
	hasAim := false
	for _, c := range cells {
		if c == geometry.P(5, 10) {
			t.Error("cone must exclude the shooter cell")
		}
		if c.X < 5 || geometry.P(5, 10).ChebyshevTo(c) > 4 {
			t.Errorf("cell %v outside the cone range", c)
		}
		if c == geometry.P(8, 10) {
			hasAim = true
		}
	}
	if !hasAim {
		t.Error("cone should include the aim line")
	}
	if spread := ConeCells(l, shooter.ID, geometry.P(5, 10), geometry.P(6, 10), 4, 0); len(spread) != 0 {
		t.Error("zero spread gives a degenerate cone")
	}
}

func TestFindInteractable(t *testing.T) {
	w, l := createTestWorld(10, 10)
	a := spawnTestActor(t, w, "Hacker", true, geometry.P(4, 4))
	door := domain.NewKeyDoor(w.NextID(enums.EntityTypeInteractable), 0)
	w.SpawnInteractable(door, 0, geometry.P(5, 5))
	far := domain.NewKeyDoor(w.NextID(enums.EntityTypeInteractable), 0)
	w.SpawnInteractable(far, 0, geometry.P(7, 7))

	cell, _, _ := w.CellOf(a.ID)
	if it, p, ok := FindInteractable(w, l, cell, nil); !ok || it != door || p != geometry.P(5, 5) {
		t.Errorf("auto target = %v at %v", it, p)
	}
	target := geometry.P(7, 7)
	if _, _, ok := FindInteractable(w, l, cell, &target); ok {
		t.Error("objects outside the 3x3 area are out of reach")
	}
}
