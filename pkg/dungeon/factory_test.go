package dungeon

import (
	"math/rand"
	"testing"

	"tlb-server/internal/core/types/enums"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
)

func buildTestTower(t *testing.T, seed int64) (*domain.World, []Floor) {
	t.Helper()
	tower := domain.NewTower()

	ground := domain.NewLevel(0, MapWidth, MapHeight)
	groundLayout := BuildTowerFloor(ground.Map)
	tower.Add(ground)

	upper, upperLayout := NewLevel(1, rand.New(rand.NewSource(seed))).WithRooms(8).Build()
	tower.Add(upper)

	floors := []Floor{{ground, groundLayout}, {upper, upperLayout}}
	w := domain.NewWorld(tower, 0)
	if err := PopulateTower(w, floors, rand.New(rand.NewSource(seed))); err != nil {
		t.Fatalf("PopulateTower: %v", err)
	}
	return w, floors
}

func TestPopulateTower_Ground(t *testing.T) {
	w, floors := buildTestTower(t, 1)
	ground := floors[0].Level

	players := 0
	for _, id := range w.ActorsOn(0) {
		if w.Actors[id].PlayerControlled {
			players++
		}
	}
	if players != 2 {
		t.Errorf("expected 2 players on ground floor, got %d", players)
	}

	guard, ok := w.ActorAt(0, geometry.P(31, 24))
	if !ok || guard.Name != Guard.Name {
		t.Fatalf("guard not found at (31,24)")
	}
	if !guard.IsHostile() {
		t.Error("guard should be hostile")
	}
	active, passive := w.Tools(guard.ID)
	if active == nil || active.Template != FlickKnife.Key {
		t.Errorf("guard active tool = %+v, want flick knife", active)
	}
	if passive == nil || !passive.IsKey() || passive.KeyLevel != DoorLevel {
		t.Errorf("guard passive tool = %+v, want key card", passive)
	}

	door, ok := w.InteractableAt(0, InnerDoorway)
	if !ok || door.Kind != domain.KeyDoor {
		t.Fatal("expected a key door in the doorway")
	}
	if !ground.IsBlocking(InnerDoorway) || !ground.IsSightBlocking(InnerDoorway) {
		t.Error("closed door should block the doorway")
	}

	if items := ground.Get(domain.IndexItem, geometry.P(27, 27)); len(items) != 1 {
		t.Errorf("expected manriki behind the door, got %v", items)
	}
}

func TestPopulateTower_Stairs(t *testing.T) {
	w, floors := buildTestTower(t, 3)

	down, ok := w.InteractableAt(0, TowerExit)
	if !ok || down.Kind != domain.Stairs {
		t.Fatal("expected stairs at the ground floor exit")
	}
	if down.Target.Level != 1 || down.Target.Cell() != floors[1].Layout.Start {
		t.Errorf("stairs lead to %+v, want level 1 start %v", down.Target, floors[1].Layout.Start)
	}

	up, ok := w.InteractableAt(1, floors[1].Layout.Start)
	if !ok || up.Kind != domain.Stairs {
		t.Fatal("expected return stairs on level 1")
	}
	if up.Target.Level != 0 || up.Target.Cell() != TowerExit {
		t.Errorf("return stairs lead to %+v", up.Target)
	}
}

func TestPopulateTower_UpperFloor(t *testing.T) {
	w, floors := buildTestTower(t, 11)
	upper := floors[1]

	for _, id := range w.ActorsOn(1) {
		a := w.Actors[id]
		if a.Kind != enums.EntityTypeNPC {
			t.Errorf("unexpected actor %s on level 1", a.Name)
		}
		cell := w.Positions[id].Cell()
		if upper.Layout.Rooms[0].Contains(cell) {
			t.Errorf("guard spawned in the start room at %v", cell)
		}
	}
}

func TestPopulateTower_NoFloors(t *testing.T) {
	w := domain.NewWorld(domain.NewTower(), 0)
	if err := PopulateTower(w, nil, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.Actors) != 0 {
		t.Error("expected empty world")
	}
}
