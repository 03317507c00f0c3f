package systems

import (
	"slices"
	"testing"

	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
)

func pathTo(cells ...geometry.Pos) []domain.Position {
	out := make([]domain.Position, len(cells))
	for i, c := range cells {
		out[i] = domain.CellCenter(0, c)
	}
	return out
}

func TestAdvancePaths_WalksAndFinishes(t *testing.T) {
	w, l := createTestWorld(10, 10)
	a := spawnTestActor(t, w, "Runner", true, geometry.P(2, 2))
	w.Paths[a.ID] = domain.NewPath(pathTo(geometry.P(3, 2), geometry.P(4, 2)), 10)

	if done := AdvancePaths(w, 0.1); len(done) != 0 {
		t.Fatalf("first tick should not finish, got %v", done)
	}
	if cell := w.Positions[a.ID].Cell(); cell != geometry.P(3, 2) {
		t.Fatalf("after first tick cell = %v", cell)
	}
	if got := l.Get(domain.IndexCharacter, geometry.P(3, 2)); len(got) != 1 || got[0].ID != a.ID {
		t.Error("index should follow the position in the same tick")
	}
	if w.Paths[a.ID].Len() != 1 {
		t.Errorf("reached waypoint should be popped, %d left", w.Paths[a.ID].Len())
	}

	done := AdvancePaths(w, 0.1)
	if len(done) != 1 || done[0] != a.ID {
		t.Fatalf("second tick should finish the path, got %v", done)
	}
	if _, ok := w.Paths[a.ID]; ok {
		t.Error("finished path should be removed")
	}
	if !w.Positions[a.ID].ApproxEqual(domain.CellCenter(0, geometry.P(4, 2))) {
		t.Errorf("final position = %+v", w.Positions[a.ID])
	}
}

func TestAdvancePaths_PartialStep(t *testing.T) {
	w, l := createTestWorld(10, 10)
	a := spawnTestActor(t, w, "Slow", true, geometry.P(2, 2))
	w.Paths[a.ID] = domain.NewPath(pathTo(geometry.P(3, 2)), 2)

	AdvancePaths(w, 0.1) // 0.2 клетки: ещё в старой клетке
	if w.Positions[a.ID].Cell() != geometry.P(2, 2) {
		t.Errorf("cell changed too early: %v", w.Positions[a.ID].Cell())
	}
	if len(l.Get(domain.IndexCharacter, geometry.P(2, 2))) != 1 {
		t.Error("index must not move before the cell changes")
	}
}

func TestAdvancePaths_NeverOvershoots(t *testing.T) {
	w, _ := createTestWorld(10, 10)
	a := spawnTestActor(t, w, "Fast", true, geometry.P(2, 2))
	w.Paths[a.ID] = domain.NewPath(pathTo(geometry.P(3, 3)), 100)

	AdvancePaths(w, 1)
	if !w.Positions[a.ID].ApproxEqual(domain.CellCenter(0, geometry.P(3, 3))) {
		t.Errorf("step should clamp to the waypoint, got %+v", w.Positions[a.ID])
	}
}

func TestAdvancePaths_ObstructionAbandonsPath(t *testing.T) {
	w, l := createTestWorld(10, 10)
	a := spawnTestActor(t, w, "Runner", true, geometry.P(2, 2))
	w.Paths[a.ID] = domain.NewPath(pathTo(geometry.P(3, 2), geometry.P(4, 2), geometry.P(5, 2)), 10)
	spawnTestActor(t, w, "Blocker", false, geometry.P(3, 2))

	done := AdvancePaths(w, 0.1)
	if len(done) != 1 || done[0] != a.ID {
		t.Fatalf("obstructed walker should be reported finished, got %v", done)
	}
	if _, ok := w.Paths[a.ID]; ok {
		t.Error("whole path should be dropped")
	}
	if w.Positions[a.ID].Cell() != geometry.P(2, 2) {
		t.Error("obstructed walker must not move")
	}
	if len(l.Get(domain.IndexCharacter, geometry.P(3, 2))) != 1 {
		t.Error("blocker cell must be unchanged")
	}
}

func TestAdvancePaths_AlreadyAtWaypoint(t *testing.T) {
	w, _ := createTestWorld(10, 10)
	a := spawnTestActor(t, w, "Idle", true, geometry.P(2, 2))
	w.Paths[a.ID] = domain.NewPath(pathTo(geometry.P(2, 2)), 10)

	if done := AdvancePaths(w, 0.1); len(done) != 1 {
		t.Errorf("waypoint at current position should be consumed, got %v", done)
	}
}

func TestAdvancePaths_SortedAndMissing(t *testing.T) {
	w, _ := createTestWorld(10, 10)
	a := spawnTestActor(t, w, "A", true, geometry.P(2, 2))
	b := spawnTestActor(t, w, "B", true, geometry.P(6, 6))
	w.Paths[b.ID] = domain.NewPath(nil, 10)
	w.Paths[a.ID] = domain.NewPath(nil, 10)
	ghost := testGhostID(w)
	w.Paths[ghost] = domain.NewPath(pathTo(geometry.P(1, 1)), 10)

	done := AdvancePaths(w, 0.1)
	if len(done) != 3 || !slices.IsSorted(done) {
		t.Errorf("finished = %v, want 3 sorted ids", done)
	}
	if len(w.Paths) != 0 {
		t.Errorf("all paths should be removed, %d left", len(w.Paths))
	}
}
