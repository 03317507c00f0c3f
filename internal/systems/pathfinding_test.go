package systems

import (
	"testing"

	"tlb-server/internal/core/types"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
)

func TestFindPath_SameCell(t *testing.T) {
	l := createTestLevel(10, 10)
	if path := FindPath(l, types.NilEntityID, geometry.P(3, 3), geometry.P(3, 3), PathOptions{}); len(path) != 0 {
		t.Errorf("path to own cell should be empty, got %v", path)
	}
}

func TestFindPath_Straight(t *testing.T) {
	l := createTestLevel(10, 10)
	path := FindPath(l, types.NilEntityID, geometry.P(1, 1), geometry.P(5, 1), PathOptions{})
	if len(path) != 4 {
		t.Fatalf("len(path) = %d, want 4", len(path))
	}
	for i, w := range path {
		want := domain.CellCenter(0, geometry.P(2+i, 1))
		if !w.ApproxEqual(want) {
			t.Errorf("waypoint %d = %+v, want %+v", i, w, want)
		}
	}
}

func TestFindPath_Diagonal(t *testing.T) {
	l := createTestLevel(10, 10)
	path := FindPath(l, types.NilEntityID, geometry.P(1, 1), geometry.P(4, 4), PathOptions{})
	if len(path) != 3 {
		t.Errorf("diagonal path should take 3 steps, got %d", len(path))
	}
}

func TestFindPath_EnclosedGoal(t *testing.T) {
	l := createTestLevel(12, 12)
	goal := geometry.P(6, 6)
	for _, n := range goal.Neighbors8() {
		addWall(l, n)
	}
	if path := FindPath(l, types.NilEntityID, geometry.P(1, 1), goal, PathOptions{}); len(path) != 0 {
		t.Errorf("enclosed goal should give an empty path, got %d steps", len(path))
	}
}

func TestFindPath_NotPlannableGoal(t *testing.T) {
	l := createTestLevel(10, 10)
	tests := []struct {
		name string
		goal geometry.Pos
	}{
		{"wall", geometry.P(0, 5)},
		{"out of bounds", geometry.P(20, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if path := FindPath(l, types.NilEntityID, geometry.P(2, 2), tt.goal, PathOptions{}); len(path) != 0 {
				t.Errorf("got %d steps, want none", len(path))
			}
		})
	}
}

func TestFindPath_NoCornerCutting(t *testing.T) {
	l := createTestLevel(10, 10)
	// . # .
	// . . .   путь (1,1) -> (2,2) не может срезать угол стены (2,1)
	addWall(l, geometry.P(2, 1))
	path := FindPath(l, types.NilEntityID, geometry.P(1, 1), geometry.P(2, 2), PathOptions{})
	for _, c := range PathCells(path) {
		if c == geometry.P(2, 1) {
			t.Error("path must not enter a wall")
		}
	}
	if len(path) != 2 {
		t.Errorf("corner cut should be forbidden: got %d steps, want 2", len(path))
	}
}

func TestFindPath_AvoidsOthersButNotSelf(t *testing.T) {
	w, l := createTestWorld(10, 5)
	self := spawnTestActor(t, w, "Self", true, geometry.P(1, 2))
	spawnTestActor(t, w, "Blocker", false, geometry.P(4, 2))

	path := FindPath(l, self.ID, geometry.P(1, 2), geometry.P(7, 2), PathOptions{})
	if len(path) == 0 {
		t.Fatal("path should route around the blocker")
	}
	for _, c := range PathCells(path) {
		if c == geometry.P(4, 2) {
			t.Error("path must not cross another character")
		}
	}
}

func TestFindPath_Deterministic(t *testing.T) {
	l := createTestLevel(20, 20)
	a := PathCells(FindPath(l, types.NilEntityID, geometry.P(2, 2), geometry.P(15, 9), PathOptions{}))
	for i := 0; i < 5; i++ {
		b := PathCells(FindPath(l, types.NilEntityID, geometry.P(2, 2), geometry.P(15, 9), PathOptions{}))
		if len(a) != len(b) {
			t.Fatalf("run %d: length %d != %d", i, len(b), len(a))
		}
		for j := range a {
			if a[j] != b[j] {
				t.Fatalf("run %d differs at step %d", i, j)
			}
		}
	}
}

func TestFindPath_MaxNodes(t *testing.T) {
	l := createTestLevel(30, 30)
	if path := FindPath(l, types.NilEntityID, geometry.P(1, 1), geometry.P(28, 28), PathOptions{MaxNodes: 3}); len(path) != 0 {
		t.Errorf("node limit should abort the search, got %d steps", len(path))
	}
}

func TestFindPath_TowerExampleConnectivity(t *testing.T) {
	l := domain.NewLevel(0, 80, 50)
	l.Map.CreateRoom(geometry.NewRect(20, 20, 15, 15))
	l.Map.CreateRoom(geometry.NewRect(25, 25, 5, 5))
	l.Map.CreateCorridor(geometry.NewLine(geometry.P(27, 27), geometry.P(27, 31)))
	l.Map.DiscoverAll()

	outer := []geometry.Pos{{X: 21, Y: 21}, {X: 33, Y: 33}, {X: 21, Y: 33}}
	inner := []geometry.Pos{{X: 26, Y: 26}, {X: 28, Y: 28}}
	for _, a := range outer {
		for _, b := range inner {
			if path := FindPath(l, types.NilEntityID, a, b, PathOptions{}); len(path) == 0 {
				t.Errorf("no path from %v to %v", a, b)
			}
		}
	}
}
