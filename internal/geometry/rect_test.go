package geometry

import "testing"

func TestRect_RowMajorExclusive(t *testing.T) {
	r := NewRect(2, 3, 3, 2)
	got := Collect(r)
	want := []Pos{
		{2, 3}, {3, 3}, {4, 3},
		{2, 4}, {3, 4}, {4, 4},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d cells, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestRect_BoundaryInterior(t *testing.T) {
	r := NewRect(20, 20, 15, 15)

	tests := []struct {
		p                  Pos
		boundary, interior bool
	}{
		{P(20, 20), true, false},
		{P(34, 34), true, false},
		{P(27, 20), true, false},
		{P(21, 21), false, true},
		{P(33, 33), false, true},
		{P(35, 27), false, false}, // за правой границей
		{P(19, 27), false, false},
	}

	for _, tt := range tests {
		if got := r.IsBoundary(tt.p); got != tt.boundary {
			t.Errorf("IsBoundary(%v) = %v, want %v", tt.p, got, tt.boundary)
		}
		if got := r.IsInterior(tt.p); got != tt.interior {
			t.Errorf("IsInterior(%v) = %v, want %v", tt.p, got, tt.interior)
		}
	}
}

func TestRect_EmptyYieldsNothing(t *testing.T) {
	for _, r := range []Rect{NewRect(0, 0, 0, 5), NewRect(0, 0, 5, -1)} {
		if cells := Collect(r); len(cells) != 0 {
			t.Errorf("%+v: expected no cells, got %v", r, cells)
		}
	}
}

func TestRect_IntersectsAndClip(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(10, 0, 5, 5)
	if a.Intersects(b) {
		t.Error("touching rects with exclusive edges must not intersect")
	}
	c := NewRect(5, 5, 10, 10)
	if !a.Intersects(c) {
		t.Error("overlapping rects must intersect")
	}
	if got := a.Clip(c); got != NewRect(5, 5, 5, 5) {
		t.Errorf("unexpected clip %+v", got)
	}
	if got := a.Clip(b); !got.Empty() {
		t.Errorf("expected empty clip, got %+v", got)
	}
}

func TestAround(t *testing.T) {
	r := Around(P(5, 5), 1)
	if len(Collect(r)) != 9 {
		t.Fatalf("3x3 area expected, got %+v", r)
	}
	if r.Center() != P(5, 5) {
		t.Errorf("center moved: %v", r.Center())
	}
}
