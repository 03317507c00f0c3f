package geometry

import "iter"

// Triangle - треугольник по трём вершинам.
//
// Принадлежность считается через барицентрические координаты: клетка внутри, если все
// три веса неотрицательны (рёбра включаются). У вырожденного треугольника (нулевая
// площадь) клеток нет.
type Triangle struct {
	A Pos `json:"a"`
	B Pos `json:"b"`
	C Pos `json:"c"`
}

func NewTriangle(a, b, c Pos) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// edge - удвоенная ориентированная площадь треугольника (a, b, p).
func edge(a, b, p Pos) int {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func (t Triangle) area2() int {
	return edge(t.A, t.B, t.C)
}

func (t Triangle) Degenerate() bool {
	return t.area2() == 0
}

func (t Triangle) Contains(p Pos) bool {
	area := t.area2()
	if area == 0 {
		return false
	}
	w0 := edge(t.B, t.C, p)
	w1 := edge(t.C, t.A, p)
	w2 := edge(t.A, t.B, p)
	if area < 0 {
		w0, w1, w2 = -w0, -w1, -w2
	}
	return w0 >= 0 && w1 >= 0 && w2 >= 0
}

// IsBoundary - покрытая клетка, у которой хотя бы один ортогональный сосед снаружи.
func (t Triangle) IsBoundary(p Pos) bool {
	if !t.Contains(p) {
		return false
	}
	for _, d := range Directions8[:4] {
		if !t.Contains(p.Add(d)) {
			return true
		}
	}
	return false
}

func (t Triangle) IsInterior(p Pos) bool {
	return t.Contains(p) && !t.IsBoundary(p)
}

func (t Triangle) Bounds() Rect {
	if t.Degenerate() {
		return Rect{}
	}
	minX := min(t.A.X, t.B.X, t.C.X)
	minY := min(t.A.Y, t.B.Y, t.C.Y)
	maxX := max(t.A.X, t.B.X, t.C.X)
	maxY := max(t.A.Y, t.B.Y, t.C.Y)
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}

// Cells обходит ограничивающий прямоугольник построчно и выдаёт покрытые клетки.
func (t Triangle) Cells() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for p := range t.Bounds().Cells() {
			if t.Contains(p) && !yield(p) {
				return
			}
		}
	}
}
