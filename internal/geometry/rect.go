package geometry

import "iter"

// Rect - прямоугольник на сетке. Покрывает x ∈ [X, X+W), y ∈ [Y, Y+H).
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Around - квадрат со стороной 2*radius+1 с центром в c.
func Around(c Pos, radius int) Rect {
	return Rect{X: c.X - radius, Y: c.Y - radius, W: 2*radius + 1, H: 2*radius + 1}
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Center возвращает центральную клетку (с округлением вниз).
func (r Rect) Center() Pos {
	return Pos{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects проверяет пересечение покрытых областей.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Inset сжимает прямоугольник на n клеток с каждой стороны.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Clip возвращает пересечение двух прямоугольников (может быть пустым).
func (r Rect) Clip(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) Contains(p Pos) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) IsBoundary(p Pos) bool {
	if !r.Contains(p) {
		return false
	}
	return p.X == r.X || p.X == r.X+r.W-1 || p.Y == r.Y || p.Y == r.Y+r.H-1
}

func (r Rect) IsInterior(p Pos) bool {
	return r.Contains(p) && !r.IsBoundary(p)
}

func (r Rect) Bounds() Rect {
	return r
}

// Cells обходит прямоугольник построчно: слева направо, сверху вниз.
func (r Rect) Cells() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				if !yield(Pos{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
