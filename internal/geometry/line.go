package geometry

import "iter"

// maxRaySteps ограничивает луч без явного предела, чтобы последовательность оставалась конечной.
const maxRaySteps = 1024

// bresenham - пошаговая растеризация Брезенхэма с накоплением ошибки.
// Работает во всех октантах; после конечной точки продолжает идти с тем же наклоном.
type bresenham struct {
	x, y   int
	dx, dy int
	sx, sy int
	err    int
}

func newBresenham(from, to Pos) bresenham {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	return bresenham{
		x: from.X, y: from.Y,
		dx: dx, dy: dy,
		sx: sign(to.X - from.X), sy: sign(to.Y - from.Y),
		err: dx + dy,
	}
}

func (b *bresenham) pos() Pos {
	return Pos{X: b.x, Y: b.y}
}

func (b *bresenham) step() {
	e2 := 2 * b.err
	if e2 >= b.dy {
		b.err += b.dy
		b.x += b.sx
	}
	if e2 <= b.dx {
		b.err += b.dx
		b.y += b.sy
	}
}

// Line - отрезок, включающий обе конечные точки.
type Line struct {
	From Pos `json:"from"`
	To   Pos `json:"to"`
}

func NewLine(from, to Pos) Line {
	return Line{From: from, To: to}
}

// Len - количество шагов от From до To (клеток на одну больше).
func (l Line) Len() int {
	return l.From.ChebyshevTo(l.To)
}

func (l Line) Cells() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		b := newBresenham(l.From, l.To)
		for {
			p := b.pos()
			if !yield(p) || p == l.To {
				return
			}
			b.step()
		}
	}
}

func (l Line) Contains(p Pos) bool {
	if !l.Bounds().Contains(p) {
		return false
	}
	for c := range l.Cells() {
		if c == p {
			return true
		}
	}
	return false
}

// IsBoundary: у отрезка нет краёв. Отрезок - проход шириной в клетку,
// поэтому все его клетки считаются внутренними.
func (l Line) IsBoundary(Pos) bool {
	return false
}

func (l Line) IsInterior(p Pos) bool {
	return l.Contains(p)
}

func (l Line) Bounds() Rect {
	return Rect{
		X: min(l.From.X, l.To.X),
		Y: min(l.From.Y, l.To.Y),
		W: abs(l.To.X-l.From.X) + 1,
		H: abs(l.To.Y-l.From.Y) + 1,
	}
}

// Ray - луч из From через Toward. Не обрезается на Toward и идёт дальше,
// пока не сделает Limit шагов. Остановку по препятствиям решает вызывающий код,
// прерывая обход.
type Ray struct {
	From   Pos `json:"from"`
	Toward Pos `json:"toward"`
	Limit  int `json:"limit"`
}

func NewRay(from, toward Pos, limit int) Ray {
	return Ray{From: from, Toward: toward, Limit: limit}
}

func (r Ray) steps() int {
	if r.Limit <= 0 {
		return maxRaySteps
	}
	return r.Limit
}

// Cells начинается с From. При совпадающих точках направление не определено,
// поэтому выдаётся ровно одна клетка.
func (r Ray) Cells() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		if !yield(r.From) || r.From == r.Toward {
			return
		}
		b := newBresenham(r.From, r.Toward)
		for i := 0; i < r.steps(); i++ {
			b.step()
			if !yield(b.pos()) {
				return
			}
		}
	}
}

func (r Ray) Contains(p Pos) bool {
	for c := range r.Cells() {
		if c == p {
			return true
		}
	}
	return false
}

func (r Ray) IsBoundary(Pos) bool {
	return false
}

func (r Ray) IsInterior(p Pos) bool {
	return r.Contains(p)
}

func (r Ray) Bounds() Rect {
	return boundsOf(r.Cells())
}
