// Package geometry содержит примитивы сетки: прямоугольник, отрезок, луч и треугольник.
//
// Каждая фигура отдаёт конечную детерминированную последовательность клеток через
// iter.Seq. Последовательность можно обходить повторно: каждый вызов Cells начинает
// обход заново.
package geometry

import (
	"iter"
	"slices"
)

// Shape - общий контракт фигур, которыми штампуются комнаты и считаются области.
type Shape interface {
	// Cells перечисляет покрытые клетки в фиксированном порядке.
	Cells() iter.Seq[Pos]
	Contains(p Pos) bool
	// IsBoundary - клетка покрыта и лежит на краю фигуры.
	IsBoundary(p Pos) bool
	// IsInterior - клетка покрыта и не лежит на краю.
	IsInterior(p Pos) bool
	// Bounds - наименьший прямоугольник, покрывающий фигуру.
	Bounds() Rect
}

// Collect материализует клетки фигуры в срез.
func Collect(s Shape) []Pos {
	return slices.Collect(s.Cells())
}

// boundsOf строит ограничивающий прямоугольник по набору клеток.
func boundsOf(seq iter.Seq[Pos]) Rect {
	first := true
	var minX, minY, maxX, maxY int
	for p := range seq {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	if first {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}
