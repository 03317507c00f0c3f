package geometry

import (
	"fmt"
	"math"
)

// Pos - целочисленная клетка сетки.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Directions8 - смещения на соседние клетки. Сначала ортогональные, затем диагонали,
// порядок фиксирован: от него зависит детерминизм поиска пути.
var Directions8 = [8]Pos{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// P - короткий конструктор для тестов и шаблонов.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Pos) Sub(o Pos) Pos {
	return Pos{X: p.X - o.X, Y: p.Y - o.Y}
}

// DistanceTo возвращает евклидово расстояние между клетками.
func (p Pos) DistanceTo(o Pos) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ChebyshevTo - количество шагов по 8 направлениям без учёта препятствий.
func (p Pos) ChebyshevTo(o Pos) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

// IsAdjacent проверяет, находится ли клетка o в одной из 8 соседних позиций.
func (p Pos) IsAdjacent(o Pos) bool {
	return p.ChebyshevTo(o) == 1
}

// Neighbors8 возвращает соседей в порядке Directions8.
func (p Pos) Neighbors8() [8]Pos {
	var out [8]Pos
	for i, d := range Directions8 {
		out[i] = p.Add(d)
	}
	return out
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
