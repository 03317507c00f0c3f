package domain

import (
	"math"

	"tlb-server/internal/geometry"
)

// Position - непрерывная координата сущности на этаже.
// Клетка получается отбрасыванием дробной части.
type Position struct {
	Level LevelID `json:"level"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// CellCenter - позиция в центре клетки.
func CellCenter(level LevelID, p geometry.Pos) Position {
	return Position{Level: level, X: float64(p.X) + CellCenterOffset, Y: float64(p.Y) + CellCenterOffset}
}

// Cell возвращает клетку сетки, в которой находится позиция.
func (p Position) Cell() geometry.Pos {
	return geometry.Pos{X: int(p.X), Y: int(p.Y)}
}

// ApproxEqual сравнивает позиции на одном этаже с точностью PositionEpsilon.
func (p Position) ApproxEqual(o Position) bool {
	return p.Level == o.Level &&
		math.Abs(p.X-o.X) < PositionEpsilon &&
		math.Abs(p.Y-o.Y) < PositionEpsilon
}

func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Shift сдвигает позицию на вектор (dx, dy).
func (p Position) Shift(dx, dy float64) Position {
	return Position{Level: p.Level, X: p.X + dx, Y: p.Y + dy}
}
