package domain

import "tlb-server/internal/geometry"

// Viewport - окно камеры над этажом в клетках.
type Viewport struct {
	Level LevelID `json:"level"`
	X     int     `json:"x"`
	Y     int     `json:"y"`
	W     int     `json:"w"`
	H     int     `json:"h"`
}

func NewViewport(w, h int) Viewport {
	return Viewport{W: w, H: h}
}

// CenterAt ставит камеру так, чтобы позиция оказалась в центре окна.
func (v *Viewport) CenterAt(p Position) {
	c := p.Cell()
	v.Level = p.Level
	v.X = c.X - v.W/2
	v.Y = c.Y - v.H/2
}

// ToScreen переводит клетку мира в клетку экрана.
func (v Viewport) ToScreen(p geometry.Pos) geometry.Pos {
	return geometry.Pos{X: p.X - v.X, Y: p.Y - v.Y}
}

// ToWorld переводит клетку экрана в клетку мира.
func (v Viewport) ToWorld(s geometry.Pos) geometry.Pos {
	return geometry.Pos{X: s.X + v.X, Y: s.Y + v.Y}
}

func (v Viewport) Rect() geometry.Rect {
	return geometry.NewRect(v.X, v.Y, v.W, v.H)
}

func (v Viewport) Contains(p geometry.Pos) bool {
	return v.Rect().Contains(p)
}
