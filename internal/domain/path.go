package domain

import "tlb-server/internal/geometry"

// Path - очередь точек маршрута, потребляемая с головы, и скорость движения.
// Принадлежит только сущности, которая по нему идёт.
type Path struct {
	Waypoints []Position `json:"waypoints"`
	Speed     float64    `json:"speed"`
}

func NewPath(waypoints []Position, speed float64) *Path {
	return &Path{Waypoints: waypoints, Speed: speed}
}

func (p *Path) Front() (Position, bool) {
	if p == nil || len(p.Waypoints) == 0 {
		return Position{}, false
	}
	return p.Waypoints[0], true
}

func (p *Path) PopFront() {
	if p == nil || len(p.Waypoints) == 0 {
		return
	}
	p.Waypoints = p.Waypoints[1:]
}

func (p *Path) Empty() bool {
	return p == nil || len(p.Waypoints) == 0
}

func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Waypoints)
}

// Cells - клетки оставшегося маршрута (для подсветки).
func (p *Path) Cells() []geometry.Pos {
	if p == nil {
		return nil
	}
	cells := make([]geometry.Pos, len(p.Waypoints))
	for i, w := range p.Waypoints {
		cells[i] = w.Cell()
	}
	return cells
}
