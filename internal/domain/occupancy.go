package domain

import (
	"slices"

	"tlb-server/internal/core/types"
	"tlb-server/internal/geometry"
)

// Occupant - запись в клетке индекса: кто стоит и что он перекрывает.
type Occupant struct {
	ID            types.EntityID `json:"id"`
	Blocking      bool           `json:"blocking"`
	SightBlocking bool           `json:"sightBlocking"`
}

// OccupancyGrid - мультимножество занятых клеток.
//
// Каждая сущность присутствует не более чем в одной клетке: обратная карта where
// не даёт записать её дважды, Push переносит уже проиндексированную сущность.
type OccupancyGrid struct {
	width, height int
	cells         map[int][]Occupant
	where         map[types.EntityID]geometry.Pos
}

func NewOccupancyGrid(width, height int) *OccupancyGrid {
	return &OccupancyGrid{
		width:  width,
		height: height,
		cells:  make(map[int][]Occupant),
		where:  make(map[types.EntityID]geometry.Pos),
	}
}

func (g *OccupancyGrid) inBounds(p geometry.Pos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

func (g *OccupancyGrid) key(p geometry.Pos) int {
	return p.Y*g.width + p.X
}

// Push кладёт запись в клетку поверх остальных. Если сущность уже стоит
// в другой клетке, она сначала удаляется оттуда.
func (g *OccupancyGrid) Push(occ Occupant, p geometry.Pos) bool {
	if !g.inBounds(p) {
		return false
	}
	if old, ok := g.where[occ.ID]; ok {
		g.Remove(occ.ID, old)
	}
	k := g.key(p)
	g.cells[k] = append(g.cells[k], occ)
	g.where[occ.ID] = p
	return true
}

// Pop снимает верхнюю (последнюю положенную) запись.
func (g *OccupancyGrid) Pop(p geometry.Pos) (Occupant, bool) {
	if !g.inBounds(p) {
		return Occupant{}, false
	}
	k := g.key(p)
	list := g.cells[k]
	if len(list) == 0 {
		return Occupant{}, false
	}
	occ := list[len(list)-1]
	g.store(k, list[:len(list)-1])
	delete(g.where, occ.ID)
	return occ, true
}

// Remove удаляет конкретную сущность из клетки, сохраняя порядок остальных.
func (g *OccupancyGrid) Remove(id types.EntityID, p geometry.Pos) bool {
	if !g.inBounds(p) {
		return false
	}
	k := g.key(p)
	list := g.cells[k]
	i := slices.IndexFunc(list, func(o Occupant) bool { return o.ID == id })
	if i < 0 {
		return false
	}
	g.store(k, slices.Delete(list, i, i+1))
	delete(g.where, id)
	return true
}

func (g *OccupancyGrid) store(k int, list []Occupant) {
	if len(list) == 0 {
		delete(g.cells, k)
		return
	}
	g.cells[k] = list
}

// Get возвращает копию записей клетки (снизу вверх).
func (g *OccupancyGrid) Get(p geometry.Pos) []Occupant {
	if !g.inBounds(p) {
		return nil
	}
	return slices.Clone(g.cells[g.key(p)])
}

// Top - верхняя запись клетки без снятия.
func (g *OccupancyGrid) Top(p geometry.Pos) (Occupant, bool) {
	if !g.inBounds(p) {
		return Occupant{}, false
	}
	list := g.cells[g.key(p)]
	if len(list) == 0 {
		return Occupant{}, false
	}
	return list[len(list)-1], true
}

func (g *OccupancyGrid) update(id types.EntityID, p geometry.Pos, fn func(*Occupant)) bool {
	if !g.inBounds(p) {
		return false
	}
	list := g.cells[g.key(p)]
	for i := range list {
		if list[i].ID == id {
			fn(&list[i])
			return true
		}
	}
	return false
}

func (g *OccupancyGrid) SetBlocking(id types.EntityID, p geometry.Pos, blocking bool) bool {
	return g.update(id, p, func(o *Occupant) { o.Blocking = blocking })
}

func (g *OccupancyGrid) SetSightBlocking(id types.EntityID, p geometry.Pos, sightBlocking bool) bool {
	return g.update(id, p, func(o *Occupant) { o.SightBlocking = sightBlocking })
}

// Move атомарно переносит запись из from в to вместе с флагами.
// При from == to ничего не делает. Возвращает false, если сущности нет в from.
func (g *OccupancyGrid) Move(id types.EntityID, from, to geometry.Pos) bool {
	if from == to {
		return true
	}
	if !g.inBounds(to) {
		return false
	}
	if !g.inBounds(from) {
		return false
	}
	list := g.cells[g.key(from)]
	i := slices.IndexFunc(list, func(o Occupant) bool { return o.ID == id })
	if i < 0 {
		return false
	}
	occ := list[i]
	g.Remove(id, from)
	k := g.key(to)
	g.cells[k] = append(g.cells[k], occ)
	g.where[id] = to
	return true
}

// Where - клетка сущности в индексе.
func (g *OccupancyGrid) Where(id types.EntityID) (geometry.Pos, bool) {
	p, ok := g.where[id]
	return p, ok
}

func (g *OccupancyGrid) Len() int {
	return len(g.where)
}

func (g *OccupancyGrid) Clear() {
	clear(g.cells)
	clear(g.where)
}

// AnyBlocking - есть ли в клетке блокирующая запись, кроме except.
func (g *OccupancyGrid) AnyBlocking(p geometry.Pos, except types.EntityID) bool {
	if !g.inBounds(p) {
		return false
	}
	for _, o := range g.cells[g.key(p)] {
		if o.Blocking && o.ID != except {
			return true
		}
	}
	return false
}

func (g *OccupancyGrid) AnySightBlocking(p geometry.Pos) bool {
	if !g.inBounds(p) {
		return false
	}
	for _, o := range g.cells[g.key(p)] {
		if o.SightBlocking {
			return true
		}
	}
	return false
}

// Each обходит все записи в порядке возрастания ID (для отладки и снапшотов).
func (g *OccupancyGrid) Each(fn func(p geometry.Pos, occ Occupant)) {
	ids := make([]types.EntityID, 0, len(g.where))
	for id := range g.where {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		p := g.where[id]
		for _, o := range g.cells[g.key(p)] {
			if o.ID == id {
				fn(p, o)
				break
			}
		}
	}
}
