package domain

import (
	"tlb-server/internal/core/types"
	"tlb-server/internal/geometry"
)

// LevelID - номер этажа башни.
type LevelID int

// IndexKind выбирает подиндекс уровня.
type IndexKind uint8

const (
	// IndexCharacter - персонажи и интерактивные объекты; отвечает за проходимость.
	IndexCharacter IndexKind = iota
	// IndexItem - предметы на полу, складываются стопкой.
	IndexItem
)

func (k IndexKind) String() string {
	if k == IndexItem {
		return "item"
	}
	return "character"
}

// Level - один этаж: карта тайлов и два индекса занятости поверх неё.
type Level struct {
	ID  LevelID
	Map *TileMap

	characters *OccupancyGrid
	items      *OccupancyGrid
}

func NewLevel(id LevelID, width, height int) *Level {
	return &Level{
		ID:         id,
		Map:        NewTileMap(width, height),
		characters: NewOccupancyGrid(width, height),
		items:      NewOccupancyGrid(width, height),
	}
}

func (l *Level) Width() int  { return l.Map.Width }
func (l *Level) Height() int { return l.Map.Height }

func (l *Level) Index(kind IndexKind) *OccupancyGrid {
	if kind == IndexItem {
		return l.items
	}
	return l.characters
}

func (l *Level) Push(kind IndexKind, occ Occupant, p geometry.Pos) bool {
	return l.Index(kind).Push(occ, p)
}

func (l *Level) Pop(kind IndexKind, p geometry.Pos) (Occupant, bool) {
	return l.Index(kind).Pop(p)
}

func (l *Level) Remove(kind IndexKind, id types.EntityID, p geometry.Pos) bool {
	return l.Index(kind).Remove(id, p)
}

func (l *Level) Get(kind IndexKind, p geometry.Pos) []Occupant {
	return l.Index(kind).Get(p)
}

func (l *Level) SetBlocking(kind IndexKind, id types.EntityID, p geometry.Pos, blocking bool) bool {
	return l.Index(kind).SetBlocking(id, p, blocking)
}

func (l *Level) SetSightBlocking(kind IndexKind, id types.EntityID, p geometry.Pos, sightBlocking bool) bool {
	return l.Index(kind).SetSightBlocking(id, p, sightBlocking)
}

func (l *Level) MoveEntity(kind IndexKind, id types.EntityID, from, to geometry.Pos) bool {
	return l.Index(kind).Move(id, from, to)
}

// ClearAll очищает оба индекса (полный сброс мира).
func (l *Level) ClearAll() {
	l.characters.Clear()
	l.items.Clear()
}

// IsNotPlannable - клетку нельзя использовать как шаг пути для id: она не открыта,
// непроходима по тайлу или занята чужой блокирующей записью.
func (l *Level) IsNotPlannable(id types.EntityID, p geometry.Pos) bool {
	if !l.Map.IsDiscovered(p) || l.Map.IsBlocking(p) {
		return true
	}
	return l.characters.AnyBlocking(p, id) || l.items.AnyBlocking(p, id)
}

// IsProjectileBlocking - снаряд не пролетает: клетка не открыта, непроходима
// или занята записью, явно помеченной как непрозрачная (закрытая дверь).
func (l *Level) IsProjectileBlocking(p geometry.Pos) bool {
	if !l.Map.IsDiscovered(p) || l.Map.IsBlocking(p) {
		return true
	}
	return l.characters.AnySightBlocking(p) || l.items.AnySightBlocking(p)
}

// IsSightBlocking - тайл непрозрачен или в клетке есть непрозрачная запись.
func (l *Level) IsSightBlocking(p geometry.Pos) bool {
	if l.Map.IsSightBlocking(p) {
		return true
	}
	return l.characters.AnySightBlocking(p) || l.items.AnySightBlocking(p)
}

// IsBlocking - клетку нельзя занять никому (без учёта открытия).
func (l *Level) IsBlocking(p geometry.Pos) bool {
	return l.Map.IsBlocking(p) || l.characters.AnyBlocking(p, types.NilEntityID)
}
