package domain

import (
	"tlb-server/internal/geometry"
)

// RoomID - номер комнаты или коридора, которым проштампована клетка.
type RoomID int

// NoRoom - клетка не принадлежит ни одной комнате (скала).
const NoRoom RoomID = -1

// Tile - данные одной клетки карты.
type Tile struct {
	Blocking      bool   `json:"blocking"`
	SightBlocking bool   `json:"sightBlocking"`
	Wall          bool   `json:"wall"`
	Discovered    bool   `json:"discovered"`
	Room          RoomID `json:"room"`
}

// Bedrock - сплошная порода: непроходима и непрозрачна, но это не стена комнаты.
func Bedrock() Tile {
	return Tile{Blocking: true, SightBlocking: true, Room: NoRoom}
}

func WallTile(room RoomID) Tile {
	return Tile{Blocking: true, SightBlocking: true, Wall: true, Room: room}
}

func FloorTile(room RoomID) Tile {
	return Tile{Room: room}
}

// VisibilityFunc - внешний предикат видимости (FOV наблюдателей).
type VisibilityFunc func(p geometry.Pos) bool

// TileMap - сетка тайлов фиксированного размера.
//
// Запросы за пределами карты не ошибка: IsBlocking, IsSightBlocking и IsDiscovered
// возвращают консервативное true, поэтому вызывающим не нужны проверки границ.
type TileMap struct {
	Width  int
	Height int

	tiles    []Tile
	nextRoom RoomID
}

func NewTileMap(width, height int) *TileMap {
	m := &TileMap{Width: width, Height: height, tiles: make([]Tile, width*height)}
	m.Reset()
	return m
}

// Reset заливает карту скалой и сбрасывает нумерацию комнат.
func (m *TileMap) Reset() {
	for i := range m.tiles {
		m.tiles[i] = Bedrock()
	}
	m.nextRoom = 0
}

func (m *TileMap) Bounds() geometry.Rect {
	return geometry.NewRect(0, 0, m.Width, m.Height)
}

func (m *TileMap) InBounds(p geometry.Pos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.Width && p.Y < m.Height
}

func (m *TileMap) index(p geometry.Pos) int {
	return p.Y*m.Width + p.X
}

// Tile возвращает копию тайла; ok=false за пределами карты.
func (m *TileMap) Tile(p geometry.Pos) (Tile, bool) {
	if !m.InBounds(p) {
		return Bedrock(), false
	}
	return m.tiles[m.index(p)], true
}

func (m *TileMap) IsBlocking(p geometry.Pos) bool {
	if !m.InBounds(p) {
		return true
	}
	return m.tiles[m.index(p)].Blocking
}

func (m *TileMap) IsSightBlocking(p geometry.Pos) bool {
	if !m.InBounds(p) {
		return true
	}
	return m.tiles[m.index(p)].SightBlocking
}

func (m *TileMap) IsDiscovered(p geometry.Pos) bool {
	if !m.InBounds(p) {
		return true
	}
	return m.tiles[m.index(p)].Discovered
}

func (m *TileMap) IsWall(p geometry.Pos) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.tiles[m.index(p)].Wall
}

func (m *TileMap) RoomAt(p geometry.Pos) (RoomID, bool) {
	if !m.InBounds(p) {
		return NoRoom, false
	}
	room := m.tiles[m.index(p)].Room
	return room, room != NoRoom
}

// Rooms - сколько комнат и коридоров проштамповано.
func (m *TileMap) Rooms() int {
	return int(m.nextRoom)
}

// Update открывает все клетки, которые видит предикат. Флаг никогда не сбрасывается.
// Возвращает количество впервые открытых клеток.
func (m *TileMap) Update(visible VisibilityFunc) int {
	if visible == nil {
		return 0
	}
	opened := 0
	for p := range m.Bounds().Cells() {
		t := &m.tiles[m.index(p)]
		if !t.Discovered && visible(p) {
			t.Discovered = true
			opened++
		}
	}
	return opened
}

func (m *TileMap) Discover(p geometry.Pos) {
	if m.InBounds(p) {
		m.tiles[m.index(p)].Discovered = true
	}
}

func (m *TileMap) DiscoverAll() {
	for i := range m.tiles {
		m.tiles[i].Discovered = true
	}
}

// set перезаписывает клетку, сохраняя флаг открытия.
func (m *TileMap) set(p geometry.Pos, t Tile) {
	i := m.index(p)
	t.Discovered = m.tiles[i].Discovered
	m.tiles[i] = t
}

func (m *TileMap) newRoom() RoomID {
	id := m.nextRoom
	m.nextRoom++
	return id
}

// CreateRoom штампует комнату: край - стены, внутренность - пол, всё с новым номером.
func (m *TileMap) CreateRoom(s geometry.Shape) RoomID {
	room := m.newRoom()
	for p := range s.Cells() {
		if !m.InBounds(p) {
			continue
		}
		if s.IsBoundary(p) {
			m.set(p, WallTile(room))
		} else {
			m.set(p, FloorTile(room))
		}
	}
	return room
}

// CreateAntiRoom вырезает фигуру обратно в стену/скалу, но только внутри уже
// проштампованных комнат. Край становится стеной родительской комнаты,
// внутренность - скалой.
func (m *TileMap) CreateAntiRoom(s geometry.Shape) {
	for p := range s.Cells() {
		if !m.InBounds(p) {
			continue
		}
		parent := m.tiles[m.index(p)].Room
		if parent == NoRoom {
			continue
		}
		if s.IsBoundary(p) {
			m.set(p, WallTile(parent))
		} else {
			m.set(p, Bedrock())
		}
	}
}

// CreateCorridor штампует коридор с присоединением к существующим комнатам.
// Клетка остаётся стеной, только если она край коридора и до этого была стеной
// (или скалой). Поэтому на стыке стены не удваиваются, а пересечённая стена комнаты
// превращается в проём.
func (m *TileMap) CreateCorridor(s geometry.Shape) RoomID {
	corridor := m.newRoom()
	for p := range s.Cells() {
		if !m.InBounds(p) {
			continue
		}
		old := m.tiles[m.index(p)]
		room := old.Room
		if room == NoRoom {
			room = corridor
		}
		if s.IsBoundary(p) && (old.Room == NoRoom || old.Wall) {
			m.set(p, WallTile(room))
		} else {
			m.set(p, FloorTile(room))
		}
	}
	return corridor
}

// DrawWall превращает в стену каждую клетку фигуры, принадлежащую комнате.
// Используется для перегородок.
func (m *TileMap) DrawWall(s geometry.Shape) {
	for p := range s.Cells() {
		if !m.InBounds(p) {
			continue
		}
		if room := m.tiles[m.index(p)].Room; room != NoRoom {
			m.set(p, WallTile(room))
		}
	}
}
