package dungeon

import (
	"math/rand"

	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
)

const (
	MapWidth  = 80
	MapHeight = 50

	// Размеры комнат процедурного этажа (вместе со стенами).
	MinSize = 6
	MaxSize = 12

	// corridorWidth - ширина коридора со стенами; проход внутри в одну клетку.
	corridorWidth = 3
)

// Layout - то, что нужно знать о построенном этаже заселению и лестницам.
type Layout struct {
	// Start - куда ставить пришедших на этаж.
	Start geometry.Pos
	// Exit - где стоит лестница дальше.
	Exit  geometry.Pos
	Rooms []geometry.Rect
}

// Blueprint вырезает комнаты на чистой карте.
// Вызывается при создании этажа и при каждом сбросе.
type Blueprint interface {
	Carve(m *domain.TileMap) Layout
}

// LevelBuilder предоставляет fluent API для создания процедурных этажей
type LevelBuilder struct {
	id     domain.LevelID
	width  int
	height int
	rooms  []geometry.Rect
	rng    *rand.Rand
}

// NewLevel создает новый builder для этажа
func NewLevel(id domain.LevelID, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		id:     id,
		width:  MapWidth,
		height: MapHeight,
		rng:    rng,
	}
}

func (b *LevelBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

// WithRooms раскладывает до maxRooms непересекающихся комнат.
// Сами тайлы вырезаются в Carve, поэтому раскладку можно применять повторно.
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	b.rooms = make([]geometry.Rect, 0, maxRooms)
	if b.width < MaxSize+2 || b.height < MaxSize+2 {
		return b
	}

	for i := 0; i < maxRooms; i++ {
		w := b.randRange(MinSize, MaxSize)
		h := b.randRange(MinSize, MaxSize)
		x := b.randRange(1, b.width-w-1)
		y := b.randRange(1, b.height-h-1)

		newRoom := geometry.NewRect(x, y, w, h)

		// Между комнатами остаётся хотя бы клетка породы
		failed := false
		for _, other := range b.rooms {
			if newRoom.Inset(-1).Intersects(other) {
				failed = true
				break
			}
		}

		if !failed {
			b.rooms = append(b.rooms, newRoom)
		}
	}

	return b
}

// Rooms возвращает раскладку комнат.
func (b *LevelBuilder) Rooms() []geometry.Rect {
	return b.rooms
}

// Carve вырезает комнаты и соединяет каждую с предыдущей Г-образным коридором.
// Коридоры идут после всех комнат: стены новой комнаты не должны перерезать готовый проход.
func (b *LevelBuilder) Carve(m *domain.TileMap) Layout {
	for _, room := range b.rooms {
		m.CreateRoom(room)
	}
	for i, room := range b.rooms {
		if i == 0 {
			continue
		}

		prev := b.rooms[i-1].Center()
		curr := room.Center()

		// Направление излома выбирается от чётности, чтобы Carve был детерминирован
		if i%2 == 0 {
			m.CreateCorridor(hCorridor(prev.X, curr.X, prev.Y))
			m.CreateCorridor(vCorridor(prev.Y, curr.Y, curr.X))
		} else {
			m.CreateCorridor(vCorridor(prev.Y, curr.Y, prev.X))
			m.CreateCorridor(hCorridor(prev.X, curr.X, curr.Y))
		}
	}
	return b.Layout()
}

// Layout - старт в первой комнате, выход в последней.
func (b *LevelBuilder) Layout() Layout {
	l := Layout{Rooms: b.rooms}
	if len(b.rooms) == 0 {
		center := geometry.P(b.width/2, b.height/2)
		l.Start, l.Exit = center, center
		return l
	}
	l.Start = b.rooms[0].Center()
	l.Exit = b.rooms[len(b.rooms)-1].Center()
	return l
}

// Build собирает новый этаж по раскладке
func (b *LevelBuilder) Build() (*domain.Level, Layout) {
	level := domain.NewLevel(b.id, b.width, b.height)
	layout := b.Carve(level.Map)
	return level, layout
}

func hCorridor(x1, x2, y int) geometry.Rect {
	start, end := min(x1, x2), max(x1, x2)
	return geometry.NewRect(start-1, y-1, end-start+corridorWidth, corridorWidth)
}

func vCorridor(y1, y2, x int) geometry.Rect {
	start, end := min(y1, y2), max(y1, y2)
	return geometry.NewRect(x-1, start-1, corridorWidth, end-start+corridorWidth)
}
