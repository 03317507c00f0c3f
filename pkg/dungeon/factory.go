package dungeon

import (
	"fmt"
	"math/rand"

	"tlb-server/internal/core/types/enums"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DoorLevel - уровень доступа двери во внутреннюю комнату.
const DoorLevel = 3

// Floor - этаж башни и то, что о нём сообщил Blueprint.
type Floor struct {
	Level  *domain.Level
	Layout Layout
}

// placement - персонаж или предмет на фиксированной клетке нулевого этажа.
type placement[T any] struct {
	tmpl T
	cell geometry.Pos
}

var towerPlayers = []placement[ActorTemplate]{
	{Player("Колтон"), TowerStart},
	{Player("Гейдж"), geometry.P(23, 23)},
}

var towerNPCs = []placement[ActorTemplate]{
	{Guard, geometry.P(31, 24)},
	{Technician, geometry.P(29, 24)},
	{Accountant, geometry.P(31, 29)},
}

var towerItems = []placement[ItemTemplate]{
	{FlickKnife, geometry.P(24, 22)},
	{DartGun, geometry.P(23, 21)},
	{Simstim, geometry.P(33, 25)},
	{HitachiRam, geometry.P(23, 25)},
	{Shuriken, geometry.P(28, 21)},
	{Manriki, geometry.P(27, 27)},
}

// PopulateTower заселяет башню: игроки, NPC, предметы, дверь и лестницы между этажами.
// floors[0] - фиксированный этаж, остальные заселяются случайно из rng.
func PopulateTower(w *domain.World, floors []Floor, rng *rand.Rand) error {
	if len(floors) == 0 {
		return nil
	}
	ground := floors[0].Level.ID

	for _, p := range towerPlayers {
		if _, err := p.tmpl.SpawnAt(w, ground, p.cell); err != nil {
			return err
		}
	}
	for _, p := range towerNPCs {
		if _, err := p.tmpl.SpawnAt(w, ground, p.cell); err != nil {
			return err
		}
	}
	for _, p := range towerItems {
		if _, err := p.tmpl.SpawnAt(w, ground, p.cell); err != nil {
			return err
		}
	}

	door := domain.NewKeyDoor(w.NextID(enums.EntityTypeInteractable), DoorLevel)
	if err := w.SpawnInteractable(door, ground, InnerDoorway); err != nil {
		return fmt.Errorf("spawn door: %w", err)
	}

	for i := 1; i < len(floors); i++ {
		if err := populateFloor(w, floors[i], rng); err != nil {
			return err
		}
		if err := linkFloors(w, floors[i-1], floors[i]); err != nil {
			return err
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_factory",
		"floors":    len(floors),
		"actors":    len(w.Actors),
		"items":     len(w.Items),
	}).Info("Tower populated")
	return nil
}

// linkFloors ставит пару лестниц: выход нижнего этажа ведёт на старт верхнего и обратно.
func linkFloors(w *domain.World, lower, upper Floor) error {
	down := lower.Layout.Exit
	up := upper.Layout.Start

	a := domain.NewStairs(w.NextID(enums.EntityTypeInteractable), domain.CellCenter(upper.Level.ID, up))
	if err := w.SpawnInteractable(a, lower.Level.ID, down); err != nil {
		return fmt.Errorf("spawn stairs on %d: %w", lower.Level.ID, err)
	}
	b := domain.NewStairs(w.NextID(enums.EntityTypeInteractable), domain.CellCenter(lower.Level.ID, down))
	if err := w.SpawnInteractable(b, upper.Level.ID, up); err != nil {
		return fmt.Errorf("spawn stairs on %d: %w", upper.Level.ID, err)
	}
	return nil
}

// populateFloor - охрана в комнатах, кроме первой, и немного хлама.
func populateFloor(w *domain.World, f Floor, rng *rand.Rand) error {
	rooms := f.Layout.Rooms
	if len(rooms) < 2 {
		return nil
	}

	guards := min(len(rooms)-1, 2)
	for i := 0; i < guards; i++ {
		room := rooms[1+rng.Intn(len(rooms)-1)]
		cell, ok := freeCell(f.Level, room, rng)
		if !ok {
			continue
		}
		if _, err := Guard.SpawnAt(w, f.Level.ID, cell); err != nil {
			return err
		}
	}

	for i := 0; i < len(rooms); i++ {
		room := rooms[rng.Intn(len(rooms))]
		cell, ok := freeCell(f.Level, room, rng)
		if !ok {
			continue
		}
		loot := LootTable[rng.Intn(len(LootTable))]
		if _, err := loot.SpawnAt(w, f.Level.ID, cell); err != nil {
			return err
		}
	}
	return nil
}

// freeCell ищет незанятую клетку пола внутри комнаты (макс 20 попыток)
func freeCell(level *domain.Level, room geometry.Rect, rng *rand.Rand) (geometry.Pos, bool) {
	inner := room.Inset(1)
	if inner.Empty() {
		return geometry.Pos{}, false
	}
	for attempt := 0; attempt < 20; attempt++ {
		p := geometry.P(inner.X+rng.Intn(inner.W), inner.Y+rng.Intn(inner.H))
		if !level.IsBlocking(p) && len(level.Get(domain.IndexItem, p)) == 0 {
			return p, true
		}
	}
	return geometry.Pos{}, false
}
