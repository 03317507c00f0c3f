package engine

import (
	"math/rand"

	"tlb-server/internal/domain"
	"tlb-server/pkg/dungeon"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// blueprintFor - чертёж этажа. Нулевой этаж фиксирован, остальные процедурные
// и зависят только от сида: Level N Seed = Seed + N.
func blueprintFor(cfg Config, id domain.LevelID) dungeon.Blueprint {
	if id == 0 {
		return dungeon.TowerFloor{}
	}
	rng := rand.New(rand.NewSource(cfg.Seed + int64(id)))
	return dungeon.NewLevel(id, rng).WithRooms(cfg.RoomsPerFloor)
}

// buildFloors вырезает все этажи башни заново. Существующие этажи переиспользуются:
// их карты заливаются скалой и вырезаются по тому же чертежу.
func buildFloors(cfg Config, tower *domain.Tower) []dungeon.Floor {
	count := max(cfg.Floors, 1)
	floors := make([]dungeon.Floor, 0, count)

	for i := range count {
		id := domain.LevelID(i)
		level, ok := tower.Get(id)
		if ok {
			level.Map.Reset()
		} else {
			level = domain.NewLevel(id, dungeon.MapWidth, dungeon.MapHeight)
			tower.Add(level)
		}

		layout := blueprintFor(cfg, id).Carve(level.Map)
		floors = append(floors, dungeon.Floor{Level: level, Layout: layout})

		logger.Log.WithFields(logrus.Fields{
			"component": "world_builder",
			"level":     id,
			"rooms":     len(layout.Rooms),
			"start":     layout.Start,
			"exit":      layout.Exit,
		}).Debug("Floor carved")
	}
	return floors
}

// populate заселяет башню; сид заселения отделён от сидов планировки.
func populate(cfg Config, w *domain.World, floors []dungeon.Floor) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	return dungeon.PopulateTower(w, floors, rng)
}
