package systems

import (
	"math"
	"slices"

	"tlb-server/internal/core/types"
	"tlb-server/internal/domain"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AdvancePaths двигает всех, у кого есть путь, на dt секунд.
// Обход идёт по возрастанию ID. Возвращает тех, чьё движение закончилось в этом тике:
// путь пройден целиком или оборван препятствием.
func AdvancePaths(w *domain.World, dt float64) []types.EntityID {
	ids := make([]types.EntityID, 0, len(w.Paths))
	for id := range w.Paths {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var finished []types.EntityID
	for _, id := range ids {
		if advance(w, id, dt) {
			delete(w.Paths, id)
			finished = append(finished, id)
		}
	}
	return finished
}

// advance делает один шаг по пути. Возвращает true, если путь нужно удалить.
func advance(w *domain.World, id types.EntityID, dt float64) bool {
	path := w.Paths[id]
	pos, ok := w.Positions[id]
	if !ok {
		return true
	}
	next, ok := path.Front()
	if !ok {
		return true
	}

	moveLogger := logger.Log.WithFields(logrus.Fields{
		"component": "movement_system",
		"entity_id": id,
	})

	if next.Level != pos.Level {
		moveLogger.Warn("Path leads to another level, dropping it.")
		return true
	}

	if pos.ApproxEqual(next) {
		path.PopFront()
		return path.Empty()
	}

	level, ok := w.Tower.Get(pos.Level)
	if !ok {
		return true
	}

	candidate := stepToward(pos, next, speedOf(path)*dt)
	from, to := pos.Cell(), candidate.Cell()
	if from != to && level.IsNotPlannable(id, to) {
		moveLogger.WithField("blocked_cell", to).Debug("Path obstructed, abandoning.")
		return true
	}

	w.Positions[id] = candidate
	if from != to {
		level.MoveEntity(domain.IndexCharacter, id, from, to)
	}
	if candidate.ApproxEqual(next) {
		path.PopFront()
	}
	return path.Empty()
}

func speedOf(p *domain.Path) float64 {
	if p.Speed <= 0 {
		return domain.DefaultWalkSpeed
	}
	return p.Speed
}

// stepToward смещает pos к target на dist. Если после шага знак проекции на
// направление к цели сменился, шаг перелетел бы цель - тогда возвращается сама цель.
func stepToward(pos, target domain.Position, dist float64) domain.Position {
	dx, dy := target.X-pos.X, target.Y-pos.Y
	length := math.Hypot(dx, dy)
	if length == 0 || dist <= 0 {
		return pos
	}
	candidate := pos.Shift(dx/length*dist, dy/length*dist)

	rx, ry := target.X-candidate.X, target.Y-candidate.Y
	if dx*rx+dy*ry <= 0 {
		return target
	}
	return candidate
}
