package systems

import (
	"tlb-server/internal/core/types"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeFOV возвращает клетки этажа, видимые из origin в радиусе radius.
// Непрозрачность берётся из level.IsSightBlocking: стены и закрытые двери.
func ComputeFOV(level *domain.Level, origin geometry.Pos, radius int) mapset.Set[geometry.Pos] {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
		"radius":       radius,
	})

	visible := mapset.New[geometry.Pos]()
	if radius <= 0 {
		fovLogger.Warn("FOV calculation skipped for blind observer (radius <= 0).")
		return visible // Слепой
	}

	// Центр всегда виден
	if level.Map.InBounds(origin) {
		visible.Put(origin)
	}

	for i := 0; i < 8; i++ {
		castLight(level, origin, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	fovLogger.WithField("visible_tiles", visible.Size()).Debug("FOV calculation complete.")
	return visible
}

func castLight(level *domain.Level, c geometry.Pos, row int, start, end float64, radius, xx, xy, yx, yy int, visible mapset.Set[geometry.Pos]) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			p := geometry.P(c.X+dx*xx+dy*xy, c.Y+dx*yx+dy*yy)

			if level.Map.InBounds(p) && float64(dx*dx+dy*dy) < radiusSq {
				visible.Put(p)
			}

			// Логика теней
			opaque := level.IsSightBlocking(p)
			if blocked {
				// Мы идем вдоль стены...
				if opaque {
					newStart = rSlope
					continue
				}
				// Стена кончилась, началась пустота
				blocked = false
				start = newStart
			} else if opaque && j < radius {
				// Мы шли по пустоте и наткнулись на стену
				blocked = true
				castLight(level, c, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// VisibilityOf - объединение FOV всех живых игровых персонажей на этаже.
func VisibilityOf(w *domain.World, level *domain.Level, fallbackRadius int) (domain.VisibilityFunc, mapset.Set[geometry.Pos]) {
	union := mapset.New[geometry.Pos]()
	for _, id := range w.ActorsOn(level.ID) {
		a := w.Actors[id]
		if !a.PlayerControlled || !a.IsAlive() {
			continue
		}
		ObserverFOV(w, level, id, fallbackRadius).Each(func(p geometry.Pos) {
			union.Put(p)
		})
	}
	return union.Has, union
}

// ObserverFOV - поле зрения одного персонажа.
func ObserverFOV(w *domain.World, level *domain.Level, id types.EntityID, fallbackRadius int) mapset.Set[geometry.Pos] {
	a, ok := w.Actors[id]
	pos, placed := w.Positions[id]
	if !ok || !placed || pos.Level != level.ID {
		return mapset.New[geometry.Pos]()
	}
	return ComputeFOV(level, pos.Cell(), a.VisionRadius(fallbackRadius))
}
