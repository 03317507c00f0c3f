package systems

import (
	"math"

	"tlb-server/internal/core/types"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
)

// RayResult - результат выстрела лучом.
type RayResult struct {
	// Cells - клетки, через которые прошёл луч (без стартовой).
	Cells []geometry.Pos
	// Hit - первая блокирующая запись в индексе персонажей, не равная стрелку.
	Hit     types.EntityID
	HitCell geometry.Pos
	// Blocked - луч упёрся в стену или закрытую дверь.
	Blocked bool
}

// CastRay проводит луч из from через toward не дальше rng шагов.
// Луч останавливается ПЕРЕД непробиваемой клеткой и НА клетке с первой целью.
func CastRay(level *domain.Level, shooter types.EntityID, from, toward geometry.Pos, rng int) RayResult {
	var res RayResult
	if from == toward || rng <= 0 {
		return res
	}

	for p := range geometry.NewRay(from, toward, rng).Cells() {
		if p == from {
			continue
		}
		if level.IsProjectileBlocking(p) {
			res.Blocked = true
			break
		}
		res.Cells = append(res.Cells, p)
		if id, ok := firstBlocker(level, p, shooter); ok {
			res.Hit = id
			res.HitCell = p
			break
		}
	}
	return res
}

func firstBlocker(level *domain.Level, p geometry.Pos, except types.EntityID) (types.EntityID, bool) {
	for _, occ := range level.Get(domain.IndexCharacter, p) {
		if occ.Blocking && occ.ID != except {
			return occ.ID, true
		}
	}
	return types.NilEntityID, false
}

// ConeCells - клетки конуса оружия с разбросом (цепь манрики).
// Конус - треугольник из стрелка и двух точек по бокам от точки прицела на дистанции rng,
// разведённых на spread клеток. В результат попадают клетки в пределах дальности,
// до которых из стрелка долетает луч.
func ConeCells(level *domain.Level, shooter types.EntityID, from, toward geometry.Pos, rng, spread int) []geometry.Pos {
	if from == toward || rng <= 0 {
		return nil
	}
	dx, dy := float64(toward.X-from.X), float64(toward.Y-from.Y)
	length := math.Hypot(dx, dy)
	ux, uy := dx/length, dy/length

	tip := geometry.P(from.X+int(math.Round(ux*float64(rng))), from.Y+int(math.Round(uy*float64(rng))))
	half := float64(spread)
	left := geometry.P(tip.X+int(math.Round(-uy*half)), tip.Y+int(math.Round(ux*half)))
	right := geometry.P(tip.X+int(math.Round(uy*half)), tip.Y+int(math.Round(-ux*half)))

	cone := geometry.NewTriangle(from, left, right)
	var cells []geometry.Pos
	for p := range cone.Cells() {
		if p == from || !level.Map.InBounds(p) || from.ChebyshevTo(p) > rng {
			continue
		}
		if reaches(level, shooter, from, p) {
			cells = append(cells, p)
		}
	}
	return cells
}

// reaches - долетит ли луч до клетки target, не упёршись в стену и не задев никого по пути.
func reaches(level *domain.Level, shooter types.EntityID, from, target geometry.Pos) bool {
	res := CastRay(level, shooter, from, target, from.ChebyshevTo(target))
	if len(res.Cells) == 0 {
		return false
	}
	return res.Cells[len(res.Cells)-1] == target
}

// FindInteractable ищет интерактивный объект рядом с персонажем (область 3x3).
// Если target задан, берётся объект в этой клетке, иначе - первый по порядку строк.
func FindInteractable(w *domain.World, level *domain.Level, cell geometry.Pos, target *geometry.Pos) (*domain.Interactable, geometry.Pos, bool) {
	area := geometry.Around(cell, 1)
	if target != nil {
		if !area.Contains(*target) {
			return nil, geometry.Pos{}, false
		}
		it, ok := w.InteractableAt(level.ID, *target)
		return it, *target, ok
	}
	for p := range area.Cells() {
		if it, ok := w.InteractableAt(level.ID, p); ok {
			return it, p, true
		}
	}
	return nil, geometry.Pos{}, false
}
