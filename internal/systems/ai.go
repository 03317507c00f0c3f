package systems

import (
	"tlb-server/internal/core/types"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// NPCDecision - что NPC делает в свой ход.
type NPCDecision struct {
	Action domain.ActionType
	// Toward - клетка цели атаки.
	Toward geometry.Pos
	// Path - маршрут для ActionMoveTo, уже обрезанный по бюджету.
	Path []domain.Position
}

// AIOptions - параметры решения.
type AIOptions struct {
	VisionRadius int
	// MaxSteps - сколько шагов NPC может пройти за одно действие.
	MaxSteps int
	Path     PathOptions
}

// ComputeNPCAction решает, что делать NPC в его ход.
// Враждебный бьёт видимого игрока в пределах оружия, иначе идёт к ближайшему видимому,
// иначе заканчивает ход. Мирные всегда заканчивают ход.
func ComputeNPCAction(w *domain.World, npcID types.EntityID, opts AIOptions) NPCDecision {
	end := NPCDecision{Action: domain.ActionEndTurn}

	npc, ok := w.Actors[npcID]
	level, placed := w.LevelOf(npcID)
	if !ok || !placed || !npc.IsAlive() || !npc.IsHostile() {
		return end
	}
	from, _, _ := w.CellOf(npcID)

	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"npc_id":    npcID,
		"npc_name":  npc.Name,
	})

	target, targetCell, ok := nearestVisiblePlayer(w, level, npc, from, opts.VisionRadius)
	if !ok {
		aiLogger.Debug("No visible target. Action: END_TURN")
		return end
	}
	if !npc.AI.Notices(from.DistanceTo(targetCell)) {
		aiLogger.Debug("Target visible but out of aggro range. Action: END_TURN")
		return end
	}

	wp := WeaponOf(w, npcID)
	if ray := CastRay(level, npcID, from, targetCell, wp.Range); ray.Hit == target {
		aiLogger.WithField("target_id", target).Debug("Target in attack range. Action: ATTACK")
		return NPCDecision{Action: domain.ActionAttack, Toward: targetCell}
	}

	path := approach(level, npcID, from, targetCell, opts.Path)
	if len(path) == 0 {
		aiLogger.Debug("Path is blocked. Action: END_TURN")
		return end
	}
	if opts.MaxSteps > 0 && len(path) > opts.MaxSteps {
		path = path[:opts.MaxSteps]
	}
	aiLogger.WithField("steps", len(path)).Debug("Pursuing target. Action: MOVE_TO")
	return NPCDecision{Action: domain.ActionMoveTo, Path: path}
}

// nearestVisiblePlayer - ближайший живой игрок в поле зрения NPC.
func nearestVisiblePlayer(w *domain.World, level *domain.Level, npc *domain.Actor, from geometry.Pos, fallbackRadius int) (types.EntityID, geometry.Pos, bool) {
	radius := npc.VisionRadius(fallbackRadius)
	best, bestCell, bestDist := types.NilEntityID, geometry.Pos{}, 0.0
	for _, id := range w.ActorsOn(level.ID) {
		a := w.Actors[id]
		if !a.PlayerControlled || !a.IsAlive() {
			continue
		}
		cell := w.Positions[id].Cell()
		dist := from.DistanceTo(cell)
		if dist > float64(radius) || !HasLineOfSight(level, from, cell) {
			continue
		}
		if best.IsNil() || dist < bestDist {
			best, bestCell, bestDist = id, cell, dist
		}
	}
	return best, bestCell, !best.IsNil()
}

// approach ищет кратчайший путь к любой свободной клетке рядом с целью.
func approach(level *domain.Level, id types.EntityID, from, target geometry.Pos, opts PathOptions) []domain.Position {
	var best []domain.Position
	for _, n := range target.Neighbors8() {
		if n == from {
			return nil
		}
		path := FindPath(level, id, from, n, opts)
		if len(path) > 0 && (best == nil || len(path) < len(best)) {
			best = path
		}
	}
	return best
}
