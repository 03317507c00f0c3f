package engine

import (
	"encoding/json"

	"tlb-server/internal/domain"
	"tlb-server/internal/engine/handlers/actions"
	"tlb-server/internal/systems"
	"tlb-server/pkg/api"
)

// processAITurn решает за NPC, чей сейчас ход. Игроков и занятых NPC не трогает:
// идущий по пути NPC дождётся конца пути, и ход перейдёт сам.
func (s *Simulation) processAITurn() {
	id, _ := s.Turns.InTurn()
	if id.IsNil() || s.Turns.IsPlayerControlled(id) || !s.Turns.CanAct(id) {
		return
	}
	npc, ok := s.World.Actors[id]
	if !ok || !npc.IsAlive() {
		s.Turns.RequestEndTurn(id)
		return
	}

	decision := systems.ComputeNPCAction(s.World, id, systems.AIOptions{
		VisionRadius: s.Config.VisionRadius,
		MaxSteps:     s.Config.Costs.ShortWalk - 1,
		Path:         systems.PathOptions{MaxNodes: s.Config.MaxPathNodes},
	})

	switch decision.Action {
	case domain.ActionAttack:
		payload, err := json.Marshal(api.CellPayload{X: decision.Toward.X, Y: decision.Toward.Y})
		if err != nil {
			s.log().WithError(err).Warn("AI attack payload")
			s.Turns.RequestEndTurn(id)
			return
		}
		s.execute(domain.InternalCommand{Action: domain.ActionAttack, Token: id, Payload: payload}, true)

	case domain.ActionMoveTo:
		ctx := s.contextFor(npc)
		res, err := actions.Walk(ctx, decision.Path)
		if err != nil || res.MsgType != "" {
			// Дойти не получилось: стоять и ждать лучше, чем зависнуть с ходом
			s.Turns.RequestEndTurn(id)
			return
		}
		s.applyResult(ctx, res)

	default:
		s.Turns.RequestEndTurn(id)
	}
}
