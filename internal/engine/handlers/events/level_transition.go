package events

import (
	"tlb-server/internal/domain"
	"tlb-server/internal/engine/handlers"
	"tlb-server/pkg/logger"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
)

// HandleLevelTransition - персонаж ушёл по лестнице. Сам перенос уже сделан
// системой взаимодействия; здесь только последствия.
func HandleLevelTransition(ctx handlers.Context, ev domain.GameEvent) handlers.Result {
	actor, ok := ctx.World.Actors[ev.Actor]
	if !ok {
		return handlers.EmptyResult()
	}
	// Путь на старом этаже больше не имеет смысла
	delete(ctx.World.Paths, ev.Actor)

	from := domain.LevelID(-1)
	if stairs, ok := ctx.World.Interactables[ev.Target]; ok {
		if pos, placed := ctx.World.Positions[stairs.ID]; placed {
			from = pos.Level
		}
	}
	to := domain.LevelID(ev.Amount)

	logger.Log.WithFields(logrus.Fields{
		"component":  "level_transition",
		"entity_id":  actor.ID,
		"from_level": from,
		"to_level":   to,
	}).Info("Actor changed level")

	if to > from {
		return handlers.Info(gotext.Get("%s поднимается на этаж %d.", actor.Name, int(to)))
	}
	return handlers.Info(gotext.Get("%s спускается на этаж %d.", actor.Name, int(to)))
}
