package systems

import (
	"fmt"

	"tlb-server/internal/core/types"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// InteractResult - что произошло при взаимодействии.
type InteractResult struct {
	Object *domain.Interactable
	Cell   geometry.Pos
	// Opened/Closed - для дверей, Moved - персонаж ушёл по лестнице.
	Opened bool
	Closed bool
	Moved  bool
}

// ApplyDoor переключает дверь инструментами персонажа и переносит новые флаги
// проходимости и прозрачности в индекс. Возвращает true, если состояние изменилось.
func ApplyDoor(level *domain.Level, door *domain.Interactable, cell geometry.Pos, active, passive *domain.Item) bool {
	if !door.Toggle(active, passive) {
		return false
	}
	level.SetBlocking(domain.IndexCharacter, door.ID, cell, door.IsBlocking())
	level.SetSightBlocking(domain.IndexCharacter, door.ID, cell, door.IsSightBlocking())
	return true
}

// Interact - взаимодействие персонажа с соседним объектом.
// target == nil - первый объект в области 3x3 вокруг персонажа.
func Interact(w *domain.World, actorID types.EntityID, target *geometry.Pos) (InteractResult, error) {
	var res InteractResult

	level, ok := w.LevelOf(actorID)
	if !ok {
		return res, fmt.Errorf("interact %v: %w", actorID, domain.ErrUnknownActor)
	}
	cell, _, _ := w.CellOf(actorID)

	obj, objCell, ok := FindInteractable(w, level, cell, target)
	if !ok {
		return res, domain.ErrNothingHere
	}
	res.Object, res.Cell = obj, objCell

	interactLogger := logger.Log.WithFields(logrus.Fields{
		"component": "interaction_system",
		"actor_id":  actorID,
		"object_id": obj.ID,
		"kind":      obj.Kind.String(),
	})

	switch obj.Kind {
	case domain.KeyDoor:
		// Дверь не закрывается на стоящего в проёме
		if _, busy := w.ActorAt(level.ID, objCell); obj.Open && busy {
			interactLogger.Debug("Doorway is occupied.")
			return res, domain.ErrBlocked
		}
		active, passive := w.Tools(actorID)
		if !ApplyDoor(level, obj, objCell, active, passive) {
			interactLogger.WithField("min_level", obj.MinLevel).Debug("Door stays locked.")
			return res, domain.ErrDoorLocked
		}
		res.Opened, res.Closed = obj.Open, !obj.Open
		interactLogger.WithField("open", obj.Open).Info("Door toggled.")

	case domain.Stairs:
		dest, ok := w.Tower.Get(obj.Target.Level)
		if !ok {
			return res, fmt.Errorf("stairs %v: level %d: %w", obj.ID, obj.Target.Level, domain.ErrNothingHere)
		}
		if dest.IsBlocking(obj.Target.Cell()) {
			return res, domain.ErrBlocked
		}
		if err := w.Relocate(actorID, obj.Target); err != nil {
			return res, err
		}
		res.Moved = true
		interactLogger.WithField("to_level", obj.Target.Level).Info("Actor took the stairs.")
	}
	return res, nil
}
