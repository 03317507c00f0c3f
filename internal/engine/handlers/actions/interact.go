package actions

import (
	"errors"

	"tlb-server/internal/domain"
	"tlb-server/internal/engine/handlers"
	"tlb-server/internal/geometry"
	"tlb-server/internal/systems"
	"tlb-server/pkg/api"

	"github.com/leonelquinteros/gotext"
)

// HandleInteract - дверь или лестница рядом с персонажем.
// Без клетки берётся первый объект в квадрате 3x3 вокруг.
func HandleInteract(ctx handlers.Context, p *api.CellPayload) (handlers.Result, error) {
	var target *geometry.Pos
	if p != nil {
		cell := geometry.P(p.X, p.Y)
		target = &cell
	}

	id := ctx.ActorID()
	res, err := systems.Interact(ctx.World, id, target)
	switch {
	case errors.Is(err, domain.ErrNothingHere):
		return handlers.Fail(gotext.Get("Рядом не с чем взаимодействовать.")), nil
	case errors.Is(err, domain.ErrDoorLocked):
		return handlers.Fail(gotext.Get("Заперто. Нужна ключ-карта уровня %d.", res.Object.MinLevel)), nil
	case errors.Is(err, domain.ErrBlocked):
		return handlers.Fail(gotext.Get("Проход занят.")), nil
	case err != nil:
		return handlers.Result{}, err
	}

	ev := domain.GameEvent{Type: domain.EventDoorToggled, Tick: ctx.Tick, Actor: id, Target: res.Object.ID}
	if res.Moved {
		ev.Type = domain.EventLevelTransition
		ev.Amount = int(res.Object.Target.Level)
	}
	return handlers.Result{Events: []domain.GameEvent{ev}}, nil
}
