package events

import (
	"tlb-server/internal/domain"
	"tlb-server/internal/engine/handlers"

	"github.com/leonelquinteros/gotext"
)

// EventFunc доводит событие до конца и описывает его для журнала.
type EventFunc func(ctx handlers.Context, ev domain.GameEvent) handlers.Result

var registry = map[domain.EventType]EventFunc{
	domain.EventFinishedTurn:    HandleFinishedTurn,
	domain.EventDidDamage:       HandleDidDamage,
	domain.EventDied:            HandleDied,
	domain.EventDoorToggled:     HandleDoorToggled,
	domain.EventLevelTransition: HandleLevelTransition,
	domain.EventModeChanged:     HandleModeChanged,
}

// Dispatch находит обработчик события. Незнакомые события молча пропускаются.
func Dispatch(ctx handlers.Context, ev domain.GameEvent) handlers.Result {
	fn, ok := registry[ev.Type]
	if !ok {
		return handlers.EmptyResult()
	}
	return fn(ctx, ev)
}

func name(w *domain.World, ev domain.GameEvent) string {
	if a, ok := w.Actors[ev.Actor]; ok {
		return a.Name
	}
	return "?"
}

func HandleFinishedTurn(ctx handlers.Context, ev domain.GameEvent) handlers.Result {
	return handlers.Info(gotext.Get("%s заканчивает ход.", name(ctx.World, ev)))
}

func HandleDidDamage(ctx handlers.Context, ev domain.GameEvent) handlers.Result {
	target := "?"
	hp := 0
	if a, ok := ctx.World.Actors[ev.Target]; ok {
		target = a.Name
		if a.Stats != nil {
			hp = a.Stats.HP
		}
	}
	return handlers.Result{
		Msg:     gotext.Get("%s наносит %d урона: %s (осталось %d).", name(ctx.World, ev), ev.Amount, target, hp),
		MsgType: handlers.MsgCombat,
	}
}

// HandleDied убирает погибшего из очереди ходов. Труп остаётся до сброса.
func HandleDied(ctx handlers.Context, ev domain.GameEvent) handlers.Result {
	if ctx.Turns != nil {
		ctx.Turns.Unregister(ev.Actor)
	}
	return handlers.Result{
		Msg:     gotext.Get("%s погибает.", name(ctx.World, ev)),
		MsgType: handlers.MsgCombat,
	}
}

func HandleDoorToggled(ctx handlers.Context, ev domain.GameEvent) handlers.Result {
	door, ok := ctx.World.Interactables[ev.Target]
	if !ok {
		return handlers.EmptyResult()
	}
	if door.Open {
		return handlers.Info(gotext.Get("%s открывает дверь.", name(ctx.World, ev)))
	}
	return handlers.Info(gotext.Get("%s закрывает дверь.", name(ctx.World, ev)))
}

func HandleModeChanged(ctx handlers.Context, ev domain.GameEvent) handlers.Result {
	if ev.Amount != 0 {
		return handlers.Info(gotext.Get("Пошаговый режим."))
	}
	return handlers.Info(gotext.Get("Реальное время."))
}
