package actions

import (
	"tlb-server/internal/domain"
	"tlb-server/internal/engine/handlers"

	"github.com/leonelquinteros/gotext"
)

// HandleEndTurn досрочно заканчивает ход. Имеет смысл только в пошаговом режиме.
func HandleEndTurn(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Actor == nil || !ctx.Turns.RequestEndTurn(ctx.Actor.ID) {
		return handlers.Fail(gotext.Get("Сейчас не ваш ход.")), nil
	}
	return handlers.Result{
		Events: []domain.GameEvent{{Type: domain.EventFinishedTurn, Tick: ctx.Tick, Actor: ctx.Actor.ID}},
	}, nil
}

// HandleToggleMode переключает реальное время и пошаговый режим.
// Все начатые пути обрываются: в новом режиме они могли бы стоить иначе.
func HandleToggleMode(ctx handlers.Context) (handlers.Result, error) {
	clear(ctx.World.Paths)
	turnBased := ctx.Turns.Toggle(ctx.Turns.Active())

	amount := 0
	if turnBased {
		amount = 1
	}
	return handlers.Result{
		Events: []domain.GameEvent{{Type: domain.EventModeChanged, Tick: ctx.Tick, Actor: ctx.Turns.Active(), Amount: amount}},
	}, nil
}

// HandleCycleActive передаёт управление следующему персонажу игрока.
func HandleCycleActive(ctx handlers.Context) (handlers.Result, error) {
	id := ctx.Turns.CycleActive()
	a, ok := ctx.World.Actors[id]
	if !ok {
		return handlers.Fail(gotext.Get("Некем управлять.")), nil
	}
	return handlers.Info(gotext.Get("Управление: %s.", a.Name)), nil
}
