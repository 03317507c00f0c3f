package actions

import (
	"errors"

	"tlb-server/internal/domain"
	"tlb-server/internal/engine/handlers"
	"tlb-server/internal/systems"

	"github.com/leonelquinteros/gotext"
)

// HandleDrop обрабатывает команду DROP - последний подобранный предмет ложится под ноги
func HandleDrop(ctx handlers.Context) (handlers.Result, error) {
	item, err := systems.TryDrop(ctx.World, ctx.ActorID())
	switch {
	case errors.Is(err, domain.ErrNothingHere):
		return handlers.Fail(gotext.Get("Инвентарь пуст.")), nil
	case err != nil:
		return handlers.Result{}, err
	}
	return handlers.Info(gotext.Get("%s выбрасывает: %s.", ctx.Actor.Name, item.Name)), nil
}
