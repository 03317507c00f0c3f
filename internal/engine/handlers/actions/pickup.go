package actions

import (
	"errors"

	"tlb-server/internal/domain"
	"tlb-server/internal/engine/handlers"
	"tlb-server/internal/systems"

	"github.com/leonelquinteros/gotext"
)

// HandlePickup обрабатывает команду PICKUP - подбор верхнего предмета под ногами
func HandlePickup(ctx handlers.Context) (handlers.Result, error) {
	item, err := systems.TryPickup(ctx.World, ctx.ActorID())
	switch {
	case errors.Is(err, domain.ErrNothingHere):
		return handlers.Fail(gotext.Get("Здесь ничего нет.")), nil
	case errors.Is(err, domain.ErrInventory):
		return handlers.Fail(gotext.Get("Инвентарь полон.")), nil
	case err != nil:
		return handlers.Result{}, err
	}
	return handlers.Info(gotext.Get("%s подбирает: %s.", ctx.Actor.Name, item.Name)), nil
}
