package actions

import (
	"errors"

	"tlb-server/internal/domain"
	"tlb-server/internal/engine/handlers"
	"tlb-server/internal/systems"

	"github.com/leonelquinteros/gotext"
)

// HandleEquip меняет местами предмет в руках и запасной
func HandleEquip(ctx handlers.Context) (handlers.Result, error) {
	item, err := systems.SwapEquipment(ctx.World, ctx.ActorID())
	if errors.Is(err, domain.ErrNothingHere) {
		return handlers.Fail(gotext.Get("Нечего взять в руки.")), nil
	}
	if err != nil {
		return handlers.Result{}, err
	}
	if item == nil {
		return handlers.Info(gotext.Get("%s убирает предмет из рук.", ctx.Actor.Name)), nil
	}
	return handlers.Info(gotext.Get("%s берёт в руки: %s.", ctx.Actor.Name, item.Name)), nil
}
