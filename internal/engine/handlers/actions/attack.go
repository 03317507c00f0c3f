package actions

import (
	"tlb-server/internal/engine/handlers"
	"tlb-server/internal/geometry"
	"tlb-server/internal/systems"
	"tlb-server/pkg/api"

	"github.com/leonelquinteros/gotext"
)

// HandleAttack бьёт активным оружием в сторону клетки.
// Удар забирает все очки хода, даже если никого не задел.
func HandleAttack(ctx handlers.Context, p api.CellPayload) (handlers.Result, error) {
	from, ok := ctx.Cell()
	if !ok {
		return handlers.Fail(gotext.Get("Некому бить.")), nil
	}
	toward := geometry.P(p.X, p.Y)
	if toward == from {
		return handlers.Fail(gotext.Get("Нужно выбрать направление удара.")), nil
	}

	id := ctx.Actor.ID
	ctx.Turns.Fight(id)
	res, events, err := systems.ResolveAttack(ctx.World, id, toward, ctx.Tick)
	ctx.Turns.ActionDone(id)
	if err != nil {
		return handlers.Result{}, err
	}

	// Попадания описывает журнал событий
	if len(res.Hits) == 0 {
		return handlers.Result{
			Msg:     gotext.Get("%s бьёт в пустоту.", ctx.Actor.Name),
			MsgType: handlers.MsgCombat,
		}, nil
	}
	return handlers.Result{Events: events}, nil
}
