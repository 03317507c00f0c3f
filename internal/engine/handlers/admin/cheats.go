package admin

import (
	"fmt"

	"tlb-server/internal/domain"
	"tlb-server/internal/engine/handlers"
	"tlb-server/internal/geometry"

	"github.com/leonelquinteros/gotext"
)

// HandleReset пересобирает мир: этажи, население и планировщик.
func HandleReset(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Reset == nil {
		return handlers.Fail(gotext.Get("Сброс сейчас недоступен.")), nil
	}
	ctx.Reset()
	return handlers.EmptyResult(), nil
}

// TeleportPayload: { "x": 10, "y": 10, "level": 1 }
type TeleportPayload struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Level int `json:"level"`
}

func (p TeleportPayload) Validate() error {
	if p.X < 0 || p.Y < 0 || p.Level < 0 {
		return fmt.Errorf("teleport target (%d,%d) on level %d is invalid", p.X, p.Y, p.Level)
	}
	return nil
}

func HandleTeleport(ctx handlers.Context, p TeleportPayload) (handlers.Result, error) {
	if ctx.Actor == nil {
		return handlers.Fail(gotext.Get("Некого переносить.")), nil
	}
	dest, ok := ctx.World.Tower.Get(domain.LevelID(p.Level))
	if !ok {
		return handlers.Fail(gotext.Get("Этажа %d нет.", p.Level)), nil
	}
	cell := geometry.P(p.X, p.Y)
	if dest.IsBlocking(cell) {
		return handlers.Fail(gotext.Get("Клетка (%d,%d) занята.", cell.X, cell.Y)), nil
	}
	if err := ctx.World.Relocate(ctx.Actor.ID, domain.CellCenter(dest.ID, cell)); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Info(gotext.Get("%s переносится на клетку (%d,%d), этаж %d.", ctx.Actor.Name, cell.X, cell.Y, p.Level)), nil
}

func HandleHeal(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Actor == nil || ctx.Actor.Stats == nil {
		return handlers.Fail(gotext.Get("Некого лечить.")), nil
	}
	ctx.Actor.Stats.Heal(ctx.Actor.Stats.MaxHP)
	return handlers.Info(gotext.Get("%s полностью здоров.", ctx.Actor.Name)), nil
}
