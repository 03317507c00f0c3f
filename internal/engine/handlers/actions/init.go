package actions

import (
	"tlb-server/internal/engine/handlers"
	"tlb-server/internal/geometry"
	"tlb-server/pkg/api"

	"github.com/leonelquinteros/gotext"
)

// HandleInit ничего не меняет: клиент просто получит свежий снимок.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Info(gotext.Get("Добро пожаловать в Башню.")), nil
}

// HandleHover двигает курсор предпросмотра. Хода не тратит.
func HandleHover(ctx handlers.Context, p api.CellPayload) (handlers.Result, error) {
	if ctx.SetCursor != nil {
		ctx.SetCursor(geometry.P(p.X, p.Y))
	}
	return handlers.EmptyResult(), nil
}
