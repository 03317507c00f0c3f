package actions

import (
	"tlb-server/internal/domain"
	"tlb-server/internal/engine/handlers"
	"tlb-server/internal/geometry"
	"tlb-server/internal/systems"
	"tlb-server/pkg/api"
	"tlb-server/pkg/logger"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
)

// HandleMove - шаг на соседнюю клетку. Стоит как короткая прогулка.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	from, ok := ctx.Cell()
	if !ok {
		return handlers.Fail(gotext.Get("Некому идти.")), nil
	}
	to := from.Add(geometry.P(p.Dx, p.Dy))

	// Поиск пути проверяет и занятость клетки, и срезание углов по диагонали
	path := systems.FindPath(ctx.Level, ctx.Actor.ID, from, to, ctx.Path)
	if len(path) != 1 {
		return handlers.Fail(gotext.Get("Путь прегражден.")), nil
	}
	return Walk(ctx, path)
}

// HandleMoveTo прокладывает путь до клетки и отправляет персонажа в путь.
func HandleMoveTo(ctx handlers.Context, p api.CellPayload) (handlers.Result, error) {
	from, ok := ctx.Cell()
	if !ok {
		return handlers.Fail(gotext.Get("Некому идти.")), nil
	}
	to := geometry.P(p.X, p.Y)
	if to == from {
		return handlers.EmptyResult(), nil
	}

	path := systems.FindPath(ctx.Level, ctx.Actor.ID, from, to, ctx.Path)
	if len(path) == 0 {
		return handlers.Fail(gotext.Get("Туда не пройти.")), nil
	}
	return Walk(ctx, path)
}

// Walk списывает стоимость пути и вешает путь на персонажа.
// Им пользуются и игроки, и ИИ: путь NPC уже обрезан по бюджету.
func Walk(ctx handlers.Context, path []domain.Position) (handlers.Result, error) {
	if len(path) == 0 {
		return handlers.Fail(gotext.Get("Туда не пройти.")), nil
	}
	if !ctx.Turns.SpendWalk(ctx.Actor.ID, len(path)) {
		return handlers.Fail(gotext.Get("Слишком далеко: не хватит очков действия.")), nil
	}

	speed := ctx.Actor.Speed
	if speed <= 0 {
		speed = ctx.WalkSpeed
	}
	ctx.World.Paths[ctx.Actor.ID] = domain.NewPath(path, speed)

	logger.Log.WithFields(logrus.Fields{
		"component": "move_handler",
		"actor_id":  ctx.Actor.ID,
		"steps":     len(path),
		"goal":      path[len(path)-1].Cell(),
	}).Debug("Walk started")
	return handlers.EmptyResult(), nil
}
