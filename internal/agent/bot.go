package agent

import (
	"context"
	"encoding/json"

	"tlb-server/internal/geometry"
	"tlb-server/pkg/api"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Server - то, что боту нужно от движка. engine.Service подходит как есть.
type Server interface {
	Subscribe(sessionID string) <-chan *api.Snapshot
	Unsubscribe(sessionID string)
	ProcessCommand(cmd api.ClientCommand) error
}

// patience - сколько снимков бот ждёт, что активный персонаж сдвинется после команды.
const patience = 20

// hop - дальность перебежки в пошаговом режиме; короче короткой прогулки.
const hop = 3

// Bot - разведчик (Headless Agent). Подключается так же, как любой наблюдатель:
// получает снимки и шлёт команды. Ведёт активного персонажа к ближайшей
// неисследованной границе карты; в пошаговом режиме сам заканчивает ход.
//
// Бот видит только то, что есть в снимке, и запоминает открытые клетки сам.
type Bot struct {
	SessionID string
	Server    Server

	generation uint32
	level      int
	known      map[geometry.Pos]bool // клетка -> стена
	rejected   mapset.Set[geometry.Pos]

	lastPos geometry.Pos
	target  *geometry.Pos
	waited  int
}

func NewBot(sessionID string, server Server) *Bot {
	logger.Log.WithField("session_id", sessionID).Info("Creating scout agent")
	return &Bot{
		SessionID: sessionID,
		Server:    server,
		known:     make(map[geometry.Pos]bool),
		rejected:  mapset.New[geometry.Pos](),
	}
}

func (b *Bot) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component":  "scout",
		"session_id": b.SessionID,
	})
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run(ctx context.Context) {
	inbox := b.Server.Subscribe(b.SessionID)
	defer b.Server.Unsubscribe(b.SessionID)

	for {
		select {
		case <-ctx.Done():
			b.log().Info("Agent shut down")
			return
		case snap, ok := <-inbox:
			if !ok {
				return
			}
			if cmd, ok := b.Decide(snap); ok {
				if err := b.Server.ProcessCommand(cmd); err != nil {
					b.log().WithError(err).Warn("Command rejected")
				}
			}
		}
	}
}

// Decide - мозг бота: по снимку решает, нужна ли команда.
func (b *Bot) Decide(snap *api.Snapshot) (api.ClientCommand, bool) {
	b.remember(snap)

	me, ok := activeOf(snap)
	if !ok || (me.Stats != nil && me.Stats.IsDead) {
		return api.ClientCommand{}, false
	}
	pos := geometry.P(me.Pos.X, me.Pos.Y)

	turnBased := snap.Mode == "TURN_BASED"
	if turnBased && (snap.InTurnEntityID != me.ID || snap.TurnState != "IDLE") {
		return api.ClientCommand{}, false
	}

	// Ждём, пока персонаж дойдёт; стоит слишком долго - цель недостижима
	if b.target != nil {
		if pos != b.lastPos {
			b.lastPos = pos
			b.waited = 0
		} else {
			b.waited++
		}
		arrived := pos == *b.target
		if !arrived && b.waited < patience {
			return api.ClientCommand{}, false
		}
		if !arrived {
			b.rejected.Put(*b.target)
		}
		b.target = nil
		if !arrived && turnBased {
			return command("END_TURN", nil), true
		}
	}

	goal, ok := b.frontier(pos)
	if !ok {
		if turnBased {
			return command("END_TURN", nil), true
		}
		return api.ClientCommand{}, false
	}
	if turnBased {
		// Длинный путь в пошаговом режиме не оплатить: идём короткими перебежками
		goal = b.hopToward(pos, goal)
	}

	b.target = &goal
	b.lastPos = pos
	b.waited = 0
	return command("MOVE_TO", api.CellPayload{X: goal.X, Y: goal.Y}), true
}

// hopToward - известная клетка пола не дальше hop от from, ближайшая к goal.
func (b *Bot) hopToward(from, goal geometry.Pos) geometry.Pos {
	if from.ChebyshevTo(goal) <= hop {
		return goal
	}
	best, bestDist := goal, -1
	for p := range geometry.Around(from, hop).Cells() {
		wall, ok := b.known[p]
		if !ok || wall || p == from || b.rejected.Has(p) {
			continue
		}
		if d := p.ChebyshevTo(goal); bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// remember переносит тайлы снимка в память; новое поколение или этаж - всё забыть.
func (b *Bot) remember(snap *api.Snapshot) {
	if snap.Generation != b.generation || snap.Level != b.level {
		b.generation = snap.Generation
		b.level = snap.Level
		clear(b.known)
		b.rejected.Clear()
		b.target = nil
		b.waited = 0
	}
	for _, t := range snap.Map {
		b.known[geometry.P(t.X, t.Y)] = t.IsWall
	}
}

// frontier - ближайшая известная клетка пола, у которой есть неизвестный сосед.
func (b *Bot) frontier(from geometry.Pos) (geometry.Pos, bool) {
	best, bestDist, found := geometry.Pos{}, 0, false
	for p, wall := range b.known {
		if wall || p == from || b.rejected.Has(p) || !b.touchesUnknown(p) {
			continue
		}
		d := from.ChebyshevTo(p)
		// Равные расстояния - по строкам, чтобы решение не зависело от порядка мапы
		if !found || d < bestDist || (d == bestDist && (p.Y < best.Y || (p.Y == best.Y && p.X < best.X))) {
			best, bestDist, found = p, d, true
		}
	}
	return best, found
}

func (b *Bot) touchesUnknown(p geometry.Pos) bool {
	for _, n := range p.Neighbors8() {
		if n.X < 0 || n.Y < 0 {
			continue
		}
		if _, ok := b.known[n]; !ok {
			return true
		}
	}
	return false
}

func activeOf(snap *api.Snapshot) (api.EntityView, bool) {
	for _, e := range snap.Entities {
		if e.ID == snap.ActiveEntityID {
			return e, true
		}
	}
	return api.EntityView{}, false
}

func command(action string, payload any) api.ClientCommand {
	cmd := api.ClientCommand{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err == nil {
			cmd.Payload = raw
		}
	}
	return cmd
}
