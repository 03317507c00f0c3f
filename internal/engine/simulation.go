package engine

import (
	"fmt"
	"time"

	"tlb-server/internal/core/types"
	"tlb-server/internal/domain"
	"tlb-server/internal/engine/handlers"
	"tlb-server/internal/engine/handlers/actions"
	"tlb-server/internal/engine/handlers/admin"
	"tlb-server/internal/geometry"
	"tlb-server/internal/systems"
	"tlb-server/pkg/api"
	"tlb-server/pkg/logger"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
)

// Simulation - весь изменяемый мир и часы. Владеет им ровно одна горутина
// (Service); методы не потокобезопасны.
type Simulation struct {
	Config Config

	World    *domain.World
	Turns    *TurnManager
	Viewport domain.Viewport

	// Cursor - клетка под курсором для предпросмотра; nil, пока курсора нет.
	Cursor *geometry.Pos

	handlers map[domain.ActionType]handlers.HandlerFunc
	pending  []domain.InternalCommand

	logs   []api.LogEntry
	logSeq uint64

	tick    uint64
	elapsed time.Duration

	resetRequested bool
}

// NewSimulation строит башню, заселяет её и запускает часы с нуля.
func NewSimulation(cfg Config) (*Simulation, error) {
	s := &Simulation{
		Config:   cfg,
		World:    domain.NewWorld(domain.NewTower(), 0),
		Viewport: domain.NewViewport(cfg.ViewportW, cfg.ViewportH),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	s.registerHandlers()

	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulation) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionMoveTo] = handlers.WithPayload(actions.HandleMoveTo)
	s.handlers[domain.ActionInteract] = handlers.WithOptionalPayload(actions.HandleInteract)
	s.handlers[domain.ActionAttack] = handlers.WithPayload(actions.HandleAttack)
	s.handlers[domain.ActionPickup] = handlers.WithEmptyPayload(actions.HandlePickup)
	s.handlers[domain.ActionDrop] = handlers.WithEmptyPayload(actions.HandleDrop)
	s.handlers[domain.ActionEquip] = handlers.WithEmptyPayload(actions.HandleEquip)
	s.handlers[domain.ActionToggleMode] = handlers.WithEmptyPayload(actions.HandleToggleMode)
	s.handlers[domain.ActionEndTurn] = handlers.WithEmptyPayload(actions.HandleEndTurn)
	s.handlers[domain.ActionCycleActive] = handlers.WithEmptyPayload(actions.HandleCycleActive)
	s.handlers[domain.ActionHover] = handlers.WithPayload(actions.HandleHover)
	s.handlers[domain.ActionReset] = handlers.WithEmptyPayload(admin.HandleReset)

	if s.Config.Cheats {
		s.handlers[domain.ActionTeleport] = handlers.WithPayload(admin.HandleTeleport)
		s.handlers[domain.ActionHeal] = handlers.WithEmptyPayload(admin.HandleHeal)
	}
}

func (s *Simulation) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component":  "simulation",
		"generation": s.World.Generation,
	})
}

// Reset пересобирает мир: этажи, население, планировщик и часы.
func (s *Simulation) Reset() error {
	s.World.Clear()
	floors := buildFloors(s.Config, s.World.Tower)
	if err := populate(s.Config, s.World, floors); err != nil {
		return fmt.Errorf("reset generation %d: %w", s.World.Generation, err)
	}

	s.Turns = NewTurnManager(s.Config.Costs, s.Config.ActionPoints)
	for _, id := range s.World.ActorIDs() {
		a := s.World.Actors[id]
		if a.TakesTurns && a.IsAlive() {
			s.Turns.Register(id, a.PlayerControlled)
		}
	}

	s.pending = s.pending[:0]
	s.Cursor = nil
	s.tick = 0
	s.elapsed = 0
	s.resetRequested = false

	s.discover()
	s.centerViewport()

	s.log().WithFields(logrus.Fields{
		"seed":   s.Config.Seed,
		"levels": s.World.Tower.Len(),
		"actors": len(s.World.Actors),
		"roster": s.Turns.Len(),
	}).Info("World reset")
	s.AddLog(gotext.Get("Башня перестроена."), handlers.MsgInfo)
	return nil
}

// Submit ставит намерение в очередь до следующего тика.
func (s *Simulation) Submit(cmd domain.InternalCommand) {
	s.pending = append(s.pending, cmd)
}

// Tick продвигает симуляцию на dt.
func (s *Simulation) Tick(dt time.Duration) {
	s.tick++
	s.elapsed += dt

	// 1. Намерения
	cmds := s.pending
	s.pending = nil
	for _, cmd := range cmds {
		s.execute(cmd, false)
		if s.resetRequested {
			s.resetNow()
			return
		}
	}

	// 2. Движение по путям
	systems.AdvancePaths(s.World, dt.Seconds())

	// 3. ИИ того, чей ход
	if s.Turns.IsTurnBased() {
		s.processAITurn()
	}

	// 4. Открытие карты
	s.discover()

	// 5. Ход переходит только после того, как всё остальное устоялось
	s.Turns.Tick(s.hasPath)

	// 6. Камера
	s.centerViewport()

	// 7. Лимит времени
	if s.Config.TimeLimit > 0 && s.elapsed >= s.Config.TimeLimit {
		s.log().WithField("elapsed", s.elapsed).Info("Time limit reached")
		s.resetNow()
	}
}

func (s *Simulation) resetNow() {
	if err := s.Reset(); err != nil {
		s.log().WithError(err).Error("Reset failed")
	}
}

func (s *Simulation) hasPath(id types.EntityID) bool {
	return !s.World.Paths[id].Empty()
}

// execute выполняет одно намерение. internal - команду подал сам движок (ИИ),
// а не наблюдатель: тогда можно действовать и за NPC.
func (s *Simulation) execute(cmd domain.InternalCommand, internal bool) {
	cmdLogger := s.log().WithFields(logrus.Fields{
		"action": cmd.Action.String(),
		"token":  cmd.Token,
	})

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		cmdLogger.Warn("No handler for action")
		return
	}

	id := cmd.Token
	if id.IsNil() {
		id = s.Turns.Active()
	}
	actor := s.World.Actors[id]

	if actor != nil && !internal && !actor.PlayerControlled {
		s.AddLog(gotext.Get("Этим персонажем нельзя управлять."), handlers.MsgError)
		return
	}
	if cmd.Action.IsGated() {
		if actor == nil || !actor.IsAlive() || !s.Turns.CanAct(actor.ID) {
			s.AddLog(gotext.Get("Сейчас нельзя действовать."), handlers.MsgError)
			return
		}
	}

	ctx := s.contextFor(actor)
	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		cmdLogger.WithError(err).Warn("Command rejected")
		return
	}
	s.applyResult(ctx, result)
}

func (s *Simulation) contextFor(actor *domain.Actor) handlers.Context {
	ctx := handlers.Context{
		World:     s.World,
		Turns:     s.Turns,
		Actor:     actor,
		Tick:      s.tick,
		Path:      systems.PathOptions{MaxNodes: s.Config.MaxPathNodes},
		WalkSpeed: s.Config.WalkSpeed,
		SetCursor: func(cell geometry.Pos) {
			s.Cursor = &cell
		},
		Reset: func() {
			s.resetRequested = true
		},
	}
	if actor != nil {
		if level, ok := s.World.LevelOf(actor.ID); ok {
			ctx.Level = level
		}
	}
	return ctx
}

// discover отмечает увиденные клетки на всех этажах, где есть живые игроки.
func (s *Simulation) discover() {
	for _, id := range s.World.Tower.IDs() {
		level := s.World.Tower.MustGet(id)
		visible, set := systems.VisibilityOf(s.World, level, s.Config.VisionRadius)
		if set.Size() == 0 {
			continue
		}
		if n := level.Map.Update(visible); n > 0 {
			s.log().WithFields(logrus.Fields{"level": id, "cells": n}).Debug("Cells discovered")
		}
	}
}

// centerViewport ставит камеру на активного персонажа.
func (s *Simulation) centerViewport() {
	if pos, ok := s.World.Positions[s.Turns.Active()]; ok {
		s.Viewport.CenterAt(pos)
	}
}

// TickCount - номер текущего тика.
func (s *Simulation) TickCount() uint64 {
	return s.tick
}

// TimeLeft - сколько осталось до автоматического сброса.
func (s *Simulation) TimeLeft() time.Duration {
	if s.Config.TimeLimit <= 0 {
		return 0
	}
	return max(s.Config.TimeLimit-s.elapsed, 0)
}
