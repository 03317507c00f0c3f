package handlers

import (
	"encoding/json"

	"tlb-server/internal/core/types"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
	"tlb-server/internal/systems"
)

// Типы записей журнала
const (
	MsgInfo   = "INFO"
	MsgCombat = "COMBAT"
	MsgError  = "ERROR"
)

// TurnGate описывает планировщик ходов так, как его видят хендлеры.
// engine.TurnManager неявно реализует этот интерфейс.
type TurnGate interface {
	CanAct(id types.EntityID) bool
	SpendWalk(id types.EntityID, steps int) bool
	Fight(id types.EntityID)
	ActionDone(id types.EntityID)
	RequestEndTurn(id types.EntityID) bool
	Toggle(activeID types.EntityID) bool
	CycleActive() types.EntityID
	Active() types.EntityID
	Unregister(id types.EntityID)
}

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	World *domain.World
	Turns TurnGate

	// Actor - тот, кто выполняет команду (игрок или NPC). Может быть nil для
	// системных команд, когда на этаже нет ни одного персонажа игрока.
	Actor *domain.Actor
	Level *domain.Level

	Tick uint64
	Path systems.PathOptions

	// WalkSpeed - скорость, если у актора своей нет.
	WalkSpeed float64

	// SetCursor двигает курсор предпросмотра.
	SetCursor func(cell geometry.Pos)
	// Reset пересобирает мир. Вызывается движком после хендлера.
	Reset func()
}

// ActorID - ID действующего или Nil.
func (c Context) ActorID() types.EntityID {
	if c.Actor == nil {
		return types.NilEntityID
	}
	return c.Actor.ID
}

// Cell - клетка действующего.
func (c Context) Cell() (geometry.Pos, bool) {
	if c.Actor == nil {
		return geometry.Pos{}, false
	}
	cell, _, ok := c.World.CellOf(c.Actor.ID)
	return cell, ok
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи движка напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, ERROR)

	// Events - что произошло (урон, смерть, переход между этажами).
	Events []domain.GameEvent
}

// HandlerFunc - это контракт для любой команды (MOVE, ATTACK, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// Fail - игровой отказ: не ошибка, а сообщение в журнал.
func Fail(msg string) Result {
	return Result{Msg: msg, MsgType: MsgError}
}

func Info(msg string) Result {
	return Result{Msg: msg, MsgType: MsgInfo}
}
