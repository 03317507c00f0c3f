package engine

import (
	"cmp"
	"container/heap"
	"slices"

	"tlb-server/internal/core/types"
	"tlb-server/internal/domain"
	"tlb-server/pkg/api"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	ModeRealTime  = "REALTIME"
	ModeTurnBased = "TURN_BASED"
)

// TurnManager раздаёт ходы в пошаговом режиме.
//
// Каждый участник находится ровно в одном месте: в слоте current, в очереди
// ожидания или в списке уже походивших. Когда ожидающие кончаются, очередь
// заполняется заново в том порядке, в каком участники заканчивали ход.
type TurnManager struct {
	costs        CostTable
	actionPoints int

	turnBased bool

	// Участники в порядке регистрации
	order  []types.EntityID
	player map[types.EntityID]bool

	waiting TurnQueue
	items   map[types.EntityID]*TurnItem
	ticket  uint64

	// Уже сходившие в этом круге, в порядке хода
	tookTurn []types.EntityID

	current      types.EntityID
	inTurn       *domain.InTurn
	endRequested bool

	active        types.EntityID
	activeChanged bool
}

func NewTurnManager(costs CostTable, actionPoints int) *TurnManager {
	return &TurnManager{
		costs:        costs,
		actionPoints: actionPoints,
		player:       make(map[types.EntityID]bool),
		waiting:      make(TurnQueue, 0),
		items:        make(map[types.EntityID]*TurnItem),
	}
}

func (tm *TurnManager) log() *logrus.Entry {
	return logger.Log.WithField("component", "turn_manager")
}

// --- Участники ---

// Register добавляет участника. В пошаговом режиме он встаёт в конец очереди.
func (tm *TurnManager) Register(id types.EntityID, playerControlled bool) {
	if _, ok := tm.player[id]; ok {
		return
	}
	tm.player[id] = playerControlled
	tm.order = append(tm.order, id)

	if tm.turnBased {
		tm.enqueue(id)
	}
	if playerControlled && tm.active.IsNil() {
		tm.setActive(id)
	}

	tm.log().WithFields(logrus.Fields{
		"entity_id": id,
		"player":    playerControlled,
	}).Debug("Entity added to TurnManager")
}

// Unregister убирает участника отовсюду (смерть, выход).
func (tm *TurnManager) Unregister(id types.EntityID) {
	if _, ok := tm.player[id]; !ok {
		return
	}
	delete(tm.player, id)
	tm.order = slices.DeleteFunc(tm.order, func(o types.EntityID) bool { return o == id })

	if item, ok := tm.items[id]; ok {
		tm.waiting.Remove(item)
		delete(tm.items, id)
	}
	tm.tookTurn = slices.DeleteFunc(tm.tookTurn, func(o types.EntityID) bool { return o == id })
	if tm.current == id {
		tm.current = types.NilEntityID
		tm.inTurn = nil
		tm.endRequested = false
	}
	if tm.active == id {
		tm.setActive(tm.nextPlayer(types.NilEntityID))
	}

	tm.log().WithField("entity_id", id).Debug("Entity removed from TurnManager")
}

func (tm *TurnManager) Len() int {
	return len(tm.order)
}

func (tm *TurnManager) IsPlayerControlled(id types.EntityID) bool {
	return tm.player[id]
}

func (tm *TurnManager) enqueue(id types.EntityID) {
	tm.ticket++
	item := &TurnItem{ID: id, Ticket: tm.ticket}
	heap.Push(&tm.waiting, item)
	tm.items[id] = item
}

func (tm *TurnManager) grant(id types.EntityID) {
	tm.current = id
	tm.inTurn = domain.NewInTurn(tm.actionPoints)
	tm.endRequested = false
	if tm.player[id] {
		tm.setActive(id)
	}
}

// --- Режим ---

// SetTurnBased включает или выключает пошаговый режим.
// При включении ход сразу получает activeID (если он участник), остальные ждут
// в порядке регистрации. При выключении все очереди очищаются.
func (tm *TurnManager) SetTurnBased(on bool, activeID types.EntityID) {
	tm.clearQueues()
	tm.turnBased = on

	if on {
		for _, id := range tm.order {
			if id != activeID {
				tm.enqueue(id)
			}
		}
		if _, ok := tm.player[activeID]; ok {
			tm.grant(activeID)
		} else {
			tm.Rotate()
		}
	}

	tm.log().WithFields(logrus.Fields{
		"mode":      tm.Mode(),
		"active_id": activeID,
		"roster":    len(tm.order),
	}).Info("Turn mode changed")
}

// Toggle переключает режим и возвращает true, если теперь пошаговый.
func (tm *TurnManager) Toggle(activeID types.EntityID) bool {
	tm.SetTurnBased(!tm.turnBased, activeID)
	return tm.turnBased
}

func (tm *TurnManager) IsTurnBased() bool {
	return tm.turnBased
}

func (tm *TurnManager) Mode() string {
	if tm.turnBased {
		return ModeTurnBased
	}
	return ModeRealTime
}

func (tm *TurnManager) clearQueues() {
	tm.waiting = tm.waiting[:0]
	clear(tm.items)
	tm.tookTurn = tm.tookTurn[:0]
	tm.current = types.NilEntityID
	tm.inTurn = nil
	tm.endRequested = false
}

// --- Ротация ---

// Rotate передаёт ход следующему ожидающему.
// Без участников ничего не делает, и ход не принадлежит никому.
func (tm *TurnManager) Rotate() {
	if !tm.current.IsNil() {
		tm.tookTurn = append(tm.tookTurn, tm.current)
		tm.current = types.NilEntityID
		tm.inTurn = nil
	}

	if tm.waiting.Len() == 0 {
		for _, id := range tm.tookTurn {
			tm.enqueue(id)
		}
		tm.tookTurn = tm.tookTurn[:0]
	}
	if tm.waiting.Len() == 0 {
		return
	}

	item := heap.Pop(&tm.waiting).(*TurnItem)
	delete(tm.items, item.ID)
	tm.grant(item.ID)

	tm.log().WithField("entity_id", item.ID).Debug("Turn granted")
}

// Tick - потиковый шаг пошагового режима. hasPath сообщает, идёт ли участник по пути.
// Возвращает true, если ход перешёл к другому.
func (tm *TurnManager) Tick(hasPath func(types.EntityID) bool) bool {
	if !tm.turnBased {
		return false
	}
	if tm.current.IsNil() {
		if len(tm.order) == 0 {
			return false
		}
		tm.Rotate()
		return !tm.current.IsNil()
	}

	if tm.inTurn.State == domain.TurnWalking && !hasPath(tm.current) {
		tm.inTurn.ActionDone()
	}
	if tm.inTurn.IsDone() || tm.endRequested {
		tm.Rotate()
		return true
	}
	return false
}

// RequestEndTurn - участник заканчивает ход досрочно. Действует только на того, чей ход.
func (tm *TurnManager) RequestEndTurn(id types.EntityID) bool {
	if !tm.turnBased || id.IsNil() || id != tm.current {
		return false
	}
	tm.endRequested = true
	return true
}

// --- Права и стоимость ---

// CanAct - может ли участник сейчас начать действие.
// В реальном времени может всегда; в пошаговом - только тот, чей ход, пока он
// не идёт и не дерётся и у него остались очки.
func (tm *TurnManager) CanAct(id types.EntityID) bool {
	if _, ok := tm.player[id]; !ok {
		return false
	}
	if !tm.turnBased {
		return true
	}
	return id == tm.current && tm.inTurn.State == domain.TurnIdle && !tm.inTurn.IsDone()
}

// WalkCost - сколько очков стоит путь из steps шагов и разрешён ли он вообще.
func (tm *TurnManager) WalkCost(id types.EntityID, steps int) (int, bool) {
	if steps <= 0 {
		return 0, false
	}
	if !tm.turnBased {
		_, ok := tm.player[id]
		return 0, ok
	}
	if id != tm.current || tm.inTurn == nil {
		return 0, false
	}

	t := tm.inTurn
	switch {
	case steps < tm.costs.ShortWalk && t.ActionPoints >= 1:
		return 1, true
	case steps < tm.costs.LongWalk && !t.HasWalked && t.ActionPoints >= 2:
		return 2, true
	}
	return 0, false
}

// SpendWalk списывает стоимость пути и переводит участника в Walking.
func (tm *TurnManager) SpendWalk(id types.EntityID, steps int) bool {
	cost, ok := tm.WalkCost(id, steps)
	if !ok {
		return false
	}
	if tm.turnBased {
		tm.inTurn.Walk(cost)
	}
	return true
}

// Fight тратит все очки на удар.
func (tm *TurnManager) Fight(id types.EntityID) {
	if tm.turnBased && id == tm.current && tm.inTurn != nil {
		tm.inTurn.Fight()
	}
}

// ActionDone - действие разрешено, участник снова в Idle.
func (tm *TurnManager) ActionDone(id types.EntityID) {
	if tm.turnBased && id == tm.current && tm.inTurn != nil {
		tm.inTurn.ActionDone()
	}
}

// Band - ступень подсветки для пути из steps шагов.
func (tm *TurnManager) Band(id types.EntityID, steps int) api.Band {
	if steps <= 0 {
		return api.BandNone
	}
	if !tm.turnBased {
		switch {
		case steps < tm.costs.ShortWalk:
			return api.BandNear
		case steps < tm.costs.LongWalk:
			return api.BandFar
		}
		return api.BandOutOfRange
	}

	switch cost, ok := tm.WalkCost(id, steps); {
	case !ok:
		return api.BandOutOfRange
	case cost == 1:
		return api.BandNear
	}
	return api.BandFar
}

// --- Активный персонаж ---

// CycleActive передаёт метку "активный" следующему персонажу игрока.
// В пошаговом режиме за меткой следуют только камера и интерфейс; ход не меняется.
func (tm *TurnManager) CycleActive() types.EntityID {
	next := tm.nextPlayer(tm.active)
	if !next.IsNil() && next != tm.active {
		tm.setActive(next)
	}
	return tm.active
}

func (tm *TurnManager) nextPlayer(after types.EntityID) types.EntityID {
	var players []types.EntityID
	for _, id := range tm.order {
		if tm.player[id] {
			players = append(players, id)
		}
	}
	if len(players) == 0 {
		return types.NilEntityID
	}
	i := slices.Index(players, after)
	return players[(i+1)%len(players)]
}

func (tm *TurnManager) setActive(id types.EntityID) {
	if tm.active == id {
		return
	}
	tm.active = id
	tm.activeChanged = true
}

// Active - персонаж, за которым следует камера и которому уходит ввод.
func (tm *TurnManager) Active() types.EntityID {
	return tm.active
}

// ActiveChanged сообщает, менялся ли активный персонаж с прошлого вызова, и сбрасывает флаг.
func (tm *TurnManager) ActiveChanged() bool {
	changed := tm.activeChanged
	tm.activeChanged = false
	return changed
}

// InTurn - чей сейчас ход и его состояние. Вне пошагового режима - nil.
func (tm *TurnManager) InTurn() (types.EntityID, *domain.InTurn) {
	return tm.current, tm.inTurn
}

// --- Отладка ---

// QueueSnapshot - состояние планировщика для /debug/queue.
type QueueSnapshot struct {
	Mode     string           `json:"mode"`
	Active   types.EntityID   `json:"active"`
	Current  types.EntityID   `json:"current"`
	InTurn   *domain.InTurn   `json:"inTurn,omitempty"`
	Waiting  []types.EntityID `json:"waiting"`
	TookTurn []types.EntityID `json:"tookTurn"`
	Roster   []types.EntityID `json:"roster"`
}

// Snapshot возвращает копию очередей для отладки
func (tm *TurnManager) Snapshot() QueueSnapshot {
	waiting := slices.Clone([]*TurnItem(tm.waiting))
	slices.SortFunc(waiting, func(a, b *TurnItem) int {
		return cmp.Compare(a.Ticket, b.Ticket)
	})

	// Инициализируем пустыми слайсами, а не nil. Тогда в JSON это будет "[]", а не "null"
	s := QueueSnapshot{
		Mode:     tm.Mode(),
		Active:   tm.active,
		Current:  tm.current,
		Waiting:  make([]types.EntityID, 0, len(waiting)),
		TookTurn: slices.Clone(tm.tookTurn),
		Roster:   slices.Clone(tm.order),
	}
	if s.TookTurn == nil {
		s.TookTurn = []types.EntityID{}
	}
	if s.Roster == nil {
		s.Roster = []types.EntityID{}
	}
	if tm.inTurn != nil {
		t := *tm.inTurn
		s.InTurn = &t
	}
	for _, item := range waiting {
		s.Waiting = append(s.Waiting, item.ID)
	}
	return s
}
