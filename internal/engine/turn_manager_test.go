package engine

import (
	"slices"
	"testing"

	"tlb-server/internal/core/types"
	"tlb-server/internal/core/types/enums"
	"tlb-server/internal/domain"
	"tlb-server/pkg/api"
)

func pid(index uint32) types.EntityID {
	return types.PackEntityID(enums.EntityTypePlayer, 0, index)
}

func newTestTurns() *TurnManager {
	return NewTurnManager(CostTable{ShortWalk: 5, LongWalk: 10}, 2)
}

func noPath(types.EntityID) bool { return false }

func TestTurnManager_RoundRobin(t *testing.T) {
	a, b, c := pid(1), tid(2), tid(3)
	tm := newTestTurns()
	tm.Register(a, true)
	tm.Register(b, false)
	tm.Register(c, false)

	tm.SetTurnBased(true, a)

	want := []types.EntityID{a, b, c, a, b, c, a}
	for i, id := range want {
		got, state := tm.InTurn()
		if got != id {
			t.Fatalf("step %d: in turn %v, want %v", i, got, id)
		}
		if state.ActionPoints != 2 || state.State != domain.TurnIdle {
			t.Fatalf("step %d: expected fresh turn state, got %+v", i, state)
		}
		tm.Rotate()
	}
}

// Очередь заполняется заново в порядке, в котором заканчивали ход.
func TestTurnManager_RefillOrder(t *testing.T) {
	a, b, c := pid(1), tid(2), tid(3)
	tm := newTestTurns()
	tm.Register(a, true)
	tm.Register(b, false)
	tm.Register(c, false)
	tm.SetTurnBased(true, b)

	// b ходит первым, потом a и c по регистрации
	var order []types.EntityID
	for range 6 {
		id, _ := tm.InTurn()
		order = append(order, id)
		tm.Rotate()
	}
	want := []types.EntityID{b, a, c, b, a, c}
	if !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestTurnManager_TickRotatesWhenDone(t *testing.T) {
	a, b := pid(1), tid(2)
	tm := newTestTurns()
	tm.Register(a, true)
	tm.Register(b, false)
	tm.SetTurnBased(true, a)

	if !tm.SpendWalk(a, 3) {
		t.Fatal("short walk should be allowed")
	}
	_, state := tm.InTurn()
	if state.State != domain.TurnWalking || state.ActionPoints != 1 {
		t.Fatalf("unexpected state after walk: %+v", state)
	}

	walking := func(id types.EntityID) bool { return id == a }
	if tm.Tick(walking) {
		t.Fatal("should not rotate while walking")
	}
	if tm.CanAct(a) {
		t.Error("walking actor cannot act")
	}

	// Путь кончился: Idle, одно очко осталось, ход продолжается
	if tm.Tick(noPath) {
		t.Fatal("should not rotate with points left")
	}
	if !tm.CanAct(a) {
		t.Error("idle actor with points should act")
	}

	tm.SpendWalk(a, 2)
	tm.Tick(noPath) // Walking -> Idle, AP 0 -> rotate
	if id, _ := tm.InTurn(); id != b {
		t.Errorf("expected turn to pass to %v, got %v", b, id)
	}
}

func TestTurnManager_FightEndsTurn(t *testing.T) {
	a, b := pid(1), tid(2)
	tm := newTestTurns()
	tm.Register(a, true)
	tm.Register(b, false)
	tm.SetTurnBased(true, a)

	tm.Fight(a)
	if tm.CanAct(a) {
		t.Error("fighting actor cannot act")
	}
	if tm.Tick(noPath) {
		t.Fatal("should not rotate while the fight is unresolved")
	}
	tm.ActionDone(a)
	if !tm.Tick(noPath) {
		t.Fatal("expected rotation after the fight")
	}
	if id, _ := tm.InTurn(); id != b {
		t.Errorf("expected %v in turn, got %v", b, id)
	}
}

func TestTurnManager_RequestEndTurn(t *testing.T) {
	a, b := pid(1), tid(2)
	tm := newTestTurns()
	tm.Register(a, true)
	tm.Register(b, false)

	if tm.RequestEndTurn(a) {
		t.Error("end turn means nothing in real time")
	}
	tm.SetTurnBased(true, a)
	if tm.RequestEndTurn(b) {
		t.Error("only the in-turn actor can end its turn")
	}
	if !tm.RequestEndTurn(a) {
		t.Fatal("expected end turn to be accepted")
	}
	if !tm.Tick(noPath) {
		t.Fatal("expected rotation")
	}
	if id, _ := tm.InTurn(); id != b {
		t.Errorf("expected %v in turn, got %v", b, id)
	}
}

func TestTurnManager_WalkCost(t *testing.T) {
	a := pid(1)
	tests := []struct {
		name     string
		prepare  func(tm *TurnManager)
		steps    int
		wantCost int
		wantOK   bool
		wantBand api.Band
	}{
		{"zero steps", nil, 0, 0, false, api.BandNone},
		{"short", nil, 4, 1, true, api.BandNear},
		{"long", nil, 5, 2, true, api.BandFar},
		{"longest allowed", nil, 9, 2, true, api.BandFar},
		{"too far", nil, 10, 0, false, api.BandOutOfRange},
		{"long after walking", func(tm *TurnManager) { tm.SpendWalk(a, 1); tm.ActionDone(a) }, 6, 0, false, api.BandOutOfRange},
		{"short after walking", func(tm *TurnManager) { tm.SpendWalk(a, 1); tm.ActionDone(a) }, 3, 1, true, api.BandNear},
		{"no points", func(tm *TurnManager) { tm.Fight(a); tm.ActionDone(a) }, 1, 0, false, api.BandOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := newTestTurns()
			tm.Register(a, true)
			tm.SetTurnBased(true, a)
			if tt.prepare != nil {
				tt.prepare(tm)
			}
			cost, ok := tm.WalkCost(a, tt.steps)
			if cost != tt.wantCost || ok != tt.wantOK {
				t.Errorf("WalkCost(%d) = (%d, %v), want (%d, %v)", tt.steps, cost, ok, tt.wantCost, tt.wantOK)
			}
			if band := tm.Band(a, tt.steps); band != tt.wantBand {
				t.Errorf("Band(%d) = %q, want %q", tt.steps, band, tt.wantBand)
			}
		})
	}
}

func TestTurnManager_RealTime(t *testing.T) {
	a, b := pid(1), tid(2)
	tm := newTestTurns()
	tm.Register(a, true)
	tm.Register(b, false)

	if !tm.CanAct(a) || !tm.CanAct(b) {
		t.Error("everyone acts in real time")
	}
	if tm.CanAct(pid(9)) {
		t.Error("unknown entity cannot act")
	}
	if cost, ok := tm.WalkCost(a, 40); !ok || cost != 0 {
		t.Errorf("real-time walk should be free, got (%d, %v)", cost, ok)
	}
	if tm.Tick(noPath) {
		t.Error("Tick is a no-op in real time")
	}
	if id, state := tm.InTurn(); !id.IsNil() || state != nil {
		t.Error("nobody is in turn in real time")
	}
	if band := tm.Band(a, 7); band != api.BandFar {
		t.Errorf("Band = %q, want FAR", band)
	}
}

func TestTurnManager_EmptyRoster(t *testing.T) {
	tm := newTestTurns()
	tm.SetTurnBased(true, types.NilEntityID)
	tm.Rotate()
	if tm.Tick(noPath) {
		t.Error("empty roster should never rotate")
	}
	if id, _ := tm.InTurn(); !id.IsNil() {
		t.Errorf("expected nobody in turn, got %v", id)
	}
	if !tm.CycleActive().IsNil() {
		t.Error("expected no active character")
	}
	tm.Unregister(pid(1))
	tm.Toggle(types.NilEntityID)
	if tm.IsTurnBased() {
		t.Error("toggle should switch back to real time")
	}
}

func TestTurnManager_Unregister(t *testing.T) {
	a, b, c := pid(1), tid(2), tid(3)
	tm := newTestTurns()
	tm.Register(a, true)
	tm.Register(b, false)
	tm.Register(c, false)
	tm.SetTurnBased(true, a)

	// b ждёт в очереди и умирает
	tm.Unregister(b)
	tm.Rotate()
	if id, _ := tm.InTurn(); id != c {
		t.Fatalf("expected %v, got %v", c, id)
	}

	// c умирает в свой ход; следующий Tick отдаёт ход a
	tm.Unregister(c)
	if !tm.Tick(noPath) {
		t.Fatal("expected rotation after the current actor left")
	}
	if id, _ := tm.InTurn(); id != a {
		t.Errorf("expected %v, got %v", a, id)
	}

	snap := tm.Snapshot()
	if len(snap.Roster) != 1 || snap.Current != a {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestTurnManager_UnregisterAfterTurn(t *testing.T) {
	a, b, c := pid(1), tid(2), tid(3)
	tm := newTestTurns()
	tm.Register(a, true)
	tm.Register(b, false)
	tm.Register(c, false)
	tm.SetTurnBased(true, a)

	// a уже сходил и выходит до конца круга
	tm.Rotate()
	tm.Unregister(a)
	if snap := tm.Snapshot(); len(snap.TookTurn) != 0 {
		t.Fatalf("took turn = %v, want empty", snap.TookTurn)
	}

	var order []types.EntityID
	for range 4 {
		id, _ := tm.InTurn()
		order = append(order, id)
		tm.Rotate()
	}
	if want := []types.EntityID{b, c, b, c}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestTurnManager_ActiveFollowsPlayers(t *testing.T) {
	a, b, npc := pid(1), pid(2), tid(3)
	tm := newTestTurns()
	tm.Register(a, true)
	tm.Register(npc, false)
	tm.Register(b, true)

	if tm.Active() != a || !tm.ActiveChanged() {
		t.Fatal("first player becomes active")
	}
	if tm.ActiveChanged() {
		t.Error("ActiveChanged should reset after reading")
	}

	if tm.CycleActive() != b {
		t.Errorf("expected %v active", b)
	}
	if tm.CycleActive() != a {
		t.Errorf("expected wrap to %v", a)
	}

	// В пошаговом режиме ход игрока делает его активным, ход NPC - нет
	tm.SetTurnBased(true, a)
	tm.Rotate() // npc
	if tm.Active() != a {
		t.Errorf("NPC turn should not steal the active mark")
	}
	tm.Rotate() // b
	if tm.Active() != b {
		t.Errorf("expected %v active on its turn", b)
	}

	// CycleActive не трогает ход
	tm.CycleActive()
	if id, _ := tm.InTurn(); id != b || tm.Active() != a {
		t.Errorf("cycle should move only the active mark")
	}
}

func TestTurnManager_RegisterDuringTurnBased(t *testing.T) {
	a, b := pid(1), tid(2)
	tm := newTestTurns()
	tm.Register(a, true)
	tm.SetTurnBased(true, a)
	tm.Register(b, false)

	snap := tm.Snapshot()
	if !slices.Equal(snap.Waiting, []types.EntityID{b}) {
		t.Fatalf("new participant should wait, got %v", snap.Waiting)
	}
	tm.Rotate()
	if id, _ := tm.InTurn(); id != b {
		t.Errorf("expected %v, got %v", b, id)
	}
}
