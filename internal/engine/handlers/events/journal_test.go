package events

import (
	"os"
	"testing"

	"tlb-server/internal/core/types"
	"tlb-server/internal/core/types/enums"
	"tlb-server/internal/domain"
	"tlb-server/internal/engine/handlers"
	"tlb-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// fakeTurns записывает, кого убрали из очереди.
type fakeTurns struct {
	unregistered []types.EntityID
}

func (f *fakeTurns) CanAct(types.EntityID) bool { return true }
func (f *fakeTurns) SpendWalk(types.EntityID, int) bool { return true }
func (f *fakeTurns) Fight(types.EntityID) {}
func (f *fakeTurns) ActionDone(types.EntityID) {}
func (f *fakeTurns) RequestEndTurn(types.EntityID) bool { return true }
func (f *fakeTurns) Toggle(types.EntityID) bool { return true }
func (f *fakeTurns) CycleActive() types.EntityID { return types.NilEntityID }
func (f *fakeTurns) Active() types.EntityID { return types.NilEntityID }
func (f *fakeTurns) Unregister(id types.EntityID) { f.unregistered = append(f.unregistered, id) }

func newJournalContext() (handlers.Context, *fakeTurns, *domain.Actor) {
	w := domain.NewWorld(domain.NewTower(), 0)
	a := &domain.Actor{ID: w.NextID(enums.EntityTypeNPC), Kind: enums.EntityTypeNPC, Name: "Охранник"}
	w.Actors[a.ID] = a
	turns := &fakeTurns{}
	return handlers.Context{World: w, Turns: turns}, turns, a
}

func TestDispatch(t *testing.T) {
	ctx, turns, guard := newJournalContext()

	tests := []struct {
		name     string
		ev       domain.GameEvent
		wantType string
		wantMsg  string
	}{
		{"unknown event is skipped", domain.GameEvent{Type: domain.EventType(250)}, "", ""},
		{"finished turn", domain.GameEvent{Type: domain.EventFinishedTurn, Actor: guard.ID}, handlers.MsgInfo, "Охранник заканчивает ход."},
		{"died", domain.GameEvent{Type: domain.EventDied, Actor: guard.ID}, handlers.MsgCombat, "Охранник погибает."},
		{"turn based on", domain.GameEvent{Type: domain.EventModeChanged, Amount: 1}, handlers.MsgInfo, "Пошаговый режим."},
		{"real time", domain.GameEvent{Type: domain.EventModeChanged}, handlers.MsgInfo, "Реальное время."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Dispatch(ctx, tt.ev)
			if res.MsgType != tt.wantType || res.Msg != tt.wantMsg {
				t.Errorf("Dispatch() = %+v, want %s %q", res, tt.wantType, tt.wantMsg)
			}
		})
	}

	if len(turns.unregistered) != 1 || turns.unregistered[0] != guard.ID {
		t.Errorf("unregistered = %v, want [%v]", turns.unregistered, guard.ID)
	}
}

func TestHandleDied_NoTurnsIsSafe(t *testing.T) {
	ctx, _, guard := newJournalContext()
	ctx.Turns = nil
	if res := HandleDied(ctx, domain.GameEvent{Type: domain.EventDied, Actor: guard.ID}); res.Msg == "" {
		t.Error("death should still be reported")
	}
}
