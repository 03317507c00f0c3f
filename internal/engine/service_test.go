package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"tlb-server/pkg/api"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(testConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestService_ProcessCommandValidation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		cmd     api.ClientCommand
		wantErr bool
	}{
		{"empty action", api.ClientCommand{}, true},
		{"unknown action", api.ClientCommand{Action: "DANCE"}, true},
		{"bad token", api.ClientCommand{Action: "MOVE", Token: "not-an-id"}, true},
		{"valid", api.ClientCommand{Action: "END_TURN"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ProcessCommand(tt.cmd)
			if (err != nil) != tt.wantErr {
				t.Errorf("ProcessCommand() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_SubscribeGetsLastSnapshot(t *testing.T) {
	svc := newTestService(t)
	ch := svc.Subscribe("watcher")
	defer svc.Unsubscribe("watcher")

	select {
	case snap := <-ch:
		if snap != svc.LastSnapshot() {
			t.Error("first frame should be the last published snapshot")
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot on subscribe")
	}
}

func TestService_LoopAppliesCommands(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	if err := svc.ProcessCommand(api.ClientCommand{Action: "TOGGLE_MODE"}); err != nil {
		t.Fatalf("ProcessCommand: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		var turnBased bool
		var ticks uint64
		err := svc.Inspect(ctx, func(sim *Simulation) {
			turnBased = sim.Turns.IsTurnBased()
			ticks = sim.TickCount()
		})
		if err != nil {
			t.Fatalf("Inspect: %v", err)
		}
		if turnBased && ticks > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("TOGGLE_MODE was not applied by the loop")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if snap := svc.LastSnapshot(); snap == nil || snap.Tick == 0 {
		t.Error("loop should publish snapshots")
	}
}

func TestService_StoppedRejectsWork(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	svc.Start(ctx)
	cancel()

	select {
	case <-svc.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}

	if err := svc.ProcessCommand(api.ClientCommand{Action: "END_TURN"}); !errors.Is(err, ErrStopped) {
		t.Errorf("ProcessCommand after stop = %v, want ErrStopped", err)
	}
	if err := svc.Inspect(context.Background(), func(*Simulation) {}); !errors.Is(err, ErrStopped) {
		t.Errorf("Inspect after stop = %v, want ErrStopped", err)
	}
}
