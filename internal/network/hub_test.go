package network

import (
	"os"
	"testing"

	"tlb-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBroadcaster_SendTo(t *testing.T) {
	b := NewBroadcaster[int](2)
	ch := b.Register("a")

	if !b.SendTo("a", 1) {
		t.Fatal("SendTo to registered session should succeed")
	}
	if b.SendTo("missing", 1) {
		t.Error("SendTo to unknown session should fail")
	}
	if got := <-ch; got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestBroadcaster_DropsWhenFull(t *testing.T) {
	b := NewBroadcaster[int](1)
	ch := b.Register("slow")

	b.Broadcast(1)
	b.Broadcast(2)

	if got := b.Dropped(); got != 1 {
		t.Errorf("Dropped() = %d, want 1", got)
	}
	if got := <-ch; got != 1 {
		t.Errorf("first frame = %d, want 1 (later frames are dropped, not queued)", got)
	}
}

func TestBroadcaster_Reregister(t *testing.T) {
	b := NewBroadcaster[string](0)
	old := b.Register("s")
	fresh := b.Register("s")

	if _, ok := <-old; ok {
		t.Error("old channel should be closed on re-register")
	}
	if b.SubscriberCount() != 1 {
		t.Errorf("SubscriberCount() = %d, want 1", b.SubscriberCount())
	}

	b.Unregister("s")
	if _, ok := <-fresh; ok {
		t.Error("channel should be closed after Unregister")
	}
	if b.HasSubscriber("s") {
		t.Error("session should be gone after Unregister")
	}
	b.Unregister("s")
}
