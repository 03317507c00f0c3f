package network

import (
	"sync"

	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DefaultBuffer - сколько кадров может отстать медленный подписчик.
const DefaultBuffer = 16

// Broadcaster занимается только рассылкой сообщений подписчикам.
// Ключ - ID сессии наблюдателя. Полный канал теряет кадр, а не тормозит отправителя:
// следующий снимок всё равно содержит всё состояние.
type Broadcaster[T any] struct {
	mu sync.RWMutex
	// Мапа: SessionID -> Личный канал
	subscribers map[string]chan T
	buffer      int

	dropped uint64
}

func NewBroadcaster[T any](buffer int) *Broadcaster[T] {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Broadcaster[T]{
		subscribers: make(map[string]chan T),
		buffer:      buffer,
	}
}

// Register создает личный канал для сессии. Старый канал с тем же ID закрывается.
func (b *Broadcaster[T]) Register(sessionID string) <-chan T {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan T, b.buffer)
	b.subscribers[sessionID] = ch

	logger.Log.WithFields(logrus.Fields{
		"component":   "broadcaster",
		"session_id":  sessionID,
		"subscribers": len(b.subscribers),
	}).Info("Subscriber registered")
	return ch
}

// Unregister удаляет подписчика и закрывает его канал
func (b *Broadcaster[T]) Unregister(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		close(ch)
		delete(b.subscribers, sessionID)
		logger.Log.WithFields(logrus.Fields{
			"component":  "broadcaster",
			"session_id": sessionID,
		}).Info("Subscriber removed")
	}
}

// SendTo отправляет сообщение конкретной сессии (Unicast)
func (b *Broadcaster[T]) SendTo(sessionID string, msg T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.subscribers[sessionID]
	if !ok {
		return false
	}
	return b.offer(sessionID, ch, msg)
}

// Broadcast отправляет всем подписчикам
func (b *Broadcaster[T]) Broadcast(msg T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		b.offer(id, ch, msg)
	}
}

func (b *Broadcaster[T]) offer(sessionID string, ch chan T, msg T) bool {
	select {
	case ch <- msg:
		return true
	default:
		b.dropped++
		logger.Log.WithFields(logrus.Fields{
			"component":  "broadcaster",
			"session_id": sessionID,
		}).Debug("Channel full, frame dropped")
		return false
	}
}

// HasSubscriber проверяет, подключена ли сессия
func (b *Broadcaster[T]) HasSubscriber(sessionID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[sessionID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Dropped - сколько кадров потеряно из-за медленных подписчиков.
func (b *Broadcaster[T]) Dropped() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}
