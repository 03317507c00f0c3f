package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tlb-server/internal/core/types"
	"tlb-server/internal/domain"
	"tlb-server/internal/network"
	"tlb-server/pkg/api"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrStopped - сервис уже остановлен, команда не будет выполнена.
var ErrStopped = errors.New("service stopped")

// Service владеет симуляцией: все изменения мира идут через одну горутину.
// Снаружи доступны только команды, подписка на снимки и Inspect.
type Service struct {
	Config Config

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster[*api.Snapshot]

	sim      *Simulation
	requests chan func(*Simulation)

	mu      sync.RWMutex
	last    *api.Snapshot
	running bool
	done    chan struct{}
}

func NewService(cfg Config) (*Service, error) {
	sim, err := NewSimulation(cfg)
	if err != nil {
		return nil, fmt.Errorf("new service: %w", err)
	}
	s := &Service{
		Config:      cfg,
		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster[*api.Snapshot](network.DefaultBuffer),
		sim:         sim,
		requests:    make(chan func(*Simulation)),
		done:        make(chan struct{}),
	}
	s.last = sim.Snapshot()
	return s, nil
}

// Start запускает цикл симуляции. Цикл живёт, пока не отменён ctx.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go s.RunGameLoop(ctx)
}

// Done закрывается, когда цикл остановлен.
func (s *Service) Done() <-chan struct{} {
	return s.done
}

// RunGameLoop - единственный писатель мира.
func (s *Service) RunGameLoop(ctx context.Context) {
	defer close(s.done)

	loopLogger := logger.Log.WithField("component", "game_loop")
	loopLogger.WithField("tick_rate", s.Config.TickRate).Info("Game loop started")

	rate := s.Config.TickRate
	if rate <= 0 {
		rate = 50 * time.Millisecond
	}
	ticker := time.NewTicker(rate)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			loopLogger.Info("Game loop stopped")
			return

		case cmd := <-s.CommandChan:
			s.sim.Submit(cmd)

		case fn := <-s.requests:
			fn(s.sim)

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			s.sim.Tick(dt)
			s.publish()
		}
	}
}

func (s *Service) publish() {
	snap := s.sim.Snapshot()
	s.mu.Lock()
	s.last = snap
	s.mu.Unlock()
	s.Hub.Broadcast(snap)
}

// ProcessCommand принимает команду от внешнего мира (WebSocket, терминал).
func (s *Service) ProcessCommand(externalCmd api.ClientCommand) error {
	if err := externalCmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		return fmt.Errorf("unknown action %q", externalCmd.Action)
	}

	token := types.NilEntityID
	if externalCmd.Token != "" {
		id, err := types.ParseEntityID(externalCmd.Token)
		if err != nil {
			return fmt.Errorf("invalid token: %w", err)
		}
		token = id
	}

	// Остановленный цикл не читает очередь, даже если в буфере есть место
	select {
	case <-s.done:
		return ErrStopped
	default:
	}

	cmd := domain.InternalCommand{Action: actionType, Token: token, Payload: externalCmd.Payload}
	select {
	case s.CommandChan <- cmd:
		logger.Log.WithFields(logrus.Fields{
			"component": "service",
			"action":    actionType.String(),
			"token":     token,
		}).Debug("Command queued")
		return nil
	case <-s.done:
		return ErrStopped
	}
}

// Inspect выполняет fn на горутине симуляции и ждёт результата.
// Только для чтения: отладочные ручки и тесты.
func (s *Service) Inspect(ctx context.Context, fn func(*Simulation)) error {
	finished := make(chan struct{})
	wrapped := func(sim *Simulation) {
		defer close(finished)
		fn(sim)
	}

	select {
	case s.requests <- wrapped:
	case <-s.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LastSnapshot - последний разосланный снимок. Новый подписчик получает его сразу.
func (s *Service) LastSnapshot() *api.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Subscribe регистрирует наблюдателя и сразу отдаёт ему последний снимок.
func (s *Service) Subscribe(sessionID string) <-chan *api.Snapshot {
	ch := s.Hub.Register(sessionID)
	if snap := s.LastSnapshot(); snap != nil {
		s.Hub.SendTo(sessionID, snap)
	}
	return ch
}

func (s *Service) Unsubscribe(sessionID string) {
	s.Hub.Unregister(sessionID)
}
