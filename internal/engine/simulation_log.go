package engine

import (
	"fmt"
	"time"

	"tlb-server/pkg/api"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AddLog добавляет запись в журнал и обрезает историю до Config.LogHistory.
func (s *Simulation) AddLog(text, logType string) {
	if logType == "" {
		logType = "INFO"
	}
	s.logSeq++
	s.logs = append(s.logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", s.World.Generation, s.logSeq),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	if limit := s.Config.LogHistory; limit > 0 && len(s.logs) > limit {
		s.logs = append(s.logs[:0], s.logs[len(s.logs)-limit:]...)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"tick":      s.tick,
		"log_type":  logType,
	}).Info(text)
}

// Logs - копия последних записей журнала.
func (s *Simulation) Logs() []api.LogEntry {
	out := make([]api.LogEntry, len(s.logs))
	copy(out, s.logs)
	return out
}
