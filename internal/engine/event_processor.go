package engine

import (
	"tlb-server/internal/engine/handlers"
	"tlb-server/internal/engine/handlers/events"

	"github.com/sirupsen/logrus"
)

// applyResult - является точкой входа для результатов хендлеров: пишет сообщение
// в журнал и доводит каждое событие до конца через обработчики событий.
func (s *Simulation) applyResult(ctx handlers.Context, result handlers.Result) {
	if result.Msg != "" {
		s.AddLog(result.Msg, result.MsgType)
	}

	for _, ev := range result.Events {
		s.log().WithFields(logrus.Fields{
			"event":  ev.Type.String(),
			"actor":  ev.Actor,
			"target": ev.Target,
			"amount": ev.Amount,
		}).Debug("Game event")

		res := events.Dispatch(ctx, ev)
		if res.Msg != "" {
			s.AddLog(res.Msg, res.MsgType)
		}
	}
}
