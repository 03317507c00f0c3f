package systems

import (
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HasLineOfSight проверяет прямую видимость между двумя клетками этажа.
// Растеризует отрезок и проверяет непрозрачность, ИСКЛЮЧАЯ стартовую и конечную точки:
// стену, на которую смотришь, видно.
func HasLineOfSight(level *domain.Level, p1, p2 geometry.Pos) bool {
	losLogger := logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"function":  "HasLineOfSight",
		"start_pos": p1,
		"end_pos":   p2,
	})

	if p1 == p2 {
		return true
	}

	for p := range geometry.NewLine(p1, p2).Cells() {
		if p == p1 || p == p2 {
			continue
		}
		if level.IsSightBlocking(p) {
			losLogger.WithField("blocking_point", p).Debug("Line of sight blocked.")
			return false
		}
	}
	return true
}
