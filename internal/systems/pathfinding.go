package systems

import (
	"container/heap"

	"tlb-server/internal/core/types"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
	"tlb-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// PathOptions - ограничения поиска.
type PathOptions struct {
	// MaxNodes - сколько узлов можно раскрыть. 0 - без ограничения (только размер сетки).
	MaxNodes int
}

type pathNode struct {
	p     geometry.Pos
	g     int
	f     int
	seq   int
	index int
}

// nodeHeap - открытый список A*. При равном f раньше выходит узел, добавленный раньше.
type nodeHeap []*pathNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *nodeHeap) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// FindPath ищет маршрут для сущности id из from в to по этажу.
//
// Соседство 8-связное, каждый шаг стоит 1, эвристика - расстояние Чебышёва.
// Клетки, для которых level.IsNotPlannable(id, p) истинно, не раскрываются (кроме старта),
// по диагонали нельзя срезать угол непроходимого тайла.
// Возвращает центры клеток маршрута без стартовой. Пустой результат - "пути нет".
func FindPath(level *domain.Level, id types.EntityID, from, to geometry.Pos, opts PathOptions) []domain.Position {
	pathLogger := logger.Log.WithFields(logrus.Fields{
		"component": "pathfinding",
		"entity_id": id,
		"from":      from,
		"to":        to,
	})

	if from == to {
		return nil
	}
	if !level.Map.InBounds(to) || level.IsNotPlannable(id, to) {
		pathLogger.Debug("Goal is not plannable.")
		return nil
	}

	maxNodes := opts.MaxNodes
	if maxNodes <= 0 {
		maxNodes = level.Width() * level.Height()
	}

	open := &nodeHeap{}
	heap.Init(open)
	seq := 0
	heap.Push(open, &pathNode{p: from, g: 0, f: from.ChebyshevTo(to), seq: seq})

	came := make(map[geometry.Pos]geometry.Pos)
	gScore := map[geometry.Pos]int{from: 0}
	closed := make(map[geometry.Pos]bool)
	expanded := 0

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pathNode)
		if closed[cur.p] {
			continue
		}
		if cur.p == to {
			waypoints := reconstructPath(level.ID, came, from, to)
			pathLogger.WithFields(logrus.Fields{
				"steps":    len(waypoints),
				"expanded": expanded,
			}).Debug("Path found.")
			return waypoints
		}
		closed[cur.p] = true

		expanded++
		if expanded > maxNodes {
			pathLogger.WithField("max_nodes", maxNodes).Warn("Path search aborted: node limit reached.")
			return nil
		}

		for _, d := range geometry.Directions8 {
			np := cur.p.Add(d)
			if closed[np] || !level.Map.InBounds(np) || level.IsNotPlannable(id, np) {
				continue
			}
			// Запрет срезать угол стены по диагонали
			if d.X != 0 && d.Y != 0 {
				if level.Map.IsBlocking(geometry.P(cur.p.X+d.X, cur.p.Y)) ||
					level.Map.IsBlocking(geometry.P(cur.p.X, cur.p.Y+d.Y)) {
					continue
				}
			}
			tentG := cur.g + 1
			if old, ok := gScore[np]; ok && tentG >= old {
				continue
			}
			gScore[np] = tentG
			came[np] = cur.p
			seq++
			heap.Push(open, &pathNode{p: np, g: tentG, f: tentG + np.ChebyshevTo(to), seq: seq})
		}
	}

	pathLogger.WithField("expanded", expanded).Debug("Goal is unreachable.")
	return nil
}

func reconstructPath(level domain.LevelID, came map[geometry.Pos]geometry.Pos, from, to geometry.Pos) []domain.Position {
	var cells []geometry.Pos
	for cur := to; cur != from; cur = came[cur] {
		cells = append(cells, cur)
	}
	waypoints := make([]domain.Position, len(cells))
	for i, c := range cells {
		waypoints[len(cells)-1-i] = domain.CellCenter(level, c)
	}
	return waypoints
}

// PathCells - клетки маршрута (для подсветки и стоимости хода).
func PathCells(waypoints []domain.Position) []geometry.Pos {
	cells := make([]geometry.Pos, len(waypoints))
	for i, w := range waypoints {
		cells[i] = w.Cell()
	}
	return cells
}
