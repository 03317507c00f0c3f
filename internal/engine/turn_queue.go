package engine

import (
	"container/heap"

	"tlb-server/internal/core/types"
)

// TurnItem обертка для элемента очереди ожидания
type TurnItem struct {
	ID     types.EntityID // Кто ждёт хода
	Ticket uint64         // Номер в очереди. Чем меньше, тем раньше ход.
	Index  int            // Индекс в куче (нужен для Remove)
}

// TurnQueue реализует heap.Interface: FIFO по возрастающему билету.
// Куча вместо среза даёт удаление конкретного участника за O(log n).
type TurnQueue []*TurnItem

func (pq TurnQueue) Len() int { return len(pq) }

func (pq TurnQueue) Less(i, j int) bool {
	// Мы хотим MinHeap, поэтому возвращаем true, если i < j
	return pq[i].Ticket < pq[j].Ticket
}

func (pq TurnQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *TurnQueue) Push(x any) {
	n := len(*pq)
	item := x.(*TurnItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *TurnQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// Remove вынимает элемент из середины очереди
func (pq *TurnQueue) Remove(item *TurnItem) {
	if item.Index < 0 || item.Index >= pq.Len() {
		return
	}
	heap.Remove(pq, item.Index)
}
