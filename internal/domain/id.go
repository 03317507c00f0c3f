package domain

import (
	"tlb-server/internal/core/types"
	"tlb-server/internal/core/types/enums"
)

// IDAllocator выдаёт упакованные ID в пределах одного поколения мира.
// Индексы сквозные для всех видов и начинаются с 1: NilEntityID никогда не выдаётся.
type IDAllocator struct {
	gen  uint32
	next uint32
}

func NewIDAllocator(gen uint32) *IDAllocator {
	return &IDAllocator{gen: gen}
}

// Next возвращает новый ID указанного вида.
func (a *IDAllocator) Next(kind enums.EntityType) types.EntityID {
	a.next++
	return types.PackEntityID(kind, a.gen, a.next)
}

func (a *IDAllocator) Generation() uint32 {
	return a.gen
}
