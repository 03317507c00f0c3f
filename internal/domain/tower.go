package domain

import (
	"fmt"
	"slices"
)

// Tower - этажи по номерам. Одноуровневый мир - это башня с одним ключом.
type Tower struct {
	levels map[LevelID]*Level
}

func NewTower() *Tower {
	return &Tower{levels: make(map[LevelID]*Level)}
}

// Add регистрирует этаж, заменяя существующий с тем же номером.
func (t *Tower) Add(l *Level) {
	t.levels[l.ID] = l
}

func (t *Tower) Get(id LevelID) (*Level, bool) {
	l, ok := t.levels[id]
	return l, ok
}

// MustGet для кода, где отсутствие этажа - ошибка программиста.
func (t *Tower) MustGet(id LevelID) *Level {
	l, ok := t.levels[id]
	if !ok {
		panic(fmt.Sprintf("tower: level %d not found", id))
	}
	return l
}

// IDs - номера этажей по возрастанию.
func (t *Tower) IDs() []LevelID {
	ids := make([]LevelID, 0, len(t.levels))
	for id := range t.levels {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (t *Tower) Len() int {
	return len(t.levels)
}

// ClearAll очищает индексы всех этажей.
func (t *Tower) ClearAll() {
	for _, l := range t.levels {
		l.ClearAll()
	}
}
