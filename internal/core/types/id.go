package types

import (
	"fmt"
	"strconv"

	"tlb-server/internal/core/types/enums"
)

// EntityID - 64-битный идентификатор сущности башни.
//
// Формат битов (от старших к младшим):
//
//	[ Kind (8) | Generation (24) | Index (32) ]
//
// Где:
//   - Kind - вид сущности (игрок, NPC, предмет, интерактивный объект)
//   - Generation - номер сброса мира, в котором выдан идентификатор
//   - Index - порядковый номер внутри вида
//
// Идентификатор упорядочен: системы, обходящие таблицы по возрастанию ID, получают
// стабильный порядок между запусками с одним сидом.
type EntityID uint64

// NilEntityID - "нет сущности".
const NilEntityID EntityID = 0

const (
	bitsIndex = 32
	bitsGen   = 24
	bitsKind  = 8

	shiftGen  = bitsIndex
	shiftKind = bitsIndex + bitsGen

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID собирает EntityID. Значения за пределами полей обрезаются масками.
func PackEntityID(kind enums.EntityType, gen uint32, index uint32) EntityID {
	return EntityID(
		(uint64(kind)&maskKind)<<shiftKind |
			(uint64(gen)&maskGen)<<shiftGen |
			uint64(index),
	)
}

func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

func (id EntityID) Generation() uint32 {
	return uint32((id >> shiftGen) & maskGen)
}

func (id EntityID) Kind() enums.EntityType {
	return enums.EntityType((id >> shiftKind) & maskKind)
}

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String для логов: [PLAYER:0:1]
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[%s:%d:%d]", id.Kind(), id.Generation(), id.Index())
}

// Token - десятичная запись ID, её принимает ParseEntityID. Так ID уходит клиентам.
func (id EntityID) Token() string {
	if id.IsNil() {
		return ""
	}
	return strconv.FormatUint(uint64(id), 10)
}

// MarshalJSON сериализует ID строкой, иначе JS теряет точность на uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON принимает как строку, так и число.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*id = NilEntityID
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entity id %q: %w", s, err)
	}
	*id = EntityID(v)
	return nil
}

// ParseEntityID разбирает десятичное представление (query-параметры, токены).
func ParseEntityID(s string) (EntityID, error) {
	var id EntityID
	if err := id.UnmarshalJSON([]byte(s)); err != nil {
		return NilEntityID, err
	}
	return id, nil
}
