package enums

import "strings"

type EntityType uint8

const (
	EntityTypeUnknown EntityType = iota
	EntityTypePlayer
	EntityTypeNPC
	EntityTypeItem
	EntityTypeInteractable
)

var entityTypeToString = map[EntityType]string{
	EntityTypePlayer:       "PLAYER",
	EntityTypeNPC:          "NPC",
	EntityTypeItem:         "ITEM",
	EntityTypeInteractable: "INTERACTABLE",
}

var entityTypeStringToType = map[string]EntityType{
	"PLAYER":       EntityTypePlayer,
	"NPC":          EntityTypeNPC,
	"ITEM":         EntityTypeItem,
	"INTERACTABLE": EntityTypeInteractable,
}

// String возвращает строковое представление (для логов и DTO)
func (e EntityType) String() string {
	if val, ok := entityTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityType конвертирует строку в Enum
func ParseEntityType(s string) EntityType {
	if val, ok := entityTypeStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return EntityTypeUnknown
}

// IsCharacter - сущность живёт в индексе персонажей (персонажи и двери).
func (e EntityType) IsCharacter() bool {
	return e == EntityTypePlayer || e == EntityTypeNPC || e == EntityTypeInteractable
}
