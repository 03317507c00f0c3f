package enums

import "strings"

type ItemCategory uint8

const (
	ItemCategoryUnknown    ItemCategory = iota // 0
	ItemCategoryItem                           // 1
	ItemCategoryConsumable                     // 2
	ItemCategoryEquipment                      // 3
	ItemCategoryWeapon                         // 4
	ItemCategoryKey                            // 5
)

var itemCategoryToString = map[ItemCategory]string{
	ItemCategoryItem:       "ITEM",
	ItemCategoryConsumable: "CONSUMABLE",
	ItemCategoryEquipment:  "EQUIPMENT",
	ItemCategoryWeapon:     "WEAPON",
	ItemCategoryKey:        "KEY",
}

var itemCategoryStringToType = map[string]ItemCategory{
	"ITEM":       ItemCategoryItem,
	"CONSUMABLE": ItemCategoryConsumable,
	"EQUIPMENT":  ItemCategoryEquipment,
	"WEAPON":     ItemCategoryWeapon,
	"KEY":        ItemCategoryKey,
}

func (c ItemCategory) String() string {
	if val, ok := itemCategoryToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseItemCategory(s string) ItemCategory {
	if val, ok := itemCategoryStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return ItemCategoryUnknown
}

// Symbol - символ предмета на карте по категории.
func (c ItemCategory) Symbol() byte {
	switch c {
	case ItemCategoryConsumable:
		return 'c'
	case ItemCategoryEquipment:
		return 'e'
	case ItemCategoryWeapon:
		return 'w'
	case ItemCategoryKey:
		return 'k'
	}
	return 'i'
}

type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityUnique
	RarityEpic
)

var rarityToString = map[Rarity]string{
	RarityCommon:   "COMMON",
	RarityUncommon: "UNCOMMON",
	RarityRare:     "RARE",
	RarityUnique:   "UNIQUE",
	RarityEpic:     "EPIC",
}

func (r Rarity) String() string {
	if val, ok := rarityToString[r]; ok {
		return val
	}
	return "UNKNOWN"
}
