package dungeon

import (
	"fmt"

	"tlb-server/internal/core/types"
	"tlb-server/internal/core/types/enums"
	"tlb-server/internal/domain"
	"tlb-server/internal/geometry"
)

// --- ПРЕДМЕТЫ ---

// ItemTemplate определяет шаблон для создания предмета
type ItemTemplate struct {
	Key         string
	Name        string
	Description string
	Category    enums.ItemCategory
	Rarity      enums.Rarity

	Damage int
	Range  int
	Spread int

	KeyLevel int
}

// New создаёт предмет из шаблона с готовым ID.
func (t ItemTemplate) New(id types.EntityID) *domain.Item {
	return &domain.Item{
		ID:          id,
		Template:    t.Key,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Rarity:      t.Rarity,
		Damage:      t.Damage,
		Range:       t.Range,
		Spread:      t.Spread,
		KeyLevel:    t.KeyLevel,
	}
}

// SpawnAt кладёт новый предмет на пол.
func (t ItemTemplate) SpawnAt(w *domain.World, level domain.LevelID, cell geometry.Pos) (*domain.Item, error) {
	it := t.New(w.NextID(enums.EntityTypeItem))
	if err := w.SpawnItem(it, level, cell); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", t.Key, err)
	}
	return it, nil
}

// --- ОРУЖИЕ ---

var FlickKnife = ItemTemplate{
	Key:      "flick_knife",
	Name:     "Выкидной нож",
	Category: enums.ItemCategoryWeapon,
	Rarity:   enums.RarityCommon,
	Damage:   5,
	Range:    1,
}

var Shuriken = ItemTemplate{
	Key:         "shuriken",
	Name:        "Сюрикен",
	Description: "Традиционное японское скрытое оружие.",
	Category:    enums.ItemCategoryWeapon,
	Rarity:      enums.RarityUncommon,
	Damage:      5,
	Range:       5,
}

// Manriki бьёт конусом: цепь задевает соседние клетки.
var Manriki = ItemTemplate{
	Key:         "manriki",
	Name:        "Цепь манрики",
	Description: "Цепь \"силы десяти тысяч\" из старой немецкой стали.",
	Category:    enums.ItemCategoryWeapon,
	Rarity:      enums.RarityUncommon,
	Damage:      10,
	Range:       2,
	Spread:      1,
}

var DartGun = ItemTemplate{
	Key:         "dart_gun",
	Name:        "Дротиковый пистолет",
	Description: "Китайский инъекционный пистолет с биркой заповедника.",
	Category:    enums.ItemCategoryWeapon,
	Rarity:      enums.RarityRare,
	Damage:      20,
	Range:       10,
}

// --- СНАРЯЖЕНИЕ И ХЛАМ ---

var PocketVtr = ItemTemplate{
	Key:         "pocket_vtr",
	Name:        "Карманный видеомагнитофон",
	Description: "Ручное устройство видеозаписи на кассету.",
	Category:    enums.ItemCategoryEquipment,
	Rarity:      enums.RarityUncommon,
}

var Simstim = ItemTemplate{
	Key:         "simstim",
	Name:        "Симстим-дека",
	Description: "Передаёт владельцу ощущения другого человека.",
	Category:    enums.ItemCategoryEquipment,
	Rarity:      enums.RarityRare,
}

var HitachiRam = ItemTemplate{
	Key:         "hitachi_ram",
	Name:        "Модуль памяти Hitachi HR 5MB",
	Description: "Пятнадцать миллионов символов быстрой памяти. Только для мейнфрейма Hitachi Z-80.",
	Category:    enums.ItemCategoryItem,
	Rarity:      enums.RarityEpic,
}

var Lighter = ItemTemplate{
	Key:         "lighter",
	Name:        "Зажигалка",
	Description: "Керосиновая зажигалка.",
	Category:    enums.ItemCategoryItem,
	Rarity:      enums.RarityCommon,
}

var Watch = ItemTemplate{
	Key:         "watch",
	Name:        "Часы",
	Description: "Пластиковые часы.",
	Category:    enums.ItemCategoryItem,
	Rarity:      enums.RarityCommon,
}

// KeyCard - ключ-карта доступа к дверям уровня не выше level.
func KeyCard(level int) ItemTemplate {
	return ItemTemplate{
		Key:         fmt.Sprintf("key_card_%d", level),
		Name:        fmt.Sprintf("Ключ-карта (ур. %d)", level),
		Description: "Магнитная карта службы безопасности.",
		Category:    enums.ItemCategoryKey,
		Rarity:      enums.RarityUncommon,
		KeyLevel:    level,
	}
}

var ItemTemplates = map[string]ItemTemplate{
	FlickKnife.Key: FlickKnife,
	Shuriken.Key:   Shuriken,
	Manriki.Key:    Manriki,
	DartGun.Key:    DartGun,
	PocketVtr.Key:  PocketVtr,
	Simstim.Key:    Simstim,
	HitachiRam.Key: HitachiRam,
	Lighter.Key:    Lighter,
	Watch.Key:      Watch,
}

// LootTable - что может валяться на процедурных этажах.
var LootTable = []ItemTemplate{Lighter, Watch, PocketVtr, Shuriken, Manriki}

// --- ПЕРСОНАЖИ ---

// ActorTemplate определяет шаблон для создания персонажа
type ActorTemplate struct {
	Key         string
	Name        string
	Description string
	Kind        enums.EntityType
	Symbol      byte
	Color       uint32

	HP          int
	Hostile     bool
	AggroRadius int
	Speed       float64

	// Carries - что лежит в инвентаре при появлении.
	Carries []ItemTemplate
}

// SpawnAt создаёт персонажа на клетке и выдаёт ему стартовые предметы.
func (t ActorTemplate) SpawnAt(w *domain.World, level domain.LevelID, cell geometry.Pos) (*domain.Actor, error) {
	a := &domain.Actor{
		ID:               w.NextID(t.Kind),
		Kind:             t.Kind,
		Name:             t.Name,
		Description:      t.Description,
		PlayerControlled: t.Kind == enums.EntityTypePlayer,
		TakesTurns:       true,
		Speed:            t.Speed,
		Glyph:            types.MakeGlyph(t.Color, t.Symbol),
		Stats:            &domain.StatsComponent{HP: t.HP, MaxHP: t.HP},
		Vision:           &domain.VisionComponent{Radius: domain.DefaultVisionRadius},
	}
	if t.Kind == enums.EntityTypeNPC {
		a.AI = &domain.AIComponent{IsHostile: t.Hostile, AggroRadius: t.AggroRadius}
	}
	if err := w.SpawnActor(a, level, cell); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", t.Key, err)
	}

	eq := w.Equipment[a.ID]
	for _, it := range t.Carries {
		item := it.New(w.NextID(enums.EntityTypeItem))
		if err := w.GiveItem(a.ID, item); err != nil {
			return nil, fmt.Errorf("equip %s with %s: %w", t.Key, it.Key, err)
		}
		eq.AutoEquip(item)
	}
	return a, nil
}

// Player - шаблон персонажа игрока с заданным именем.
func Player(name string) ActorTemplate {
	return ActorTemplate{
		Key:    "player",
		Name:   name,
		Kind:   enums.EntityTypePlayer,
		Symbol: '@',
		Color:  types.ColorPlayer,
		HP:     100,
		Speed:  domain.DefaultWalkSpeed,
	}
}

var Guard = ActorTemplate{
	Key:         "guard",
	Name:        "Охранник",
	Description: "Охрана башни. Стреляет, потом спрашивает.",
	Kind:        enums.EntityTypeNPC,
	Symbol:      'G',
	Color:       types.ColorGuard,
	HP:          100,
	Hostile:     true,
	AggroRadius: domain.DefaultAggroRadius,
	Speed:       domain.DefaultWalkSpeed,
	Carries:     []ItemTemplate{FlickKnife, Watch, KeyCard(3)},
}

var Technician = ActorTemplate{
	Key:         "technician",
	Name:        "Техник",
	Description: "Чинит то, что ломают остальные.",
	Kind:        enums.EntityTypeNPC,
	Symbol:      'T',
	Color:       types.ColorTechnician,
	HP:          100,
	Speed:       domain.DefaultWalkSpeed,
}

var Accountant = ActorTemplate{
	Key:         "accountant",
	Name:        "Бухгалтер",
	Description: "Считает чужие деньги.",
	Kind:        enums.EntityTypeNPC,
	Symbol:      'a',
	Color:       types.ColorAccountant,
	HP:          100,
	Speed:       domain.DefaultWalkSpeed,
}

var NPCTemplates = map[string]ActorTemplate{
	Guard.Key:      Guard,
	Technician.Key: Technician,
	Accountant.Key: Accountant,
}
