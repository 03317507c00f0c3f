package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// Snapshot это корневой объект, который сервер отправляет наблюдателю.
// Он представляет собой "снимок" этажа, на котором стоит активный персонаж.
// Отправляется после каждого тика симуляции.
type Snapshot struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Tick номер тика симуляции. Растёт монотонно до сброса.
	Tick uint64 `json:"tick"`

	// Generation поколение мира. Меняется при каждом сбросе:
	// клиент должен забыть всё, что запомнил о прошлом поколении.
	Generation uint32 `json:"generation"`

	// Mode режим времени: REALTIME или TURN_BASED.
	Mode string `json:"mode"`

	// ActiveEntityID персонаж, за которым следит камера и которому уходит ввод.
	ActiveEntityID string `json:"activeEntityId,omitempty"`

	// InTurnEntityID чей сейчас ход (только в пошаговом режиме).
	InTurnEntityID string `json:"inTurnEntityId,omitempty"`

	// ActionPoints оставшиеся очки действия у того, чей ход.
	ActionPoints int    `json:"actionPoints"`
	TurnState    string `json:"turnState,omitempty"`

	// TimeLeftMs сколько осталось до автоматического сброса.
	TimeLeftMs int64 `json:"timeLeftMs"`

	Level    int          `json:"level"`
	Grid     GridMeta     `json:"grid"`
	Viewport ViewportView `json:"viewport"`

	// Map видимые и запомненные тайлы внутри окна камеры.
	Map []TileView `json:"map"`

	// Entities видимые сущности.
	Entities []EntityView `json:"entities"`

	// Highlight подсветка предпросмотра под курсором.
	Highlight *Highlight `json:"highlight,omitempty"`

	// Logs последние записи игрового журнала.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит общие размеры карты этажа.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// ViewportView окно камеры в координатах этажа.
type ViewportView struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// PosView клетка на этаже.
type PosView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Symbol и Color - визуальное представление тайла (e.g. "#" для стены).
	// Для запомненных, но не видимых клеток цвет уже приглушён.
	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	IsWall bool `json:"isWall"`

	// IsVisible true, если тайл находится в поле зрения игроков. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден.
	IsExplored bool `json:"isExplored"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, NPC, ITEM, INTERACTABLE
	Name string `json:"name"`

	Pos PosView `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	IsActive bool `json:"isActive,omitempty"`
	InTurn   bool `json:"inTurn,omitempty"`

	// Stats есть только у персонажей.
	Stats *StatsView `json:"stats,omitempty"`

	// Inventory и Equipment видны только для персонажей игроков.
	Inventory *InventoryView `json:"inventory,omitempty"`
	Equipment *EquipmentView `json:"equipment,omitempty"`
}

// StatsView это DTO для характеристик персонажа.
type StatsView struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	IsDead bool `json:"isDead"`
}

// ItemView представляет предмет для клиента
type ItemView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Symbol      string `json:"symbol"`
	Color       string `json:"color"`
	Category    string `json:"category"`
	Rarity      string `json:"rarity"`
	Damage      int    `json:"damage,omitempty"`
	Range       int    `json:"range,omitempty"`
	Spread      int    `json:"spread,omitempty"`
	KeyLevel    int    `json:"keyLevel,omitempty"`
}

// InventoryView представляет инвентарь для клиента
type InventoryView struct {
	Items    []ItemView `json:"items"`
	MaxSlots int        `json:"maxSlots"`
}

// EquipmentView представляет предметы в активном и запасном слотах
type EquipmentView struct {
	Active  *ItemView `json:"active,omitempty"`
	Passive *ItemView `json:"passive,omitempty"`
}

// LogEntry представляет одну запись в игровом логе (чате).
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID персонажа, от имени которого выполняется действие.
	// Пустой токен - действует активный персонаж.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для шага на соседнюю клетку (MOVE).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// CellPayload используется для действий, нацеленных на клетку (MOVE_TO, ATTACK, HOVER, INTERACT).
type CellPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}
