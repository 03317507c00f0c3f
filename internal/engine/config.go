package engine

import (
	"time"

	"tlb-server/internal/domain"
)

// CostTable - пороги стоимости ходьбы в шагах пути.
// Короче ShortWalk - одно очко, короче LongWalk - два, если ещё не ходил в этот ход.
type CostTable struct {
	ShortWalk int
	LongWalk  int
}

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят процедурные этажи.
	// Level N Seed = Seed + N
	Seed int64

	// TickRate - период тика симуляции.
	TickRate time.Duration
	// TimeLimit - через сколько мир сбрасывается сам.
	TimeLimit time.Duration

	ActionPoints int
	Costs        CostTable

	WalkSpeed    float64
	VisionRadius int

	ViewportW int
	ViewportH int

	// MaxPathNodes ограничивает раскрытие A*; 0 - размер карты.
	MaxPathNodes int

	// LogHistory - сколько последних записей журнала уходит в снимок.
	LogHistory int

	// Floors - сколько этажей в башне, считая фиксированный нулевой.
	Floors int
	// RoomsPerFloor - попытки разложить комнату на процедурном этаже.
	RoomsPerFloor int

	// LocaleDir и Locale - где искать переводы сообщений; пусто - встроенные русские тексты.
	LocaleDir string
	Locale    string

	// Cheats открывает отладочные действия TELEPORT и HEAL.
	Cheats bool
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:          time.Now().UnixNano(),
		TickRate:      50 * time.Millisecond,
		TimeLimit:     10 * time.Minute,
		ActionPoints:  domain.DefaultActionPoints,
		Costs:         CostTable{ShortWalk: domain.DefaultShortWalk, LongWalk: domain.DefaultLongWalk},
		WalkSpeed:     domain.DefaultWalkSpeed,
		VisionRadius:  domain.DefaultVisionRadius,
		ViewportW:     60,
		ViewportH:     30,
		LogHistory:    20,
		Floors:        2,
		RoomsPerFloor: 8,
		Locale:        "ru_RU",
	}
}
