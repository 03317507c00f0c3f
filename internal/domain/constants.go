package domain

// Бюджет хода
const (
	DefaultActionPoints = 2
)

// Пороги стоимости ходьбы (в шагах пути)
const (
	DefaultShortWalk = 5
	DefaultLongWalk  = 10
)

// Параметры восприятия
const (
	DefaultVisionRadius = 10
	DefaultAggroRadius  = 8
)

// Движение
const (
	// CellCenterOffset - смещение центра клетки от её угла.
	CellCenterOffset = 0.5
	// PositionEpsilon - допуск при сравнении позиций.
	PositionEpsilon = 1e-3
	// DefaultWalkSpeed - клеток в секунду.
	DefaultWalkSpeed = 6.0
)

// Бой
const (
	UnarmedDamage = 5
	UnarmedRange  = 1
)

// Инвентарь
const (
	DefaultInventorySlots = 12
)
