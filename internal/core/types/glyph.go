package types

import (
	"fmt"

	"tlb-server/internal/core/types/enums"
)

// Glyph - упакованный цветной символ для клетки экрана.
// Использует 32 бита (uint32):
//
//	[0:8]  - символ (ASCII) - маска 0xFF
//	[8:32] - RGB-цвет      - маска 0xFFFFFF
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// Палитра. Освещённые и "запомненные" варианты тайлов различаются только цветом.
const (
	ColorWallLit    uint32 = 0x826E32
	ColorWallDark   uint32 = 0x000064
	ColorGroundLit  uint32 = 0xC8B432
	ColorGroundDark uint32 = 0x323296

	ColorPlayer     uint32 = 0xFFFFFF
	ColorActive     uint32 = 0x22D3EE
	ColorGuard      uint32 = 0xFF7F00
	ColorAccountant uint32 = 0x7F7F7F
	ColorTechnician uint32 = 0xFFFF00
	ColorDoor       uint32 = 0xFFBF00
	ColorCorpse     uint32 = 0x8B4513

	ColorCommon   uint32 = 0x7F7F7F
	ColorUncommon uint32 = 0x00BF00
	ColorRare     uint32 = 0x3F3FFF
	ColorUnique   uint32 = 0xBF00FF
	ColorEpic     uint32 = 0xFFBF00

	ColorBandNear  uint32 = 0x3FFF3F
	ColorBandFar   uint32 = 0xFF9F3F
	ColorBandOut   uint32 = 0xFF3F3F
	ColorBandSight uint32 = 0xDFDFDF
)

// MakeGlyph создает Glyph из RGB-цвета и ASCII символа.
//
//	glyph := MakeGlyph(0xFFA500, 'A') // 0xFFA50041
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color извлекает 24-битный RGB-цвет.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// Char извлекает символ.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// WithColor возвращает тот же символ другим цветом.
func (g Glyph) WithColor(colorRGB uint32) Glyph {
	return MakeGlyph(colorRGB, g.Char())
}

// Dim приглушает цвет вдвое: так рисуются клетки, которые помнят, но сейчас не видят.
func (g Glyph) Dim() Glyph {
	c := g.Color()
	r := (c >> 16 & 0xFF) / 2
	gr := (c >> 8 & 0xFF) / 2
	b := (c & 0xFF) / 2
	return MakeGlyph(r<<16|gr<<8|b, g.Char())
}

// String реализует fmt.Stringer: "Glyph{char='A', color=#FFA500}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}

// HexColor возвращает цвет в виде "#RRGGBB".
func (g Glyph) HexColor() string {
	return HexColor(g.Color())
}

// HexColor форматирует RGB-цвет для DTO.
func HexColor(c uint32) string {
	return fmt.Sprintf("#%06X", c&maskColor)
}

// RarityColor - цвет предмета по редкости.
func RarityColor(rarity enums.Rarity) uint32 {
	switch rarity {
	case enums.RarityUncommon:
		return ColorUncommon
	case enums.RarityRare:
		return ColorRare
	case enums.RarityUnique:
		return ColorUnique
	case enums.RarityEpic:
		return ColorEpic
	}
	return ColorCommon
}
