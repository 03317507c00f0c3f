package api

// Band - ступень дальности хода для подсветки.
type Band string

const (
	BandNone       Band = ""
	BandNear       Band = "NEAR"
	BandFar        Band = "FAR"
	BandOutOfRange Band = "OUT_OF_RANGE"
)

// HighlightKind - что именно подсвечено.
type HighlightKind string

const (
	HighlightPath HighlightKind = "PATH"
	HighlightRay  HighlightKind = "RAY"
	HighlightCone HighlightKind = "CONE"
)

// Highlight - предпросмотр действия под курсором: путь или линия огня.
type Highlight struct {
	Kind  HighlightKind `json:"kind"`
	Cells []PosView     `json:"cells"`
	Band  Band          `json:"band,omitempty"`
	Color string        `json:"color"`
}
