package api

import (
	"encoding/json"
	"testing"
)

func sampleSnapshot() *Snapshot {
	s := &Snapshot{
		Type:           "UPDATE",
		Tick:           42,
		Generation:     3,
		Mode:           "TURN_BASED",
		ActiveEntityID: "100",
		ActionPoints:   2,
		Grid:           GridMeta{Width: 80, Height: 50},
		Map: []TileView{
			{X: 20, Y: 20, Symbol: "#", Color: "#826E32", IsWall: true, IsVisible: true, IsExplored: true},
		},
		Highlight: &Highlight{Kind: HighlightPath, Band: BandFar, Cells: []PosView{{X: 21, Y: 21}}},
	}
	s.Entities = []EntityView{{ID: "100", Type: "PLAYER", Name: "Colton", Pos: PosView{X: 22, Y: 22}}}
	s.Entities[0].Render.Symbol = "@"
	return s
}

func TestCodecs(t *testing.T) {
	for _, codec := range []Codec{CodecJSON, CodecMsgpack} {
		t.Run(codec.String(), func(t *testing.T) {
			data, err := EncodeSnapshot(sampleSnapshot(), codec)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := DecodeSnapshot(data, codec)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Tick != 42 || got.Generation != 3 || got.Mode != "TURN_BASED" {
				t.Errorf("header mismatch: %+v", got)
			}
			if len(got.Entities) != 1 || got.Entities[0].Render.Symbol != "@" {
				t.Errorf("entities mismatch: %+v", got.Entities)
			}
			if got.Highlight == nil || got.Highlight.Band != BandFar {
				t.Errorf("highlight mismatch: %+v", got.Highlight)
			}
		})
	}
}

// Бинарный кадр использует те же ключи, что и JSON.
func TestMsgpackUsesJSONKeys(t *testing.T) {
	data, err := EncodeSnapshot(sampleSnapshot(), CodecMsgpack)
	if err != nil {
		t.Fatal(err)
	}
	var generic map[string]any
	got, err := DecodeSnapshot(data, CodecMsgpack)
	if err != nil {
		t.Fatal(err)
	}
	raw, _ := json.Marshal(got)
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatal(err)
	}
	if _, ok := generic["activeEntityId"]; !ok {
		t.Error("expected activeEntityId key")
	}
}

func TestParseCodec(t *testing.T) {
	tests := map[string]Codec{
		"":        CodecJSON,
		"json":    CodecJSON,
		"MsgPack": CodecMsgpack,
		"xml":     CodecJSON,
	}
	for in, want := range tests {
		if got := ParseCodec(in); got != want {
			t.Errorf("ParseCodec(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       Validator
		wantErr bool
	}{
		{"step", DirectionPayload{Dx: 1, Dy: -1}, false},
		{"zero step", DirectionPayload{}, true},
		{"long step", DirectionPayload{Dx: 2}, true},
		{"cell", CellPayload{X: 3, Y: 4}, false},
		{"negative cell", CellPayload{X: -1}, true},
		{"command", ClientCommand{Action: "MOVE"}, false},
		{"empty command", ClientCommand{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.v.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSchemas(t *testing.T) {
	schemas := Schemas()
	for _, name := range []string{"snapshot", "command", "direction", "cell"} {
		s, ok := schemas[name]
		if !ok || s == nil {
			t.Fatalf("missing schema %q", name)
		}
		if _, err := json.Marshal(s); err != nil {
			t.Errorf("schema %q does not marshal: %v", name, err)
		}
	}
}
