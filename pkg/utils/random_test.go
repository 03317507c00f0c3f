package utils

import "testing"

func TestStringToSeed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{name: "number", in: "42", want: 42},
		{name: "negative", in: "-7", want: -7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringToSeed(tt.in); got != tt.want {
				t.Errorf("StringToSeed(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}

	if StringToSeed("tower") != StringToSeed("tower") {
		t.Error("word seeds must be stable")
	}
	if StringToSeed("tower") == StringToSeed("dungeon") {
		t.Error("different words should give different seeds")
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if len(a) != 16 {
		t.Errorf("len(GenerateID()) = %d, want 16", len(a))
	}
	if a == b {
		t.Error("two ids should differ")
	}
}
