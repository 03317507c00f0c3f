package version

import (
	"strings"
	"testing"
)

func TestCalculateBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{
			name:     "epoch date",
			date:     "2026-03-02",
			expected: 0,
		},
		{
			name:     "next day after epoch",
			date:     "2026-03-03",
			expected: 1,
		},
		{
			name:     "one year later",
			date:     "2027-03-02",
			expected: 365,
		},
		{
			name:     "date with leap years included",
			date:     "2032-03-02",
			expected: 2192,
		},
		{
			name:      "invalid format",
			date:      "invalid",
			wantError: true,
		},
		{
			name:      "empty date",
			date:      "",
			wantError: true,
		},
		{
			name:      "before epoch",
			date:      "2026-03-01",
			wantError: true,
		},
	}

	// BuildDate - глобальная переменная, поэтому подтесты идут последовательно
	old := BuildDate
	defer func() { BuildDate = old }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			BuildDate = tt.date

			got, err := CalculateBuildID()

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("CalculateBuildID() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()

	BuildDate = "2026-03-12"
	if got := String(); !strings.HasPrefix(got, "tower build 10 (2026-03-12)") {
		t.Errorf("String() = %q", got)
	}

	BuildDate = ""
	if got := String(); !strings.Contains(got, "unknown") {
		t.Errorf("String() without date = %q, want unknown", got)
	}
}

func TestDateOf_InvertsBuildIDFor(t *testing.T) {
	for _, id := range []int{0, 1, 59, 365, 2192} {
		date := DateOf(id)
		got, err := BuildIDFor(date)
		if err != nil || got != id {
			t.Errorf("BuildIDFor(DateOf(%d)=%s) = %d, %v", id, date, got, err)
		}
	}
}
