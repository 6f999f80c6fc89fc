package timeutil

import (
	"testing"
	"time"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		ticks int
		want  string
	}{
		{5, "0.25s"},
		{20, "1.00s"},
		{40, "2.00s"},
		{320, "16.00s"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(Ticks(tt.ticks, 50*time.Millisecond)); got != tt.want {
			t.Errorf("FormatSeconds(%d ticks) = %s, want %s", tt.ticks, got, tt.want)
		}
	}
}
