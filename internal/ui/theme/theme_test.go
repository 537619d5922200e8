package theme

import (
	"testing"

	"charm.land/lipgloss/v2"
)

func TestCell(t *testing.T) {
	plain := lipgloss.NewStyle()
	tests := []struct {
		in    string
		width int
	}{
		{"abc", 6},
		{"abcdefghij", 6},
		{"생일 파티 계획하기", 8},
	}
	for _, tt := range tests {
		got := Cell(plain, tt.in, tt.width)
		if w := lipgloss.Width(got); w != tt.width {
			t.Errorf("Cell(%q, %d) width = %d (%q)", tt.in, tt.width, w, got)
		}
	}
}
