package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		found bool
	}{
		{"gemini-2.0-flash", true},
		{"gemini-2.0-flash-001", true},
		{"google/gemini-2.0-flash-001", true},
		{"gpt-4o-mini", true},
		{"mock", false},
	}
	for _, tt := range tests {
		got := LookupCost(tt.model)
		if (got != nil) != tt.found {
			t.Errorf("LookupCost(%q) found = %v, want %v", tt.model, got != nil, tt.found)
		}
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.1, OutputPerMTok: 0.4}
	got := c.Cost(1_000_000, 500_000)
	if math.Abs(got-0.3) > 1e-9 {
		t.Fatalf("Cost = %v, want 0.3", got)
	}
}
