package cmd

import (
	"testing"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/store"
)

func TestFilterPurpose(t *testing.T) {
	events := []store.LLMRequestEvent{
		{ID: 5, LLMRequestEventData: store.LLMRequestEventData{Purpose: "grading"}},
		{ID: 4, LLMRequestEventData: store.LLMRequestEventData{Purpose: "problem-gen"}},
		{ID: 3, LLMRequestEventData: store.LLMRequestEventData{Purpose: "grading"}},
		{ID: 2, LLMRequestEventData: store.LLMRequestEventData{Purpose: "grading"}},
	}

	got := filterPurpose(events, "grading", 2)
	if len(got) != 2 || got[0].ID != 5 || got[1].ID != 3 {
		t.Errorf("filterPurpose(limit 2) = %+v", got)
	}
	if got := filterPurpose(events, "grading", 0); len(got) != 3 {
		t.Errorf("filterPurpose(no limit) len = %d, want 3", len(got))
	}
	if got := filterPurpose(events, "other", 10); len(got) != 0 {
		t.Errorf("filterPurpose(other) len = %d, want 0", len(got))
	}
}

func TestReviewStatus(t *testing.T) {
	tests := []struct {
		reviewed, active bool
		want             string
	}{
		{false, false, "pending"},
		{true, true, "approved"},
		{true, false, "rejected"},
	}
	for _, tt := range tests {
		got, _ := reviewStatus(&exercise.Problem{Reviewed: tt.reviewed, Active: tt.active})
		if got != tt.want {
			t.Errorf("reviewStatus(reviewed=%v, active=%v) = %q, want %q", tt.reviewed, tt.active, got, tt.want)
		}
	}
}

func TestShortLabels(t *testing.T) {
	if shortType(exercise.TypeDecomposition) != "DECOMP" || shortType(exercise.TypeVerification) != "VERIFY" {
		t.Error("unexpected type labels")
	}
	if shortFormat(exercise.FormatTrueFalse) != "OX" || shortFormat(exercise.FormatMultipleChoice) != "MC" || shortFormat(exercise.FormatShortAnswer) != "SHORT" {
		t.Error("unexpected format labels")
	}
}
