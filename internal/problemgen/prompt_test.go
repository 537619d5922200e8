package problemgen

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
)

func seeded() *PromptBuilder {
	return NewPromptBuilder(rand.New(rand.NewPCG(1, 2)))
}

func TestBuild_DecompositionStepCounts(t *testing.T) {
	tests := []struct {
		difficulty exercise.Difficulty
		want       int
	}{
		{exercise.DifficultyEasy, 3},
		{exercise.DifficultyMedium, 4},
		{exercise.DifficultyHard, 5},
	}
	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			p := seeded().Build(GenerateInput{
				Type:       exercise.TypeDecomposition,
				Difficulty: tt.difficulty,
				Grade:      4,
				Subject:    "용돈관리",
			})
			if p.StepCount != tt.want {
				t.Fatalf("StepCount = %d, want %d", p.StepCount, tt.want)
			}
			want := "exactly " + string(rune('0'+tt.want)) + " steps"
			if !strings.Contains(p.Text, want) {
				t.Errorf("prompt does not ask for %q", want)
			}
		})
	}
}

func TestBuild_VerificationErrorCounts(t *testing.T) {
	tests := []struct {
		difficulty exercise.Difficulty
		want       string
	}{
		{exercise.DifficultyEasy, "exactly 1 clear error"},
		{exercise.DifficultyMedium, "1 to 2 errors"},
		{exercise.DifficultyHard, "2 subtle errors"},
	}
	for _, tt := range tests {
		p := seeded().Build(GenerateInput{
			Type:       exercise.TypeVerification,
			Difficulty: tt.difficulty,
			Grade:      3,
			Subject:    "우주",
		})
		if !strings.Contains(p.Text, tt.want) {
			t.Errorf("%s: prompt missing %q", tt.difficulty, tt.want)
		}
		if p.StepCount != 0 {
			t.Errorf("%s: verification StepCount = %d, want 0", tt.difficulty, p.StepCount)
		}
	}
}

func TestBuild_ContextLines(t *testing.T) {
	p := seeded().Build(GenerateInput{
		Type:       exercise.TypeVerification,
		Difficulty: exercise.DifficultyEasy,
		Grade:      5,
		Subject:    "역사",
	})

	for _, want := range []string{
		"grade 5 elementary school",
		"Grade level: 5 - " + GradeGuideline(exercise.TypeVerification, 5),
		"Subject: 역사",
		"Style: " + p.Style,
		"in Korean",
		`"title"`,
		`"correctAnswer"`,
	} {
		if !strings.Contains(p.Text, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(p.Text, `"steps"`) {
		t.Error("verification prompt must not ask for steps")
	}
}

func TestBuild_LanguageDirective(t *testing.T) {
	p := seeded().Build(GenerateInput{
		Type:       exercise.TypeVerification,
		Difficulty: exercise.DifficultyEasy,
		Grade:      2,
		Subject:    "animals",
		Language:   exercise.LanguageEnglish,
	})
	if !strings.Contains(p.Text, "in English") {
		t.Error("expected English language directive")
	}
}

func TestBuild_StyleIsDeterministicWithSeed(t *testing.T) {
	in := GenerateInput{
		Type:       exercise.TypeDecomposition,
		Difficulty: exercise.DifficultyMedium,
		Grade:      3,
		Subject:    "생일파티",
	}
	a := seeded().Build(in)
	b := seeded().Build(in)
	if a.Style != b.Style || a.Text != b.Text {
		t.Fatal("same seed produced different prompts")
	}

	known := map[string]bool{}
	for _, s := range decompositionStyles {
		known[s.Name] = true
	}
	if !known[a.Style] {
		t.Fatalf("unknown style %q", a.Style)
	}
}

func TestBuild_FormatConditioning(t *testing.T) {
	mc := seeded().Build(GenerateInput{
		Type:       exercise.TypeVerification,
		Difficulty: exercise.DifficultyEasy,
		Grade:      3,
		Subject:    "과학",
		Format:     exercise.FormatMultipleChoice,
	})
	if !strings.Contains(mc.Text, `"options"`) || !strings.Contains(mc.Text, `"A", "B", "C", "D"`) {
		t.Error("multiple choice prompt must ask for options and a letter answer")
	}

	tf := seeded().Build(GenerateInput{
		Type:       exercise.TypeDecomposition,
		Difficulty: exercise.DifficultyEasy,
		Grade:      3,
		Subject:    "숙제계획",
		Format:     exercise.FormatTrueFalse,
	})
	if !strings.Contains(tf.Text, `"O", "X"`) {
		t.Error("true/false prompt must ask for O or X")
	}

	sa := seeded().Build(GenerateInput{
		Type:       exercise.TypeVerification,
		Difficulty: exercise.DifficultyEasy,
		Grade:      3,
		Subject:    "과학",
	})
	if strings.Contains(sa.Text, `"options"`) {
		t.Error("short answer prompt must not ask for options")
	}
}

func TestGradeGuidelinesCoverAllGrades(t *testing.T) {
	for _, typ := range exercise.Types {
		for g := exercise.MinGrade; g <= exercise.MaxGrade; g++ {
			if GradeGuideline(typ, g) == "" {
				t.Errorf("%s grade %d has no guideline", typ, g)
			}
		}
	}
}

func TestGenerateInput_Validate(t *testing.T) {
	valid := GenerateInput{
		Type:       exercise.TypeVerification,
		Difficulty: exercise.DifficultyEasy,
		Grade:      3,
		Subject:    "과학",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*GenerateInput)
	}{
		{"bad type", func(in *GenerateInput) { in.Type = "ESSAY" }},
		{"grade too low", func(in *GenerateInput) { in.Grade = 0 }},
		{"grade too high", func(in *GenerateInput) { in.Grade = 7 }},
		{"empty subject", func(in *GenerateInput) { in.Subject = "" }},
		{"bad format", func(in *GenerateInput) { in.Format = "ESSAY" }},
		{"bad language", func(in *GenerateInput) { in.Language = "fr" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if err := in.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
