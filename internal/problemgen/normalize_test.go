package problemgen

import (
	"errors"
	"reflect"
	"testing"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
)

const flatReply = `{
	"title": "AI가 알려준 공룡 정보",
	"content": "공룡은 약 6600만 년 전에 멸종했으며 티라노사우루스는 초식 공룡이었습니다.",
	"correctAnswer": "티라노사우루스는 육식 공룡입니다.",
	"explanation": "티라노사우루스는 날카로운 이빨을 가진 육식 공룡이에요."
}`

func decompositionReply(steps int) string {
	s := `{"title":"생일 파티 계획","content":"민지는 파티를 열어요.","correctAnswer":"단계별로 계획한다","explanation":"나누면 쉬워요.","steps":[`
	for i := 1; i <= steps; i++ {
		if i > 1 {
			s += ","
		}
		s += `{"stepNumber":` + string(rune('0'+i)) + `,"title":"단계","description":"할 일","hint":"힌트"}`
	}
	return s + `]}`
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"upper fence", "```JSON\n{\"a\":1}\n```", `{"a":1}`},
		{"whitespace", "  \n```json\n{\"a\":1}\n```  \n", `{"a":1}`},
		{"no closing fence", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Fatalf("StripFences() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalize_Flat(t *testing.T) {
	shape := ShapeFor(exercise.TypeVerification, exercise.FormatShortAnswer)
	p, err := Normalize("```json\n"+flatReply+"\n```", shape)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "AI가 알려준 공룡 정보" {
		t.Errorf("unexpected title %q", p.Title)
	}
	if len(p.Steps) != 0 || len(p.Options) != 0 {
		t.Errorf("flat reply should have no steps or options: %+v", p)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	shape := ShapeFor(exercise.TypeDecomposition, exercise.FormatShortAnswer)
	text := "```json\n" + decompositionReply(3) + "\n```"

	a, err := Normalize(text, shape)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Normalize(text, shape)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("normalizing the same text twice gave different results")
	}
}

// An EASY prompt asks for 3 steps; a 2-step reply still parses.
func TestNormalize_StepCountNotEnforced(t *testing.T) {
	shape := ShapeFor(exercise.TypeDecomposition, exercise.FormatShortAnswer)
	for _, n := range []int{3, 2} {
		p, err := Normalize(decompositionReply(n), shape)
		if err != nil {
			t.Fatalf("%d steps: unexpected error: %v", n, err)
		}
		if len(p.Steps) != n {
			t.Fatalf("expected %d steps, got %d", n, len(p.Steps))
		}
	}
}

func TestNormalize_ParseError(t *testing.T) {
	shape := ShapeFor(exercise.TypeVerification, exercise.FormatShortAnswer)
	_, err := Normalize("Sorry, I can't help with that.", shape)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %T (%v)", err, err)
	}
	if pe.Text != "Sorry, I can't help with that." {
		t.Fatalf("ParseError should carry the offending text, got %q", pe.Text)
	}
}

func TestNormalize_SchemaErrors(t *testing.T) {
	tests := []struct {
		name   string
		format exercise.AnswerFormat
		typ    exercise.Type
		text   string
	}{
		{
			name:   "missing explanation",
			typ:    exercise.TypeVerification,
			format: exercise.FormatShortAnswer,
			text:   `{"title":"t","content":"c","correctAnswer":"a"}`,
		},
		{
			name:   "mistyped title",
			typ:    exercise.TypeVerification,
			format: exercise.FormatShortAnswer,
			text:   `{"title":7,"content":"c","correctAnswer":"a","explanation":"e"}`,
		},
		{
			name:   "three options",
			typ:    exercise.TypeVerification,
			format: exercise.FormatMultipleChoice,
			text:   `{"title":"t","content":"c","correctAnswer":"A","explanation":"e","options":["A. x","B. y","C. z"]}`,
		},
		{
			name:   "answer outside A-D",
			typ:    exercise.TypeVerification,
			format: exercise.FormatMultipleChoice,
			text:   `{"title":"t","content":"c","correctAnswer":"E","explanation":"e","options":["A. x","B. y","C. z","D. w"]}`,
		},
		{
			name:   "true false answer not O or X",
			typ:    exercise.TypeVerification,
			format: exercise.FormatTrueFalse,
			text:   `{"title":"t","content":"c","correctAnswer":"true","explanation":"e"}`,
		},
		{
			name:   "missing steps",
			typ:    exercise.TypeDecomposition,
			format: exercise.FormatShortAnswer,
			text:   flatReply,
		},
		{
			name:   "step without hint",
			typ:    exercise.TypeDecomposition,
			format: exercise.FormatShortAnswer,
			text:   `{"title":"t","content":"c","correctAnswer":"a","explanation":"e","steps":[{"stepNumber":1,"title":"s","description":"d"}]}`,
		},
		{
			name:   "step missing options",
			typ:    exercise.TypeDecomposition,
			format: exercise.FormatMultipleChoice,
			text:   `{"title":"t","content":"c","correctAnswer":"a","explanation":"e","steps":[{"stepNumber":1,"title":"s","description":"d","hint":"h","correctAnswer":"B"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.text, ShapeFor(tt.typ, tt.format))
			var se *SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("expected SchemaError, got %T (%v)", err, err)
			}
		})
	}
}

func TestNormalize_MultipleChoice(t *testing.T) {
	shape := ShapeFor(exercise.TypeVerification, exercise.FormatMultipleChoice)
	p, err := Normalize(`{"title":"t","content":"c","correctAnswer":"C","explanation":"e","options":["A. x","B. y","C. z","D. w"]}`, shape)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(p.Options))
	}
	if p.CorrectAnswer != "C" {
		t.Fatalf("expected answer C, got %q", p.CorrectAnswer)
	}
}

func TestNormalize_DecompositionTrueFalse(t *testing.T) {
	shape := ShapeFor(exercise.TypeDecomposition, exercise.FormatTrueFalse)
	p, err := Normalize(`{"title":"t","content":"c","correctAnswer":"a","explanation":"e","steps":[
		{"stepNumber":1,"title":"s1","description":"d1","hint":"h1","correctAnswer":"O"},
		{"stepNumber":2,"title":"s2","description":"d2","hint":"h2","correctAnswer":"X"}]}`, shape)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Steps[0].CorrectAnswer != "O" || p.Steps[1].CorrectAnswer != "X" {
		t.Fatalf("unexpected step answers: %+v", p.Steps)
	}
}

func TestShapeFor_Composition(t *testing.T) {
	tests := []struct {
		typ        exercise.Type
		format     exercise.AnswerFormat
		hasOptions bool
		hasSteps   bool
		answerEnum []string
	}{
		{exercise.TypeVerification, exercise.FormatShortAnswer, false, false, nil},
		{exercise.TypeVerification, exercise.FormatMultipleChoice, true, false, []string{"A", "B", "C", "D"}},
		{exercise.TypeVerification, exercise.FormatTrueFalse, false, false, []string{"O", "X"}},
		{exercise.TypeDecomposition, exercise.FormatShortAnswer, false, true, nil},
		{exercise.TypeDecomposition, exercise.FormatMultipleChoice, false, true, nil},
	}
	for _, tt := range tests {
		s := ShapeFor(tt.typ, tt.format)
		_, hasOptions := s.Field("options")
		_, hasSteps := s.Field("steps")
		if hasOptions != tt.hasOptions || hasSteps != tt.hasSteps {
			t.Errorf("%s: options=%v steps=%v", s.Name, hasOptions, hasSteps)
		}
		answer, _ := s.Field("correctAnswer")
		if !reflect.DeepEqual(answer.Enum, tt.answerEnum) {
			t.Errorf("%s: correctAnswer enum = %v, want %v", s.Name, answer.Enum, tt.answerEnum)
		}
	}

	steps, _ := ShapeFor(exercise.TypeDecomposition, exercise.FormatMultipleChoice).Field("steps")
	var stepOptions bool
	for _, f := range steps.Fields {
		if f.Name == "options" && f.Count == 4 {
			stepOptions = true
		}
	}
	if !stepOptions {
		t.Error("decomposition multiple choice must add 4 options per step")
	}
}
