package problemgen

import (
	"fmt"
	"strings"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/llm"
)

// Kind is the JSON type of a shape field.
type Kind string

const (
	KindString     Kind = "string"
	KindInteger    Kind = "integer"
	KindStringList Kind = "string-list"
	KindObjectList Kind = "object-list"
)

// Field is one property of the expected reply.
type Field struct {
	Name        string
	Kind        Kind
	Description string

	// Enum restricts a string field to the listed values.
	Enum []string

	// Count is the exact length of a string list. Zero means any length.
	Count int

	// Fields describes the elements of an object list.
	Fields []Field
}

// Shape describes the JSON object an LLM must reply with. The same Shape
// renders the prompt's output instructions and the schema used to validate
// the reply.
type Shape struct {
	Name   string
	Fields []Field
}

// Field returns the named top-level field.
func (s Shape) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func baseFields(t exercise.Type) []Field {
	answer := "The factual error(s) the student must find and what the correct fact is"
	if t == exercise.TypeDecomposition {
		answer = "A summary of the key approach to solving the problem step by step"
	}
	return []Field{
		{Name: "title", Kind: KindString, Description: "Problem title, at most 30 characters"},
		{Name: "content", Kind: KindString, Description: "The passage or scenario shown to the student, 300-500 characters"},
		{Name: "correctAnswer", Kind: KindString, Description: answer},
		{Name: "explanation", Kind: KindString, Description: "Why this is the answer, written for the student's grade, at most 150 characters"},
	}
}

func stepFields() []Field {
	return []Field{
		{Name: "stepNumber", Kind: KindInteger, Description: "1-based position of the step"},
		{Name: "title", Kind: KindString, Description: "The core of the step in one short sentence"},
		{Name: "description", Kind: KindString, Description: "What the student concretely does in this step, 100-150 characters"},
		{Name: "hint", Kind: KindString, Description: "A concrete tip for a student who is stuck, at most 80 characters"},
	}
}

func choiceFields(what string) []Field {
	return []Field{
		{
			Name:        "options",
			Kind:        KindStringList,
			Count:       len(exercise.ChoiceLabels),
			Description: fmt.Sprintf("Exactly 4 %s, each prefixed with its label: \"A. ...\", \"B. ...\", \"C. ...\", \"D. ...\"", what),
		},
		{
			Name:        "correctAnswer",
			Kind:        KindString,
			Enum:        exercise.ChoiceLabels,
			Description: "The label of the correct option",
		},
	}
}

func trueFalseField(when string) Field {
	return Field{
		Name:        "correctAnswer",
		Kind:        KindString,
		Enum:        []string{exercise.AnswerTrue, exercise.AnswerFalse},
		Description: fmt.Sprintf("%q if %s, %q otherwise", exercise.AnswerTrue, when, exercise.AnswerFalse),
	}
}

// merge replaces fields with the same name and appends the rest.
func merge(base []Field, extra ...Field) []Field {
	out := append([]Field(nil), base...)
	for _, e := range extra {
		replaced := false
		for i := range out {
			if out[i].Name == e.Name {
				out[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, e)
		}
	}
	return out
}

// ShapeFor composes the reply shape for a problem type and answer format.
// Format additions apply to the problem itself for verification and to
// every step for decomposition.
func ShapeFor(t exercise.Type, f exercise.AnswerFormat) Shape {
	fields := baseFields(t)

	if t == exercise.TypeDecomposition {
		steps := stepFields()
		switch f {
		case exercise.FormatMultipleChoice:
			steps = merge(steps, choiceFields("possible actions for this step")...)
		case exercise.FormatTrueFalse:
			steps = merge(steps, trueFalseField("the action in the step's description is the right thing to do at this point"))
		}
		fields = append(fields, Field{
			Name:        "steps",
			Kind:        KindObjectList,
			Description: "The ordered steps",
			Fields:      steps,
		})
	} else {
		switch f {
		case exercise.FormatMultipleChoice:
			fields = merge(fields, choiceFields("statements taken from the passage, exactly one of them the planted error")...)
		case exercise.FormatTrueFalse:
			fields = merge(fields,
				Field{Name: "title", Kind: KindString, Description: "A yes/no question about one claim in the passage, at most 40 characters"},
				trueFalseField("the claim the title asks about is true"),
			)
		}
	}

	return Shape{
		Name:   strings.ToLower(fmt.Sprintf("%s-%s", t, f)),
		Fields: fields,
	}
}

// Schema renders the shape as a strict JSON Schema. Every field is required.
func (s Shape) Schema() *llm.Schema {
	return &llm.Schema{
		Name:        s.Name,
		Description: "A generated ThinkWise problem",
		Definition:  objectSchema(s.Fields),
	}
}

func objectSchema(fields []Field) map[string]any {
	props := make(map[string]any, len(fields))
	required := make([]any, 0, len(fields))
	for _, f := range fields {
		props[f.Name] = fieldSchema(f)
		required = append(required, f.Name)
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

func fieldSchema(f Field) map[string]any {
	switch f.Kind {
	case KindInteger:
		return map[string]any{"type": "integer", "description": f.Description}
	case KindStringList:
		s := map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": f.Description,
		}
		if f.Count > 0 {
			s["minItems"] = f.Count
			s["maxItems"] = f.Count
		}
		return s
	case KindObjectList:
		// No minItems: the step count is guidance, not a contract.
		return map[string]any{
			"type":        "array",
			"items":       objectSchema(f.Fields),
			"description": f.Description,
		}
	default:
		s := map[string]any{"type": "string", "description": f.Description}
		if len(f.Enum) > 0 {
			enum := make([]any, len(f.Enum))
			for i, e := range f.Enum {
				enum[i] = e
			}
			s["enum"] = enum
		}
		return s
	}
}

// Instructions renders the shape as an annotated JSON skeleton for the prompt.
// stepCount sets how many step entries the skeleton announces.
func (s Shape) Instructions(stepCount int) string {
	var b strings.Builder
	writeObject(&b, s.Fields, "", stepCount)
	return b.String()
}

func writeObject(b *strings.Builder, fields []Field, indent string, stepCount int) {
	b.WriteString("{\n")
	for i, f := range fields {
		fmt.Fprintf(b, "%s  %q: ", indent, f.Name)
		switch f.Kind {
		case KindInteger:
			fmt.Fprintf(b, "<integer: %s>", f.Description)
		case KindStringList:
			fmt.Fprintf(b, "[<string>, ...] (%s)", f.Description)
		case KindObjectList:
			b.WriteString("[\n" + indent + "    ")
			writeObject(b, f.Fields, indent+"    ", stepCount)
			fmt.Fprintf(b, "\n%s    // ... exactly %d entries, stepNumber 1 to %d\n%s  ]", indent, stepCount, stepCount, indent)
		default:
			if len(f.Enum) > 0 {
				fmt.Fprintf(b, "<one of %s: %s>", strings.Join(quoteAll(f.Enum), ", "), f.Description)
			} else {
				fmt.Fprintf(b, "<string: %s>", f.Description)
			}
		}
		if i < len(fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(indent + "}")
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
