package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
)

// Style is a writing style exemplar the prompt asks the LLM to imitate.
type Style struct {
	Name    string
	Example string
}

var verificationStyles = []Style{
	{
		Name: "story",
		Example: `Minsu asked an AI search tool "When did the dinosaurs die out?" The AI answered: "Dinosaurs died out about 66 million years ago, mainly because of volcanic eruptions. Tyrannosaurus was a plant-eater, and the biggest dinosaur was Brachiosaurus." Minsu copied this straight into his science homework.`,
	},
	{
		Name: "news article",
		Example: `[Kids Science News] A recent study says plants take in carbon dioxide and give off oxygen at night. "Plants photosynthesize 24 hours a day and are most active at night," the team announced, so keeping plants in your bedroom means fresh air all night long.`,
	},
	{
		Name: "academic",
		Example: `The water cycle: water evaporates with the sun's energy and becomes clouds, and heavy clouds fall as rain or snow. Evaporated water turns into rain right away, which takes about 2-3 days, and groundwater is not part of this cycle.`,
	},
	{
		Name: "dialogue",
		Example: `Student: Why is the Earth round?
AI teacher: Great question! Spinning made the Earth a perfect sphere. It is exactly like a ball and equally flat everywhere, which is why people long ago easily knew it was round.`,
	},
}

var decompositionStyles = []Style{
	{
		Name:    "story-driven",
		Example: `Jiwoo is throwing a birthday party for 10 friends next Saturday. Mom said, "Why don't you plan it yourself?" How can Jiwoo make the party a success?`,
	},
	{
		Name:    "project",
		Example: `The 4th-grade environment club is running a classroom recycling campaign. The goal is to double the class recycling rate in one month. How should they plan it?`,
	},
	{
		Name:    "real-life problem solving",
		Example: `Every morning Suho runs out of time before school and keeps being late. There is a lot to do between waking up and leaving. What can Suho do to be on time?`,
	},
	{
		Name:    "dialogue/debate",
		Example: `Our class will vote on which sport to play in PE, but opinions are all over the place. How can we decide in a way that is fair and keeps everyone happy?`,
	},
}

var verificationGrades = map[int]string{
	1: "simple everyday words, very short sentences, familiar characters",
	2: "easy vocabulary centered on daily experiences",
	3: "basic science and social studies concepts tied to school life",
	4: "content linked to the textbook with a few technical terms",
	5: "deeper concepts that require critical thinking",
	6: "complex topics that need logical reasoning",
}

var decompositionGrades = map[int]string{
	1: "one thing at a time, very simple concrete actions",
	2: "concrete steps in an obvious order",
	3: "situations that need a little planning",
	4: "situations that require judging priorities",
	5: "several considerations that must be balanced",
	6: "open situations that reward creative solutions",
}

var errorCounts = map[exercise.Difficulty]string{
	exercise.DifficultyEasy:   "exactly 1 clear error",
	exercise.DifficultyMedium: "1 to 2 errors",
	exercise.DifficultyHard:   "2 subtle errors",
}

var stepCounts = map[exercise.Difficulty]int{
	exercise.DifficultyEasy:   3,
	exercise.DifficultyMedium: 4,
	exercise.DifficultyHard:   5,
}

var languageNames = map[exercise.Language]string{
	exercise.LanguageKorean:  "Korean",
	exercise.LanguageEnglish: "English",
}

// StepCount returns how many steps a decomposition problem of the given
// difficulty asks for.
func StepCount(d exercise.Difficulty) int {
	if n, ok := stepCounts[d]; ok {
		return n
	}
	return stepCounts[exercise.DifficultyMedium]
}

// GradeGuideline returns the vocabulary and complexity guideline for a grade.
func GradeGuideline(t exercise.Type, grade int) string {
	if t == exercise.TypeDecomposition {
		return decompositionGrades[grade]
	}
	return verificationGrades[grade]
}

// Prompt is a built generation prompt.
type Prompt struct {
	Text      string
	Style     string
	StepCount int // 0 for verification problems
	Shape     Shape
}

// PromptBuilder renders generation prompts. It is safe for concurrent use.
type PromptBuilder struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewPromptBuilder returns a builder drawing styles from rnd. A nil rnd uses
// the global source.
func NewPromptBuilder(rnd *rand.Rand) *PromptBuilder {
	return &PromptBuilder{rnd: rnd}
}

func (b *PromptBuilder) intN(n int) int {
	if b.rnd == nil {
		return rand.IntN(n)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rnd.IntN(n)
}

// Build renders the prompt for a validated input. Empty format and language
// take their defaults.
func (b *PromptBuilder) Build(in GenerateInput) Prompt {
	in = in.withDefaults()
	shape := ShapeFor(in.Type, in.Format)

	if in.Type == exercise.TypeDecomposition {
		style := decompositionStyles[b.intN(len(decompositionStyles))]
		n := StepCount(in.Difficulty)
		return Prompt{
			Text:      decompositionPrompt(in, style, n, shape),
			Style:     style.Name,
			StepCount: n,
			Shape:     shape,
		}
	}

	style := verificationStyles[b.intN(len(verificationStyles))]
	return Prompt{
		Text:  verificationPrompt(in, style, shape),
		Style: style.Name,
		Shape: shape,
	}
}

func writeHeader(b *strings.Builder, in GenerateInput) {
	fmt.Fprintf(b, "You are a veteran teacher creating learning material for grade %d elementary school students.\n\n", in.Grade)
}

func writeCommon(b *strings.Builder, in GenerateInput, style Style, difficulty string) {
	fmt.Fprintf(b, "Grade level: %d - %s\n", in.Grade, GradeGuideline(in.Type, in.Grade))
	fmt.Fprintf(b, "Difficulty: %s (%s)\n", strings.ToLower(string(in.Difficulty)), difficulty)
	fmt.Fprintf(b, "Subject: %s\n", in.Subject)
	fmt.Fprintf(b, "Style: %s\n\n", style.Name)
}

func writeFooter(b *strings.Builder, in GenerateInput, style Style, shape Shape, stepCount int) {
	fmt.Fprintf(b, "\nExample of the %s style (for tone only, do not reuse it):\n%s\n\n", style.Name, style.Example)
	fmt.Fprintf(b, "Write every user-facing string (title, content, answers, explanation, steps, options) in %s.\n\n", languageNames[in.Language])
	b.WriteString("Respond with a single JSON object in exactly this shape:\n")
	b.WriteString(shape.Instructions(stepCount))
	b.WriteString("\n\nRespond with JSON only. Do not add markdown or any other text.")
}

func verificationPrompt(in GenerateInput, style Style, shape Shape) string {
	var b strings.Builder
	count := errorCounts[in.Difficulty]

	writeHeader(&b, in)
	b.WriteString("Goal: write a critical-thinking problem in which the student finds errors in information produced by an AI.\n\n")
	writeCommon(&b, in, style, count)

	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "1. Write the content in the %q style.\n", style.Name)
	b.WriteString("2. Make the content 300-500 characters long so it has enough context.\n")
	fmt.Fprintf(&b, "3. Include a concrete situation or example a grade %d student understands.\n", in.Grade)
	fmt.Fprintf(&b, "4. Plant %s. Errors must be about facts (numbers, dates, scientific facts, historical events).\n", count)
	b.WriteString("5. Never use opinions or value judgements as errors.\n\n")

	b.WriteString("Avoid:\n")
	b.WriteString("- vague wording or opinions\n")
	b.WriteString("- errors that are obvious at a glance\n")
	b.WriteString("- terms above the grade level\n")

	switch in.Format {
	case exercise.FormatMultipleChoice:
		b.WriteString("\nThe student answers by choosing which of 4 labeled statements from the content is wrong.\n")
	case exercise.FormatTrueFalse:
		b.WriteString("\nThe student answers O (true) or X (false) to the question in the title about one claim in the content.\n")
	}

	writeFooter(&b, in, style, shape, 0)
	return b.String()
}

func decompositionPrompt(in GenerateInput, style Style, stepCount int, shape Shape) string {
	var b strings.Builder

	writeHeader(&b, in)
	b.WriteString("Goal: write a thinking problem in which the student breaks a complex real-life problem into logical steps.\n\n")
	writeCommon(&b, in, style, fmt.Sprintf("%d steps", stepCount))

	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "1. Write the problem in the %q style.\n", style.Name)
	fmt.Fprintf(&b, "2. Use a concrete, realistic situation a grade %d student could actually experience.\n", in.Grade)
	b.WriteString("3. Describe the situation in 300-500 characters with characters, setting, goal and constraints.\n")
	fmt.Fprintf(&b, "4. Break it into exactly %d steps.\n", stepCount)
	b.WriteString("5. Each step must build logically on the previous one.\n")
	b.WriteString("6. Each step must need a concrete action or decision.\n")

	switch in.Format {
	case exercise.FormatMultipleChoice:
		b.WriteString("\nFor every step the student picks the best of 4 labeled possible actions.\n")
	case exercise.FormatTrueFalse:
		b.WriteString("\nFor every step the student answers O or X: is the described action the right one at this point?\n")
	}

	writeFooter(&b, in, style, shape, stepCount)
	return b.String()
}
