package problemgen

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
)

var validate = validator.New()

// ErrInvalidInput wraps validation failures of generation requests.
var ErrInvalidInput = errors.New("invalid generation input")

// GenerateInput holds everything needed to generate one problem.
type GenerateInput struct {
	Type       exercise.Type         `json:"type" validate:"required,oneof=AI_VERIFICATION PROBLEM_DECOMPOSITION"`
	Difficulty exercise.Difficulty   `json:"difficulty" validate:"required,oneof=EASY MEDIUM HARD"`
	Grade      int                   `json:"grade" validate:"min=1,max=6"`
	Subject    string                `json:"subject" validate:"required,max=50"`
	Format     exercise.AnswerFormat `json:"answerFormat" validate:"omitempty,oneof=SHORT_ANSWER MULTIPLE_CHOICE TRUE_FALSE"`
	Language   exercise.Language     `json:"language" validate:"omitempty,oneof=ko en"`
}

// Validate checks the input. Errors wrap ErrInvalidInput.
func (in GenerateInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// withDefaults fills the optional format and language.
func (in GenerateInput) withDefaults() GenerateInput {
	if in.Format == "" {
		in.Format = exercise.FormatShortAnswer
	}
	if in.Language == "" {
		in.Language = exercise.LanguageKorean
	}
	return in
}

// GeneratedProblem is the normalized LLM output for one problem.
type GeneratedProblem struct {
	Title         string          `json:"title"`
	Content       string          `json:"content"`
	CorrectAnswer string          `json:"correctAnswer"`
	Explanation   string          `json:"explanation"`
	Options       []string        `json:"options,omitempty"`
	Steps         []GeneratedStep `json:"steps,omitempty"`
}

// GeneratedStep is one step of a generated decomposition problem.
type GeneratedStep struct {
	StepNumber    int      `json:"stepNumber"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Hint          string   `json:"hint"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
}

// Subjects are the topics drawn from when a request leaves the subject empty.
var Subjects = map[exercise.Type][]string{
	exercise.TypeVerification: {
		"동물", "식물", "우주", "역사", "과학", "지리",
		"환경", "건강", "기술", "문화", "스포츠", "음식",
	},
	exercise.TypeDecomposition: {
		"학교생활", "친구관계", "가족여행", "용돈관리", "시간관리",
		"숙제계획", "동아리활동", "봉사활동", "생일파티", "운동회",
	},
}
