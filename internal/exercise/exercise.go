// Package exercise holds the domain types shared by generation, grading,
// persistence and the HTTP API.
package exercise

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type is the cognitive task a problem asks for.
type Type string

const (
	// TypeVerification asks the student to spot factual errors planted in
	// an AI-written passage.
	TypeVerification Type = "AI_VERIFICATION"

	// TypeDecomposition asks the student to break a scenario into ordered steps.
	TypeDecomposition Type = "PROBLEM_DECOMPOSITION"
)

// AnswerFormat is the response modality, independent of problem type.
type AnswerFormat string

const (
	FormatShortAnswer    AnswerFormat = "SHORT_ANSWER"
	FormatMultipleChoice AnswerFormat = "MULTIPLE_CHOICE"
	FormatTrueFalse      AnswerFormat = "TRUE_FALSE"
)

// Difficulty of a problem.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Source records who authored a problem.
type Source string

const (
	SourceAI      Source = "AI"
	SourceTeacher Source = "TEACHER"
)

// Role of a user account.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

// Subscription tier of a user account.
type Subscription string

const (
	SubscriptionFree    Subscription = "FREE"
	SubscriptionPremium Subscription = "PREMIUM"
)

// Language of the user-facing text in a generated problem.
type Language string

const (
	LanguageKorean  Language = "ko"
	LanguageEnglish Language = "en"
)

// Grade bounds (elementary school).
const (
	MinGrade = 1
	MaxGrade = 6
)

// Answers used by the TRUE_FALSE format.
const (
	AnswerTrue  = "O"
	AnswerFalse = "X"
)

// ChoiceLabels are the option labels of a MULTIPLE_CHOICE problem.
var ChoiceLabels = []string{"A", "B", "C", "D"}

var (
	Types        = []Type{TypeVerification, TypeDecomposition}
	Formats      = []AnswerFormat{FormatShortAnswer, FormatMultipleChoice, FormatTrueFalse}
	Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
	Roles        = []Role{RoleStudent, RoleTeacher, RoleAdmin}
)

func (t Type) Valid() bool {
	return t == TypeVerification || t == TypeDecomposition
}

func (f AnswerFormat) Valid() bool {
	return f == FormatShortAnswer || f == FormatMultipleChoice || f == FormatTrueFalse
}

// ExactMatch reports whether answers in this format are graded by string
// equality rather than by judgement.
func (f AnswerFormat) ExactMatch() bool {
	return f == FormatMultipleChoice || f == FormatTrueFalse
}

func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher || r == RoleAdmin
}

// Staff reports whether the role may use the admin surface.
func (r Role) Staff() bool {
	return r == RoleAdmin || r == RoleTeacher
}

func (s Subscription) Valid() bool {
	return s == SubscriptionFree || s == SubscriptionPremium
}

func (l Language) Valid() bool {
	return l == LanguageKorean || l == LanguageEnglish
}

// ParseType converts user input into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown problem type %q", s)
	}
	return t, nil
}

// ParseFormat converts user input into an AnswerFormat.
func ParseFormat(s string) (AnswerFormat, error) {
	f := AnswerFormat(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown answer format %q", s)
	}
	return f, nil
}

// ParseDifficulty converts user input into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// ParseRole converts user input into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Problem is a single exercise a student can attempt.
type Problem struct {
	ID              uuid.UUID    `json:"id"`
	Type            Type         `json:"type"`
	Format          AnswerFormat `json:"answerFormat"`
	Difficulty      Difficulty   `json:"difficulty"`
	Title           string       `json:"title"`
	Content         string       `json:"content"`
	CorrectAnswer   string       `json:"correctAnswer"`
	Explanation     string       `json:"explanation"`
	Subject         string       `json:"subject"`
	Grade           int          `json:"grade"`
	Options         []string     `json:"options,omitempty"`
	Hints           []string     `json:"hints,omitempty"`
	GeneratedBy     Source       `json:"generatedBy"`
	Model           string       `json:"aiModel,omitempty"`
	Reviewed        bool         `json:"reviewed"`
	Active          bool         `json:"active"`
	TotalAttempts   int          `json:"totalAttempts"`
	CorrectAttempts int          `json:"correctAttempts"`
	CorrectRate     int          `json:"correctRate"`
	Steps           []Step       `json:"steps,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// Visible reports whether students may see and attempt the problem.
func (p *Problem) Visible() bool {
	return p.Active && p.Reviewed
}

// Step is one ordered step of a PROBLEM_DECOMPOSITION problem.
type Step struct {
	ID            uuid.UUID `json:"id"`
	StepNumber    int       `json:"stepNumber"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Hint          string    `json:"hint"`
	Options       []string  `json:"options,omitempty"`
	CorrectAnswer string    `json:"correctAnswer,omitempty"`
}

// StepResult is the grading outcome for one step of a decomposition answer.
type StepResult struct {
	StepNumber int    `json:"stepNumber"`
	Answer     string `json:"answer"`
	IsCorrect  bool   `json:"isCorrect"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
	Reasoning  string `json:"reasoning,omitempty"`
	Method     string `json:"method"`
}

// Attempt is one student submission and its grading outcome.
type Attempt struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"userId"`
	ProblemID   uuid.UUID    `json:"problemId"`
	Answer      string       `json:"answer"`
	IsCorrect   bool         `json:"isCorrect"`
	Score       int          `json:"score"`
	Feedback    string       `json:"feedback"`
	StepResults []StepResult `json:"stepResults,omitempty"`
	Method      string       `json:"method"`
	TimeSpent   int          `json:"timeSpent"`
	HintUsed    bool         `json:"hintUsed"`
	CreatedAt   time.Time    `json:"createdAt"`

	// ProblemTitle and ProblemType are filled when the attempt is loaded
	// together with its problem.
	ProblemTitle string `json:"problemTitle,omitempty"`
	ProblemType  Type   `json:"problemType,omitempty"`
}

// User is an account on the platform.
type User struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	Role         Role         `json:"role"`
	Subscription Subscription `json:"subscription"`
	Grade        *int         `json:"grade,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}
