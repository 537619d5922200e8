// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AiGenerationLogsColumns holds the columns for the "ai_generation_logs" table.
	AiGenerationLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "problem_type", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "problem_id", Type: field.TypeUUID, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, Default: 0},
	}
	// AiGenerationLogsTable holds the schema information for the "ai_generation_logs" table.
	AiGenerationLogsTable = &schema.Table{
		Name:       "ai_generation_logs",
		Columns:    AiGenerationLogsColumns,
		PrimaryKey: []*schema.Column{AiGenerationLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "aigenerationlog_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AiGenerationLogsColumns[2]},
			},
			{
				Name:    "aigenerationlog_problem_type",
				Unique:  false,
				Columns: []*schema.Column{AiGenerationLogsColumns[3]},
			},
			{
				Name:    "aigenerationlog_success",
				Unique:  false,
				Columns: []*schema.Column{AiGenerationLogsColumns[5]},
			},
		},
	}
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "score", Type: field.TypeInt},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "step_results", Type: field.TypeJSON, Nullable: true},
		{Name: "grading_method", Type: field.TypeString, Default: ""},
		{Name: "time_spent", Type: field.TypeInt, Default: 0},
		{Name: "hint_used", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "problem_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempts_problems_attempts",
				Columns:    []*schema.Column{AttemptsColumns[10]},
				RefColumns: []*schema.Column{ProblemsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "attempts_users_attempts",
				Columns:    []*schema.Column{AttemptsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[11], AttemptsColumns[9]},
			},
			{
				Name:    "attempt_problem_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[10]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ProblemsColumns holds the columns for the "problems" table.
	ProblemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "problem_type", Type: field.TypeEnum, Enums: []string{"AI_VERIFICATION", "PROBLEM_DECOMPOSITION"}},
		{Name: "answer_format", Type: field.TypeEnum, Enums: []string{"SHORT_ANSWER", "MULTIPLE_CHOICE", "TRUE_FALSE"}, Default: "SHORT_ANSWER"},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"EASY", "MEDIUM", "HARD"}},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "correct_answer", Type: field.TypeString, Size: 2147483647},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "grade", Type: field.TypeInt},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "hints", Type: field.TypeJSON, Nullable: true},
		{Name: "generated_by", Type: field.TypeEnum, Enums: []string{"AI", "TEACHER"}},
		{Name: "generator_model", Type: field.TypeString, Default: ""},
		{Name: "reviewed", Type: field.TypeBool, Default: false},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct_attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct_rate", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProblemsTable holds the schema information for the "problems" table.
	ProblemsTable = &schema.Table{
		Name:       "problems",
		Columns:    ProblemsColumns,
		PrimaryKey: []*schema.Column{ProblemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "problem_problem_type_active_reviewed",
				Unique:  false,
				Columns: []*schema.Column{ProblemsColumns[1], ProblemsColumns[15], ProblemsColumns[14]},
			},
			{
				Name:    "problem_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProblemsColumns[19]},
			},
		},
	}
	// ProblemStepsColumns holds the columns for the "problem_steps" table.
	ProblemStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "step_number", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "hint", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "problem_id", Type: field.TypeUUID},
	}
	// ProblemStepsTable holds the schema information for the "problem_steps" table.
	ProblemStepsTable = &schema.Table{
		Name:       "problem_steps",
		Columns:    ProblemStepsColumns,
		PrimaryKey: []*schema.Column{ProblemStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "problem_steps_problems_steps",
				Columns:    []*schema.Column{ProblemStepsColumns[7]},
				RefColumns: []*schema.Column{ProblemsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "problemstep_problem_id_step_number",
				Unique:  true,
				Columns: []*schema.Column{ProblemStepsColumns[7], ProblemStepsColumns[1]},
			},
		},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "day", Type: field.TypeString},
		{Name: "problems_solved", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "total_time", Type: field.TypeInt, Default: 0},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "progresses_users_progress",
				Columns:    []*schema.Column{ProgressesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "progress_user_id_day",
				Unique:  true,
				Columns: []*schema.Column{ProgressesColumns[5], ProgressesColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"STUDENT", "TEACHER", "ADMIN"}, Default: "STUDENT"},
		{Name: "subscription", Type: field.TypeEnum, Enums: []string{"FREE", "PREMIUM"}, Default: "FREE"},
		{Name: "grade", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AiGenerationLogsTable,
		AttemptsTable,
		LlmRequestEventsTable,
		ProblemsTable,
		ProblemStepsTable,
		ProgressesTable,
		UsersTable,
	}
)

func init() {
	AttemptsTable.ForeignKeys[0].RefTable = ProblemsTable
	AttemptsTable.ForeignKeys[1].RefTable = UsersTable
	ProblemStepsTable.ForeignKeys[0].RefTable = ProblemsTable
	ProgressesTable.ForeignKeys[0].RefTable = UsersTable
}
