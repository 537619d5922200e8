package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/store"
	"github.com/thinkwise-edu/thinkwise/internal/ui/theme"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review generated problems before students see them",
}

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		pending, _ := cmd.Flags().GetBool("pending")
		typ, _ := cmd.Flags().GetString("type")
		limit, _ := cmd.Flags().GetInt("limit")

		f := store.ProblemFilter{Limit: limit}
		if pending {
			reviewed := false
			f.Reviewed = &reviewed
		}
		if typ != "" {
			t, err := exercise.ParseType(typ)
			if err != nil {
				return err
			}
			f.Type = t
		}

		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		problems, err := a.store.Problems().List(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("list problems: %w", err)
		}
		if len(problems) == 0 {
			fmt.Println("No problems found.")
			return nil
		}

		fmt.Println(theme.Row(
			theme.Cell(theme.Header, "ID", 36),
			theme.Cell(theme.Header, "Type", 6),
			theme.Cell(theme.Header, "Format", 6),
			theme.Cell(theme.Header, "Level", 6),
			theme.Cell(theme.Header, "Gr", 2),
			theme.Cell(theme.Header, "Status", 8),
			theme.Cell(theme.Header, "Title", 36),
		))
		fmt.Println(theme.Rule(114))
		for _, p := range problems {
			status, style := reviewStatus(p)
			fmt.Println(theme.Row(
				theme.Cell(theme.Dim, p.ID.String(), 36),
				theme.Cell(theme.Plain, shortType(p.Type), 6),
				theme.Cell(theme.Plain, shortFormat(p.Format), 6),
				theme.Cell(theme.Plain, string(p.Difficulty), 6),
				theme.Cell(theme.Plain, fmt.Sprint(p.Grade), 2),
				theme.Cell(style, status, 8),
				theme.Cell(theme.Plain, p.Title, 36),
			))
		}
		return nil
	},
}

var reviewApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a problem and make it visible to students",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes := true
		return patchProblem(cmd, args[0], store.ProblemPatch{Reviewed: &yes, Active: &yes}, "approved")
	},
}

var reviewRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a problem and hide it from students",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, no := true, false
		return patchProblem(cmd, args[0], store.ProblemPatch{Reviewed: &yes, Active: &no}, "rejected")
	},
}

func patchProblem(cmd *cobra.Command, rawID string, patch store.ProblemPatch, verb string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid problem ID %q: %w", rawID, err)
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.store.Problems().Update(cmd.Context(), id, patch)
	if err != nil {
		return fmt.Errorf("update problem: %w", err)
	}
	fmt.Printf("%s %s %s\n", theme.OK.Render(verb), p.ID, p.Title)
	return nil
}

func reviewStatus(p *exercise.Problem) (string, lipgloss.Style) {
	switch {
	case !p.Reviewed:
		return "pending", theme.Pending
	case p.Active:
		return "approved", theme.OK
	default:
		return "rejected", theme.Fail
	}
}

func shortType(t exercise.Type) string {
	if t == exercise.TypeDecomposition {
		return "DECOMP"
	}
	return "VERIFY"
}

func shortFormat(f exercise.AnswerFormat) string {
	switch f {
	case exercise.FormatMultipleChoice:
		return "MC"
	case exercise.FormatTrueFalse:
		return "OX"
	default:
		return "SHORT"
	}
}

func init() {
	reviewListCmd.Flags().Bool("pending", false, "Only show problems awaiting review")
	reviewListCmd.Flags().StringP("type", "t", "", "Filter by problem type")
	reviewListCmd.Flags().IntP("limit", "n", 50, "Maximum number of problems to show")

	reviewCmd.AddCommand(reviewListCmd)
	reviewCmd.AddCommand(reviewApproveCmd)
	reviewCmd.AddCommand(reviewRejectCmd)
}
