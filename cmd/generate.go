package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/problemgen"
	"github.com/thinkwise-edu/thinkwise/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate problems with the configured LLM and store them for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, count, err := generateInput(cmd)
		if err != nil {
			return err
		}

		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if in.Language == "" {
			in.Language = exercise.Language(a.cfg.Generation.Language)
		}

		provider, err := a.provider(cmd.Context())
		if err != nil {
			return err
		}
		batch := a.batch(provider)

		fmt.Println(theme.Title.Render(fmt.Sprintf("Generating %d %s problem(s) with %s", count, in.Type, provider.ModelID())))
		res, err := batch.Run(cmd.Context(), problemgen.BatchRequest{Input: in, Count: count})
		if res != nil {
			printBatch(res)
		}
		if err != nil {
			if errors.Is(err, problemgen.ErrBatchFailed) {
				return fmt.Errorf("all %d item(s) failed", count)
			}
			return err
		}
		return nil
	},
}

func generateInput(cmd *cobra.Command) (problemgen.GenerateInput, int, error) {
	var in problemgen.GenerateInput
	flags := cmd.Flags()

	typ, _ := flags.GetString("type")
	t, err := exercise.ParseType(strings.ToUpper(typ))
	if err != nil {
		return in, 0, err
	}
	in.Type = t

	if d, _ := flags.GetString("difficulty"); d != "" {
		if in.Difficulty, err = exercise.ParseDifficulty(strings.ToUpper(d)); err != nil {
			return in, 0, err
		}
	}
	if f, _ := flags.GetString("format"); f != "" {
		if in.Format, err = exercise.ParseFormat(strings.ToUpper(f)); err != nil {
			return in, 0, err
		}
	}
	if l, _ := flags.GetString("lang"); l != "" {
		in.Language = exercise.Language(l)
		if !in.Language.Valid() {
			return in, 0, fmt.Errorf("unknown language %q (want ko or en)", l)
		}
	}
	in.Grade, _ = flags.GetInt("grade")
	in.Subject, _ = flags.GetString("subject")

	count, _ := flags.GetInt("count")
	return in, count, nil
}

func printBatch(res *problemgen.BatchResult) {
	fmt.Println(theme.Rule(72))
	for _, p := range res.Created {
		fmt.Println(theme.Row(
			theme.Cell(theme.OK, "✓", 1),
			theme.Cell(theme.Dim, p.ID.String(), 36),
			theme.Cell(theme.Header, string(p.Difficulty), 6),
			theme.Cell(theme.Plain, p.Title, 40),
		))
	}
	for _, e := range res.Errors {
		fmt.Println(theme.Row(
			theme.Cell(theme.Fail, "✗", 1),
			theme.Cell(theme.Dim, fmt.Sprintf("item %d", e.Index+1), 8),
			e.Message,
		))
	}
	fmt.Println(theme.Rule(72))
	fmt.Printf("%s created, %s failed. New problems await review (thinkwise review list --pending).\n",
		theme.OK.Render(fmt.Sprint(len(res.Created))),
		theme.Fail.Render(fmt.Sprint(len(res.Errors))),
	)
}

func init() {
	f := generateCmd.Flags()
	f.StringP("type", "t", string(exercise.TypeVerification), "Problem type: AI_VERIFICATION or PROBLEM_DECOMPOSITION")
	f.IntP("count", "n", 1, "Number of problems to generate")
	f.StringP("difficulty", "d", "", "EASY, MEDIUM or HARD (random per item when empty)")
	f.IntP("grade", "g", 3, "Target grade (1-6)")
	f.StringP("subject", "s", "", "Subject (random per item when empty)")
	f.StringP("format", "f", "", "SHORT_ANSWER, MULTIPLE_CHOICE or TRUE_FALSE")
	f.String("lang", "", "Language of the generated text: ko or en")
}
