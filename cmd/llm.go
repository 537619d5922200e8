package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/thinkwise-edu/thinkwise/internal/llm"
	"github.com/thinkwise-edu/thinkwise/internal/store"
	"github.com/thinkwise-edu/thinkwise/internal/ui/theme"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM request audit log",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		// The purpose filter runs client-side, so scan everything when set.
		opts := store.QueryOpts{Limit: limit}
		if purpose != "" {
			opts.Limit = 0
		}
		events, err := a.store.EventRepo().QueryLLMEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if purpose != "" {
			events = filterPurpose(events, purpose, limit)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}

		fmt.Println(theme.Row(
			theme.Cell(theme.Header, "ID", 5),
			theme.Cell(theme.Header, "Time", 19),
			theme.Cell(theme.Header, "Purpose", 11),
			theme.Cell(theme.Header, "Model", 28),
			theme.Cell(theme.Header, "In", 6),
			theme.Cell(theme.Header, "Out", 6),
			theme.Cell(theme.Header, "Ms", 6),
			theme.Cell(theme.Header, "OK", 2),
		))
		fmt.Println(theme.Rule(100))
		for _, e := range events {
			ok := theme.Cell(theme.OK, "✓", 2)
			if !e.Success {
				ok = theme.Cell(theme.Fail, "✗", 2)
			}
			fmt.Println(theme.Row(
				theme.Cell(theme.Dim, strconv.Itoa(e.ID), 5),
				theme.Cell(theme.Plain, e.Timestamp.Local().Format("2006-01-02 15:04:05"), 19),
				theme.Cell(theme.Plain, e.Purpose, 11),
				theme.Cell(theme.Plain, e.Model, 28),
				theme.Cell(theme.Plain, strconv.Itoa(e.InputTokens), 6),
				theme.Cell(theme.Plain, strconv.Itoa(e.OutputTokens), 6),
				theme.Cell(theme.Plain, strconv.FormatInt(e.LatencyMs, 10), 6),
				ok,
			))
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and reply of one LLM request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		e, err := a.store.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("LLM request %d not found", id)
		}

		status := theme.OK.Render("ok")
		if !e.Success {
			status = theme.Fail.Render("failed")
		}
		card := strings.Join([]string{
			field("ID", strconv.Itoa(e.ID)),
			field("Time", e.Timestamp.Local().Format("2006-01-02 15:04:05")),
			field("Provider", e.Provider),
			field("Model", e.Model),
			field("Purpose", e.Purpose),
			field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)),
			field("Latency", fmt.Sprintf("%dms", e.LatencyMs)),
			field("Status", status),
		}, "\n")
		if e.ErrorMessage != "" {
			card += "\n" + field("Error", theme.Fail.Render(e.ErrorMessage))
		}
		fmt.Println(theme.Card.Render(card))

		section("PROMPT", e.RequestBody)
		section("REPLY", e.ResponseBody)
		return nil
	},
}

func field(label, value string) string {
	return theme.Cell(theme.Header, label, 9) + " " + value
}

func section(title, body string) {
	fmt.Println()
	fmt.Println(theme.Title.Render(title))
	fmt.Println(theme.Rule(60))
	if body == "" {
		body = theme.Dim.Render("(not captured)")
	}
	fmt.Println(body)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show LLM calls, tokens and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		byPurpose, err := a.store.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Println(theme.Title.Render("Usage by purpose"))
		fmt.Println(usageRow(theme.Header, "Purpose", "Calls", "Input", "Output", "Avg ms"))
		fmt.Println(theme.Rule(64))
		var calls, in, out int
		for _, u := range byPurpose {
			fmt.Println(usageRow(theme.Plain, u.Purpose,
				strconv.Itoa(u.Calls), strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens),
				strconv.FormatInt(u.AvgLatencyMs, 10)))
			calls += u.Calls
			in += u.InputTokens
			out += u.OutputTokens
		}
		fmt.Println(theme.Rule(64))
		fmt.Println(usageRow(theme.Header, "total", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(out), ""))

		byModel, err := a.store.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println(theme.Title.Render("Estimated cost (USD)"))
		fmt.Println(usageRow(theme.Header, "Model", "Calls", "Input", "Output", "Cost"))
		fmt.Println(theme.Rule(64))
		var total float64
		var unpriced []string
		for _, u := range byModel {
			cost := "?"
			if price := llm.LookupCost(u.Model); price != nil {
				c := price.Cost(u.InputTokens, u.OutputTokens)
				total += c
				cost = formatCost(c)
			} else {
				unpriced = append(unpriced, u.Model)
			}
			fmt.Println(usageRow(theme.Plain, u.Model,
				strconv.Itoa(u.Calls), strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens), cost))
		}
		fmt.Println(theme.Rule(64))
		label := "total"
		if len(unpriced) > 0 {
			label = "total (partial)"
		}
		fmt.Println(usageRow(theme.Header, label, "", "", "", formatCost(total)))
		if len(unpriced) > 0 {
			fmt.Println(theme.Dim.Render("No pricing for: " + strings.Join(unpriced, ", ")))
		}
		return nil
	},
}

func usageRow(style lipgloss.Style, name string, cols ...string) string {
	cells := []string{theme.Cell(style, name, 28)}
	for _, c := range cols {
		cells = append(cells, theme.Cell(style, fmt.Sprintf("%8s", c), 8))
	}
	return theme.Row(cells...)
}

// filterPurpose keeps events with the given purpose, at most limit of them
// when limit is positive.
func filterPurpose(events []store.LLMRequestEvent, purpose string, limit int) []store.LLMRequestEvent {
	var out []store.LLMRequestEvent
	for _, e := range events {
		if e.Purpose != purpose {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose: problem-gen or grading")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
