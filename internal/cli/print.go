package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
)

type theme struct {
	Title   lipgloss.Style
	Faint   lipgloss.Style
	Correct lipgloss.Style
	Wrong   lipgloss.Style
	Failed  lipgloss.Style
	Answer  lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Faint:   lipgloss.NewStyle().Faint(true),
		Correct: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Wrong:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Answer:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
	}
}

func printRun(w io.Writer, run domain.RunResult, runID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"run_id": runID,
			"run":    run,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyRun(w, run, runID)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyRun(w io.Writer, run domain.RunResult, runID string) {
	th := defaultTheme()

	total := run.EndedAt.Sub(run.StartedAt)
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintln(w, th.Title.Render(run.Label))
	fmt.Fprintf(w, "Started:  %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n", total)
	if runID != "" {
		fmt.Fprintf(w, "Run ID:   %s\n", runID)
	}
	fmt.Fprintln(w)

	for _, r := range run.Results {
		fmt.Fprintf(w, "%s %s  %s\n", verdictBadge(th, r.Verdict), r.Key(), th.Faint.Render(r.Title))

		if r.Error != nil {
			fmt.Fprintf(w, "  error: %s (%s)\n", r.Error.Message, r.Error.Kind)
			fmt.Fprintln(w)
			continue
		}

		if r.Answer != nil {
			fmt.Fprintf(w, "  answer: %s", th.Answer.Render(fmt.Sprint(*r.Answer)))
			if r.Verdict == domain.VerdictWrong && r.Want != nil {
				fmt.Fprintf(w, " (want %d)", *r.Want)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "  %s\n", th.Faint.Render(fmt.Sprintf("%d records, %s, %s",
			r.Records, time.Duration(r.DurationUS)*time.Microsecond, r.InputPath)))
		fmt.Fprintln(w)
	}

	c := tally(run)
	fmt.Fprintf(w, "%d correct, %d wrong, %d failed, %d unchecked\n",
		c[domain.VerdictCorrect], c[domain.VerdictWrong], c[domain.VerdictFailed], c[domain.VerdictUnchecked])
}

func verdictBadge(th theme, v domain.Verdict) string {
	switch v {
	case domain.VerdictCorrect:
		return th.Correct.Render("[OK]")
	case domain.VerdictWrong:
		return th.Wrong.Render("[WRONG]")
	case domain.VerdictFailed:
		return th.Failed.Render("[FAIL]")
	default:
		return th.Faint.Render("[--]")
	}
}

func tally(run domain.RunResult) map[domain.Verdict]int {
	out := map[domain.Verdict]int{}
	for _, r := range run.Results {
		out[r.Verdict]++
	}
	return out
}

func countFailures(run domain.RunResult) int {
	return run.Failures()
}

// runOutcome turns a finished run into the command's exit error.
func runOutcome(run domain.RunResult) error {
	if fails := countFailures(run); fails > 0 {
		return fmt.Errorf("run failed (%d failed or wrong puzzle(s))", fails)
	}
	return nil
}
