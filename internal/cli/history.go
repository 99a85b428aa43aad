package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/claimlens/claimlens/internal/report"
	"github.com/claimlens/claimlens/internal/store"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past fact-check runs",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the full report of a past run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum runs to list")
}

func openHistory() (*store.Store, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	return store.Open(filepath.Join(dir, "history.db"))
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	s, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	runs, err := s.ListRuns(historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	fmt.Printf("%-5s %-30s %-17s %6s %9s %11s %6s %8s\n",
		"ID", "DOCUMENT", "CHECKED", "CLAIMS", "VERIFIED", "INACCURATE", "FALSE", "PENDING")
	for _, r := range runs {
		doc := r.Document
		if len(doc) > 30 {
			doc = doc[:27] + "..."
		}
		fmt.Printf("%-5d %-30s %-17s %6d %9d %11d %6d %8d\n",
			r.ID, doc, r.CheckedAt.Format("2006-01-02 15:04"),
			r.Total, r.Verified, r.Inaccurate, r.False, r.Pending)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	s, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	rep, err := s.LoadRun(id)
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(false)
	renderer.RenderSummary(rep, os.Stdout)

	for i, res := range rep.Results {
		fmt.Printf("%d. [%s] %s\n", i+1, res.Status, res.Claim.Text)
		fmt.Printf("   %s (confidence %.2f)\n", res.Explanation, res.Confidence)
		if res.CorrectInfo != "" {
			fmt.Printf("   Correct: %s\n", res.CorrectInfo)
		}
		for _, src := range res.Sources {
			fmt.Printf("   - %s (%s)\n", src.Title, src.URL)
		}
		fmt.Println()
	}

	return nil
}
