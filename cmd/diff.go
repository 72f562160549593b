package cmd

import (
	"fmt"
	"io"
	"os"

	"monument-catalog/core/reconcile"
	"monument-catalog/core/utils"
	"monument-catalog/feature/monument"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	diffShowAll       bool
	diffShowUnchanged bool
	diffFile          string
)

// diffCmd prints the review of a suggestion or a proposed update file.
var diffCmd = &cobra.Command{
	Use:   "diff <monumentID> [suggestionID]",
	Short: "Show what a suggestion or proposed update would change",
	Long: `Compares a proposed update with the stored monument and prints the
changed attributes first, followed by the unchanged ones when requested.

Examples:
  # Review a stored suggestion
  diff 17 42

  # Review a proposed update document
  diff 17 --file update.json --all`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffShowAll, "all", false, "Show every changed attribute")
	diffCmd.Flags().BoolVar(&diffShowUnchanged, "unchanged", false, "Show unchanged attributes")
	diffCmd.Flags().StringVarP(&diffFile, "file", "f", "", "Proposed update JSON file")
	RootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	monumentID, err := utils.ParseID(args[0])
	if err != nil {
		return err
	}
	if (len(args) == 2) == (diffFile != "") {
		return fmt.Errorf("pass either a suggestion id or --file")
	}

	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	db, err := rt.openDatabase()
	if err != nil {
		return err
	}
	svc := monument.NewService(db, rt.cfg.Review, rt.logger)

	toggle := reconcile.Toggle{}
	if cmd.Flags().Changed("all") {
		toggle.ShowAllChanged = &diffShowAll
	}
	if cmd.Flags().Changed("unchanged") {
		toggle.ShowUnchanged = &diffShowUnchanged
	}

	var review *reconcile.Review
	if diffFile != "" {
		data, err := os.ReadFile(diffFile)
		if err != nil {
			return fmt.Errorf("failed to read proposed update: %w", err)
		}
		req, err := monument.DecodeUpdate(data)
		if err != nil {
			return err
		}
		review, err = svc.DiffMonument(cmd.Context(), monumentID, req.Update(), reconcile.UpdateMode, toggle)
		if err != nil {
			return err
		}
	} else {
		suggestionID, err := utils.ParseID(args[1])
		if err != nil {
			return err
		}
		sr, err := svc.DiffSuggestion(cmd.Context(), suggestionID, toggle)
		if err != nil {
			return err
		}
		if sr.MonumentID != utils.ToString(monumentID) {
			return fmt.Errorf("suggestion %d belongs to monument %s, not %d", suggestionID, sr.MonumentID, monumentID)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Suggestion %d (%s)\n", sr.SuggestionID, sr.Status)
		review = sr.Review
	}

	return renderReview(cmd.OutOrStdout(), review)
}

// renderReview prints the visible part of a review as tables.
func renderReview(w io.Writer, review *reconcile.Review) error {
	title := color.New(color.Bold).SprintFunc()
	removed := color.New(color.FgRed).SprintFunc()
	added := color.New(color.FgGreen).SprintFunc()
	faint := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", title("Monument"), review.MonumentID)

	if !review.HasChanges() {
		fmt.Fprintln(w, "No changes.")
	} else {
		fmt.Fprintln(w, title("Changed"))
		rows := make([][]string, 0, len(review.View.Visible))
		for _, d := range review.View.Visible {
			rows = append(rows, []string{d.Label, removed(d.OldDisplay), added(d.NewDisplay)})
		}
		if err := writeTable(w, rows); err != nil {
			return err
		}
		if n := len(review.View.Hidden); n > 0 {
			fmt.Fprintf(w, "%s\n", faint(fmt.Sprintf("%d more changed attributes (use --all)", n)))
		}
	}

	if review.View.ShowUnchanged {
		fmt.Fprintln(w, title("Unchanged"))
		rows := make([][]string, 0, len(review.View.Unchanged))
		for _, d := range review.View.Unchanged {
			rows = append(rows, []string{d.Label, faint(d.OldDisplay), faint(d.NewDisplay)})
		}
		if err := writeTable(w, rows); err != nil {
			return err
		}
	} else if review.View.UnchangedAvailable {
		fmt.Fprintf(w, "%s\n", faint(fmt.Sprintf("%d unchanged attributes (use --unchanged)", review.Summary.Unchanged)))
	}
	return nil
}

func writeTable(w io.Writer, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header("Attribute", "Current", "Proposed")
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
