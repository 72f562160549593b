package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"monument-catalog/core/reconcile"
	"monument-catalog/core/utils"
	"monument-catalog/feature/monument"
	"monument-catalog/feature/monument/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var yesConfirm bool

// suggestionCmd groups moderation commands.
var suggestionCmd = &cobra.Command{
	Use:   "suggestion",
	Short: "Moderate user suggestions",
	Long: `Approve or reject a pending suggestion. Moderation only changes the
suggestion status; the monument itself is not modified.`,
}

var approveCmd = &cobra.Command{
	Use:   "approve <suggestionID>",
	Short: "Approve a pending suggestion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModeration(cmd, args[0], "approve", (*monument.Service).Approve)
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject <suggestionID>",
	Short: "Reject a pending suggestion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModeration(cmd, args[0], "reject", (*monument.Service).Reject)
	},
}

func init() {
	suggestionCmd.PersistentFlags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm (non-interactive)")
	suggestionCmd.AddCommand(approveCmd, rejectCmd)
	RootCmd.AddCommand(suggestionCmd)
}

type moderation func(s *monument.Service, ctx context.Context, id uint) (*models.Suggestion, error)

func runModeration(cmd *cobra.Command, rawID, verb string, action moderation) error {
	id, err := utils.ParseID(rawID)
	if err != nil {
		return err
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

	// Show what is being moderated before asking
	showAll := true
	sr, err := svc.DiffSuggestion(cmd.Context(), id, reconcile.Toggle{ShowAllChanged: &showAll})
	if err != nil {
		return err
	}
	if err := renderReview(cmd.OutOrStdout(), sr.Review); err != nil {
		return err
	}

	prompt := fmt.Sprintf("Type 'yes' to %s suggestion %d: ", verb, id)
	if !confirmAction(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
		rt.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	s, err := action(svc, cmd.Context(), id)
	if err != nil {
		return err
	}
	rt.logger.Info("Suggestion moderated", zap.Uint("suggestion_id", s.ID), zap.String("status", s.Status))
	return nil
}

// confirmAction prompts for confirmation unless --yes was given.
func confirmAction(in io.Reader, out io.Writer, prompt string) bool {
	if yesConfirm {
		fmt.Fprintln(out, "\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(out, "\n"+prompt)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
