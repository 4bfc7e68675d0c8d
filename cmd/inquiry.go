package cmd

import (
	"context"
	"fmt"

	"github.com/cardswap/matchmaker/cardswap"
	"github.com/cardswap/matchmaker/internal/domain/matchmaking"
	"github.com/spf13/cobra"
)

var inquiryOpts struct {
	user string
	card int64
	kind string
}

var inquiryCmd = &cobra.Command{
	Use:   "inquiry",
	Short: "Draft a message to the owner of one of your matches",
	RunE:  withApp("inquiry", runInquiry),
}

func init() {
	f := inquiryCmd.Flags()
	f.StringVarP(&inquiryOpts.user, "user", "u", "", "user id or username")
	f.Int64Var(&inquiryOpts.card, "card", 0, "listed user card id from the matches output")
	f.StringVar(&inquiryOpts.kind, "kind", string(matchmaking.InquiryGeneral), "general, buy or trade")
	_ = inquiryCmd.MarkFlagRequired("card")
	rootCmd.AddCommand(inquiryCmd)
}

func runInquiry(ctx context.Context, app *cardswap.App, cmd *cobra.Command, _ []string) error {
	userID, username, err := resolveUser(ctx, app, inquiryOpts.user)
	if err != nil {
		return err
	}

	matches, err := app.Matchmaking.FindMatches(ctx, userID, 0)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if m.UserCardID != inquiryOpts.card {
			continue
		}
		draft := matchmaking.DraftInquiry(matchmaking.InquiryKind(inquiryOpts.kind), username, m)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "To: %s (#%d)\nSubject: %s\n\n%s\n", m.OwnerUsername, draft.ReceiverID, draft.Subject, draft.Content)
		return nil
	}
	return fmt.Errorf("card %d is not among your current matches", inquiryOpts.card)
}
