package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cardswap/matchmaker/internal/domain/matchmaking"
	"github.com/shopspring/decimal"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func money(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.StringFixed(2)
}

func cardLabel(c matchmaking.CardMeta, v matchmaking.Variant) string {
	return fmt.Sprintf("#%03d %s (%s)", c.CardNumber, c.PlayerName, v.Name)
}

func printForward(w io.Writer, matches []matchmaking.ForwardMatch) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCARD\tRARITY\tOWNER\tSTATUS\tPRICE\tSCORE\tDEMAND/SUPPLY\tAFFORDABLE\tADDED")
	for _, m := range matches {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d/%d (%s)\t%t\t%s\n",
			m.UserCardID,
			cardLabel(m.Card, m.Variant),
			m.RarityText,
			m.OwnerUsername,
			m.Status,
			money(m.Price),
			matchmaking.ScoreTier(m.MatchScore),
			m.Demand, m.Supply, matchmaking.MarketTrend(m.Demand, m.Supply),
			m.IsAffordable,
			matchmaking.DaysAgo(m.DaysSinceAdded),
		)
	}
	return tw.Flush()
}

func printSummary(w io.Writer, s matchmaking.MatchSummary) {
	fmt.Fprintf(w, "\n%d matches: %d trade, %d for sale, %d affordable, %d high priority, %d rare\n",
		s.Total, s.TradeOnly, s.ForSale, s.Affordable, s.HighPriority, s.RareCards)
}

func printReverse(w io.Writer, matches []matchmaking.ReverseMatch) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "MY CARD\tCARD\tSTATUS\tPRICE\tUSER\tPRIORITY\tMAX PRICE\tDEMAND\tSCORE")
	for _, m := range matches {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			m.MyCardID,
			cardLabel(m.Card, m.Variant),
			m.Status,
			money(m.Price),
			m.InterestedUsername,
			matchmaking.PriorityText(m.TheirPriority),
			money(m.TheirMaxPrice),
			m.TotalDemand,
			m.InterestScore,
		)
	}
	return tw.Flush()
}

func printGroups(w io.Writer, groups []matchmaking.CardInterest) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "MY CARD\tCARD\tSTATUS\tPRICE\tINTERESTED\tAVG SCORE\tTOP USER")
	for _, g := range groups {
		top := ""
		if len(g.Interested) > 0 {
			top = g.Interested[0].InterestedUsername
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%.1f\t%s\n",
			g.MyCardID, cardLabel(g.Card, g.Variant), g.Status, money(g.Price), len(g.Interested), g.AverageScore, top)
	}
	return tw.Flush()
}

func printInsights(w io.Writer, in *matchmaking.MarketInsights) error {
	fmt.Fprintln(w, "Most wanted cards you own")
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCARD\tRARITY\tDEMAND\tSTATUS")
	for _, r := range in.MostWanted {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			r.UserCardID, cardLabel(r.Card, r.Variant), matchmaking.RarityText(r.Variant.Rarity), r.Demand, r.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nRarest cards you own")
	tw = newTable(w)
	fmt.Fprintln(tw, "ID\tCARD\tRARITY\tCOPIES")
	for _, r := range in.Rarest {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n",
			r.UserCardID, cardLabel(r.Card, r.Variant), matchmaking.RarityText(r.Variant.Rarity), r.TotalCopies)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nYour prices against the market")
	tw = newTable(w)
	fmt.Fprintln(tw, "ID\tCARD\tYOUR PRICE\tAVG\tMIN\tMAX\tSAMPLES\tRECOMMENDATION")
	for _, r := range in.PriceComparisons {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%s (%s)\n",
			r.UserCardID, cardLabel(r.Card, r.Variant), money(r.OwnPrice),
			r.Market.Avg.StringFixed(2), r.Market.Min.StringFixed(2), r.Market.Max.StringFixed(2),
			r.Market.Samples, r.Recommendation.Message, r.Recommendation.Severity)
	}
	return tw.Flush()
}

func printPopular(w io.Writer, cards []matchmaking.PopularCard) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "CARD\tRARITY\tDEMAND\tSUPPLY\tTREND")
	for _, c := range cards {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			cardLabel(c.Card, c.Variant), matchmaking.RarityText(c.Variant.Rarity), c.Demand, c.Supply,
			matchmaking.MarketTrend(c.Demand, c.Supply))
	}
	return tw.Flush()
}
