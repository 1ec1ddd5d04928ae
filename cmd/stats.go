package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		now := time.Now()

		states, err := st.ProgressRepo().All(ctx)
		if err != nil {
			return err
		}
		var due, graduated int
		for _, state := range states {
			if !state.NextReview.After(now) {
				due++
			}
			if state.Graduated() {
				graduated++
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "cards studied:   %d\n", len(states))
		fmt.Fprintf(out, "graduated:       %d\n", graduated)
		fmt.Fprintf(out, "due now:         %d\n", due)

		for _, window := range []struct {
			name string
			dur  time.Duration
		}{
			{"today", 24 * time.Hour},
			{"this week", 7 * 24 * time.Hour},
		} {
			total, correct, err := st.ReviewLogRepo().CountSince(ctx, now.Add(-window.dur))
			if err != nil {
				return err
			}
			if total == 0 {
				fmt.Fprintf(out, "%-15s no reviews\n", window.name+":")
				continue
			}
			fmt.Fprintf(out, "%-15s %d reviews, %.0f%% correct\n",
				window.name+":", total, 100*float64(correct)/float64(total))
		}
		return nil
	},
}
