package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/compat"
	"github.com/katalvlaran/biocycle/internal/config"
	"github.com/katalvlaran/biocycle/sampler"
	"github.com/katalvlaran/biocycle/session"
	"github.com/spf13/cobra"
)

// maxAlignDays bounds the --cycle window; Align keeps an n×n cost matrix.
const maxAlignDays = 3 * 366

func newCompatCmd(a *app) *cobra.Command {
	var (
		with   string
		label  string
		window int
		rng    rangeFlags
	)
	cmd := &cobra.Command{
		Use:   "compat",
		Short: "Compare the birth date with another person's",
		Long: `Print per-cycle compatibility scores between the configured birth date
and --with. With --cycle, also warp both series over the date window and
report how many days the other person runs behind (negative: ahead).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			other, err := parseDay("with", with)
			if err != nil {
				return err
			}
			s, err := a.newSession()
			if err != nil {
				return err
			}
			birth, ok := s.BirthDate()
			if !ok {
				return session.ErrNoBirthDate
			}
			out := cmd.OutOrStdout()
			if err := writeScores(out, compat.Scores(birth, other)); err != nil {
				return err
			}
			if label == "" {
				return nil
			}

			c, err := cycleFlag(label)
			if err != nil {
				return err
			}
			from, to, err := rng.resolve()
			if err != nil {
				return err
			}
			if n := calendar.DaysBetween(from, to) + 1; n > maxAlignDays {
				return fmt.Errorf("window of %d days exceeds %d: %w", n, maxAlignDays, config.ErrInvalid)
			}
			var opts []compat.Option
			if cmd.Flags().Changed("window") {
				if window < 0 {
					return fmt.Errorf("--window %d: %w", window, config.ErrInvalid)
				}
				opts = append(opts, compat.WithWindow(window))
			}
			mine, err := s.Series(c, from, to)
			if err != nil {
				return err
			}
			theirs, err := sampler.Sample(other, c, from, to)
			if err != nil {
				return err
			}
			al, err := compat.Align(mine, theirs, opts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%s lag: %d days (distance %.4f)\n", c, al.Lag, al.Distance)

			return err
		},
	}
	cmd.Flags().StringVar(&with, "with", "", "Other birth date YYYY-MM-DD")
	cmd.Flags().StringVar(&label, "cycle", "", "Also align this cycle over the window")
	cmd.Flags().IntVar(&window, "window", 0, "Maximum lag in days considered (default: unbounded)")
	_ = cmd.MarkFlagRequired("with")
	rng.register(cmd)

	return cmd
}

func writeScores(w io.Writer, scores []compat.Score) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CYCLE\tSHIFT\tSCORE")
	for _, s := range scores {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", s.Cycle, s.Shift, s.Percent)
	}

	return tw.Flush()
}
