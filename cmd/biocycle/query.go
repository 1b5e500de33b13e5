package main

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/cycle"
	"github.com/katalvlaran/biocycle/internal/config"
	"github.com/katalvlaran/biocycle/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rangeFlags selects a date window: --from/--to, or the calendar month of
// --month, or the current month.
type rangeFlags struct {
	from, to, month string
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.from, "from", "", "First day YYYY-MM-DD (requires --to)")
	cmd.Flags().StringVar(&r.to, "to", "", "Last day YYYY-MM-DD (requires --from)")
	cmd.Flags().StringVar(&r.month, "month", "", "Any day of the month to show (default: this month)")
	cmd.MarkFlagsRequiredTogether("from", "to")
	cmd.MarkFlagsMutuallyExclusive("from", "month")
	cmd.MarkFlagsMutuallyExclusive("to", "month")
}

func (r *rangeFlags) resolve() (from, to time.Time, err error) {
	if r.from != "" {
		if from, err = parseDay("from", r.from); err != nil {
			return
		}
		to, err = parseDay("to", r.to)

		return
	}
	day, err := parseDay("month", r.month)
	if err != nil {
		return
	}
	from, to = calendar.MonthRange(day)

	return
}

// cycleFlag is a --cycle value parsed with cycle.Parse.
func cycleFlag(value string) (cycle.Cycle, error) {
	c, err := cycle.Parse(value)
	if err != nil {
		return 0, fmt.Errorf("--cycle: %w", err)
	}

	return c, nil
}

func newTodayCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print the three cycle readings for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			day, err := parseDay("date", date)
			if err != nil {
				return err
			}
			readings, err := s.Today(day)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), calendar.Format(day))

			return session.WriteReadings(cmd.OutOrStdout(), readings)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day YYYY-MM-DD (default: today)")

	return cmd
}

func newSeriesCmd(a *app) *cobra.Command {
	var (
		label string
		rng   rangeFlags
	)
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Print one value per day for a cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cycleFlag(label)
			if err != nil {
				return err
			}
			from, to, err := rng.resolve()
			if err != nil {
				return err
			}
			s, err := a.newSession()
			if err != nil {
				return err
			}
			series, err := s.Series(c, from, to)
			if err != nil {
				return err
			}

			return session.WriteSeries(cmd.OutOrStdout(), series)
		},
	}
	cmd.Flags().StringVar(&label, "cycle", "", "physical, emotional or intellectual")
	_ = cmd.MarkFlagRequired("cycle")
	rng.register(cmd)

	return cmd
}

func newCriticalCmd(a *app) *cobra.Command {
	var (
		label   string
		epsilon float64
		rng     rangeFlags
	)
	cmd := &cobra.Command{
		Use:   "critical",
		Short: "Print the critical days of a cycle",
		Long: `Print the days on which a cycle changes sign or comes within
--epsilon of zero. The first day of the window is never reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cycleFlag(label)
			if err != nil {
				return err
			}
			from, to, err := rng.resolve()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("epsilon") {
				if epsilon < 0 || math.IsNaN(epsilon) {
					return fmt.Errorf("--epsilon %v: %w", epsilon, config.ErrInvalid)
				}
				a.cfg.Detection.Epsilon = epsilon
			}
			s, err := a.newSession()
			if err != nil {
				return err
			}
			days, err := s.CriticalDays(c, from, to)
			if err != nil {
				return err
			}
			a.logger.Debug("critical days", zap.Stringer("cycle", c), zap.Int("count", len(days)))

			return session.WriteDates(cmd.OutOrStdout(), days)
		},
	}
	cmd.Flags().StringVar(&label, "cycle", "", "physical, emotional or intellectual")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 0, "Near-zero tolerance (default: detection.epsilon)")
	_ = cmd.MarkFlagRequired("cycle")
	rng.register(cmd)

	return cmd
}

func newFavorableCmd(a *app) *cobra.Command {
	var (
		label     string
		threshold float64
		rng       rangeFlags
	)
	cmd := &cobra.Command{
		Use:   "favorable",
		Short: "Print the periods where a cycle stays at or above a threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cycleFlag(label)
			if err != nil {
				return err
			}
			from, to, err := rng.resolve()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = a.cfg.Detection.DefaultThreshold
			}
			s, err := a.newSession()
			if err != nil {
				return err
			}
			periods, err := s.FavorablePeriods(c, threshold, from, to)
			if err != nil {
				return err
			}

			return session.WritePeriods(cmd.OutOrStdout(), periods)
		},
	}
	cmd.Flags().StringVar(&label, "cycle", "", "physical, emotional or intellectual")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Minimum value (default: detection.default_threshold)")
	_ = cmd.MarkFlagRequired("cycle")
	rng.register(cmd)

	return cmd
}

func newActivitiesCmd(a *app) *cobra.Command {
	var rng rangeFlags
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "Match configured activities to favorable periods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := rng.resolve()
			if err != nil {
				return err
			}
			s, err := a.newSession()
			if err != nil {
				return err
			}
			joined, err := s.ActivityPeriods(from, to)
			if err != nil {
				return err
			}

			return session.WriteActivityPeriods(cmd.OutOrStdout(), joined)
		},
	}
	rng.register(cmd)

	return cmd
}
