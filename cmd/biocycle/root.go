package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/biocycle/activity"
	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/internal/config"
	"github.com/katalvlaran/biocycle/internal/logging"
	"github.com/katalvlaran/biocycle/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// now is the wall clock; tests replace it.
var now = time.Now

// app carries global flags and what PersistentPreRunE derives from them.
type app struct {
	configPath string
	birth      string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "biocycle",
		Short: "Biorhythm cycles, critical days and favorable periods",
		Long: `biocycle evaluates the physical (23 days), emotional (28 days) and
intellectual (33 days) biorhythm cycles from a birth date.

It prints daily values, critical days where a cycle crosses or nears zero,
and favorable periods where a cycle stays above a threshold. Activities
declared in the config file are matched to the periods of their cycle.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "Path to the YAML config file")
	root.PersistentFlags().StringVar(&a.birth, "birth", "", "Birth date YYYY-MM-DD (overrides config and "+config.EnvBirthDate+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newVersionCmd(),
		newTodayCmd(a),
		newSeriesCmd(a),
		newCriticalCmd(a),
		newFavorableCmd(a),
		newActivitiesCmd(a),
		newSessionCmd(a),
		newCompatCmd(a),
		newWatchCmd(a),
	)

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.birth != "" {
		cfg.BirthDate = a.birth
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("config loaded",
		zap.String("path", a.configPath),
		zap.String("command", cmd.Name()),
		zap.Int("activities", len(cfg.Activities)))

	return nil
}

// newSession builds a session seeded from the config: birth date, epsilon
// and activities.
func (a *app) newSession() (*session.Session, error) {
	reg := activity.NewRegistry(activity.WithLogger(a.logger))
	if err := a.cfg.Seed(reg); err != nil {
		return nil, err
	}

	s := session.New(
		session.WithLogger(a.logger),
		session.WithEpsilon(a.cfg.Detection.Epsilon),
		session.WithDefaultThreshold(a.cfg.Detection.DefaultThreshold),
		session.WithRegistry(reg),
	)

	birth, ok, err := a.cfg.Birth()
	if err != nil {
		return nil, err
	}
	if ok {
		s.SetBirthDate(birth)
	}

	return s, nil
}

// today returns the local calendar day.
func today() time.Time {
	return calendar.Normalize(now())
}

// parseDay parses a date flag, defaulting to today when empty.
func parseDay(name, value string) (time.Time, error) {
	if value == "" {
		return today(), nil
	}
	d, err := calendar.Parse(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}

	return d, nil
}
