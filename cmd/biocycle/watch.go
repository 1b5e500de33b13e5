package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/session"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}

func newWatchCmd(a *app) *cobra.Command {
	var (
		schedule string
		runNow   bool
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print today's readings on a cron schedule until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("schedule") {
				schedule = a.cfg.Watch.Schedule
			}
			s, err := a.newSession()
			if err != nil {
				return err
			}
			// fail before scheduling anything
			if _, err := s.Today(today()); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watch(ctx, s, schedule, runNow, cmd.OutOrStdout(), a.logger)
		},
	}
	cmd.Flags().StringVar(&schedule, "schedule", "", "Cron spec (default: watch.schedule)")
	cmd.Flags().BoolVar(&runNow, "now", false, "Also print once immediately")

	return cmd
}

// watch prints the readings for today on every tick of schedule until ctx is
// done, then waits for a running tick to finish.
func watch(ctx context.Context, s *session.Session, schedule string, runNow bool, out io.Writer, logger *zap.Logger) error {
	c := cron.New(cron.WithLogger(cronLogger{l: logger.Sugar()}))

	tick := func() {
		day := today()
		readings, err := s.Today(day)
		if err != nil {
			logger.Error("watch tick failed", zap.Error(err))
			return
		}
		fmt.Fprintln(out, calendar.Format(day))
		if err := session.WriteReadings(out, readings); err != nil {
			logger.Error("watch write failed", zap.Error(err))
		}
	}

	id, err := c.AddFunc(schedule, tick)
	if err != nil {
		return fmt.Errorf("schedule %q: %w", schedule, err)
	}
	logger.Info("watching", zap.String("schedule", schedule), zap.Int("entry", int(id)))

	if runNow {
		tick()
	}
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	logger.Info("watch stopped")

	return nil
}
