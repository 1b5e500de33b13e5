package main

import (
	"fmt"

	"github.com/katalvlaran/biocycle/calendar"
	"github.com/spf13/cobra"
)

func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Read session commands from stdin",
		Long: `Start a line-oriented session. Commands are read from stdin until EOF
or "quit"; type "help" for the list. Activities from the config file are
registered up front and the configured birth date, if any, is applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			if birth, ok := s.BirthDate(); ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "birth date %s, %d activities\n",
					calendar.Format(birth), s.Registry().Len())
			}

			return s.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
