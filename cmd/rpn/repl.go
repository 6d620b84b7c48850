package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func replCommand(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	repl, err := cfg.BuildREPL(interactive)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't start session")
	}
	log.Info().Str("session", repl.Session.ID.String()).Bool("interactive", interactive).Msg("Starting REPL")
	if err := repl.Run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("Error reading input")
	}
}
