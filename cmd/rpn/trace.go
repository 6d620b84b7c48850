package main

import (
	"os"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/rpn/model"
)

var traceCmd = &cobra.Command{
	Use:   "trace EXPR...",
	Short: "Evaluate lines showing the stack after every token",
	Args:  cobra.MinimumNArgs(1),
	Run:   traceCommand,
}

func traceCommand(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	s, err := cfg.BuildSession()
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't start session")
	}
	rep := &model.ColorReporter{Writer: os.Stdout}
	failed := false
	for _, line := range args {
		rep.Printf("%s\n", color.Cyan.Sprint(line))
		if err := model.Trace(s, line, rep, os.Stdout, os.Stderr, cfg.Precision); err != nil {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
