package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/rpn/model"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPR...",
	Short: "Evaluate each argument as one line of a single session",
	Example: `  rpn eval "3 4 +"
  rpn eval "x 5 =" "x 2 *"`,
	Args: cobra.MinimumNArgs(1),
	Run:  evalCommand,
}

func evalCommand(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	s, err := cfg.BuildSession()
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't start session")
	}
	failed := 0
	for _, line := range args {
		result, err := s.EvalLine(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, model.FormatError(err))
			failed++
			continue
		}
		if str, ok := model.FormatResult(result, cfg.Precision); ok {
			fmt.Println(str)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
