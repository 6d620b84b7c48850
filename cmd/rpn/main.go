package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/rpn/model"
	"golang.org/x/term"
)

var (
	logLevel         string
	configPath       string
	strictDivision   bool
	strictAssignment bool
	noColor          bool
	precision        int
)

var rootCmd = &cobra.Command{
	Use:   "rpn",
	Short: "Interactive postfix calculator",
	Long: `rpn evaluates reverse Polish arithmetic one line at a time.

Each line is a list of whitespace separated tokens: numbers, the operators
+ - * /, variable names, and = to assign ("x 5 =" sets x to 5). Variables
last for the whole session. Type :help at the prompt for commands.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set up zerolog
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		// Parse and set log level
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level '%s', using 'warn'\n", logLevel)
			level = zerolog.WarnLevel
		}
		zerolog.SetGlobalLevel(level)
	},
	Run: replCommand,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Set log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().BoolVar(&strictDivision, "strict-division", false, "Fail on division by zero instead of producing Infinity or NaN")
	rootCmd.PersistentFlags().BoolVar(&strictAssignment, "strict-assignment", false, "Require a variable name below the assigned value")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", -1, "Decimals to print (-1 for shortest exact form)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(traceCmd)
}

// loadConfig reads the config file, if any, and lets explicitly set flags
// override it.
func loadConfig(cmd *cobra.Command) *model.Config {
	cfg := model.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = model.LoadConfigFromFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Couldn't load config")
		}
	}
	flags := cmd.Flags()
	if flags.Changed("strict-division") {
		cfg.StrictDivision = strictDivision
	}
	if flags.Changed("strict-assignment") {
		cfg.StrictAssignment = strictAssignment
	}
	if flags.Changed("precision") {
		cfg.Precision = precision
	}
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Color = false
	}
	color.Enable = cfg.Color
	log.Debug().Interface("config", cfg).Msg("Loaded config")
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
