package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/cellnotes/internal/version"
	"github.com/arthur-debert/cellnotes/pkg/config"
	"github.com/arthur-debert/cellnotes/pkg/logging"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "cellnotes",
		Short: "Round-trip tooling for worksheet comment XML parts",
		Long: `cellnotes parses the comment annotations of a worksheet XML part into a
structured model and writes them back deterministically, preserving any
content it does not understand. Re-serialized parts are byte-for-byte
stable, which makes them diffable.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				// A broken config file must not block the command
				cfg = config.Default()
			}
			config.Initialize(cfg)

			logging.SetupLogger(effectiveVerbosity(cfg))
			if err != nil {
				log.Warn().Err(err).Msg("Ignoring unreadable config file")
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// effectiveVerbosity maps the -v count to a log level, falling back to the
// configured level when no flag was given
func effectiveVerbosity(cfg *config.Config) int {
	if verbosity > 0 {
		return verbosity
	}
	switch cfg.LogLevel {
	case "info":
		return 1
	case "debug":
		return 2
	case "trace":
		return 3
	default:
		return 0
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(styleError(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(showCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for cellnotes`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cellnotes version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
