package main

import (
	"fmt"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"cash-audit/internal/config"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "auditkas",
	Short: "Cash and cash equivalents audit assistant",
	Long: `auditkas walks through the substantive audit of cash: materiality, internal control
questionnaire, bank reconciliation, petty cash count, findings and the lead schedule.

Example Usage:
  auditkas run --demo --revenue 120000000000 --out kkp-kas.xlsx
  auditkas run --ledger gl.csv --bank rk.csv --format csv
  auditkas cashcount --count 100000=45 --count 50000=8
  auditkas serve --port 8080`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		log.SetHeader("${time_rfc3339} ${level}")
		log.SetLevel(cfg.Level())
		if verbose {
			log.SetLevel(log.DEBUG)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
