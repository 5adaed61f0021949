package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "invoicer",
	Short: "Generate invoices from timesheet spreadsheets",
	Long: `invoicer turns a time-tracking spreadsheet into a draft invoice:
rows are grouped by date, hours are summed per day, and totals (subtotal,
tax, discount) are computed from the configured rates.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"path to a YAML config file (overrides INVOICER_CONFIG)")
}

// applyConfigFlag routes the --config flag through the same environment
// variable the config loader already reads.
func applyConfigFlag() {
	if cfgFile != "" {
		_ = os.Setenv("INVOICER_CONFIG", cfgFile)
	}
}
