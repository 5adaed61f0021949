package main

import (
	"fmt"
	"log/slog"
	"os"

	"invoicer/internal/config"
	"invoicer/internal/service"

	"github.com/spf13/cobra"
)

var sheetsFile string

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List the sheet names of a workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyConfigFlag()
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		path := sheetsFile
		if path == "" {
			path = cfg.Timesheet.Path
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read timesheet %s: %w", path, err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		names, err := service.New(cfg, logger).SheetNames(data)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	sheetsCmd.Flags().StringVar(&sheetsFile, "file", "",
		"workbook to inspect (default: configured TIMESHEET_PATH)")
	rootCmd.AddCommand(sheetsCmd)
}
