package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitfusion/fitfusion/internal/app"
	"github.com/fitfusion/fitfusion/internal/config"
	"github.com/fitfusion/fitfusion/internal/logger"
	"github.com/fitfusion/fitfusion/internal/menu"
	"github.com/fitfusion/fitfusion/internal/terminal"
)

// rootCmd starts the interactive terminal session.
var rootCmd = &cobra.Command{
	Use:   "fitfusion",
	Short: "FitFusion gym management terminal",
	Long: `FitFusion is a terminal application for running a gym: member and staff
logins, profiles, goals, achievements, activity tracking, class and
personal-training registration, and membership billing.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger.Init(cfg.IsDevelopment(), cfg.LogFile)

		a, err := app.New(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		term := terminal.New(os.Stdin, os.Stdout)
		menu.New(term, a).Run()
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
