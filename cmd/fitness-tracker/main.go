package main

import (
	"fmt"
	"os"

	"fitness-tracker/cmd/fitness-tracker/commands"
	"fitness-tracker/internal/config"
	"fitness-tracker/internal/logger"
)

func main() {
	rootCmd := commands.NewRootCommand(runGUI)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runGUI(cfg *config.Config, log *logger.ZerologAdapter) error {
	application, err := NewApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("application initialization failed: %w", err)
	}
	return application.Run()
}
