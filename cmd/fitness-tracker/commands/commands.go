package commands

import (
	"errors"
	"fmt"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/controllers"
	"fitness-tracker/internal/logger"
	"fitness-tracker/internal/models"
	"fitness-tracker/internal/services"
	"fitness-tracker/internal/storage"

	"github.com/spf13/cobra"
)

// GUIRunner starts the desktop application.
type GUIRunner func(cfg *config.Config, log *logger.ZerologAdapter) error

// NewRootCommand creates the fitness-tracker command. Without a subcommand it
// opens the GUI.
func NewRootCommand(runGUI GUIRunner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fitness-tracker",
		Short:         "Personal fitness tracker",
		Long:          "Track daily steps and body weight, with calorie and distance estimates stored in a local JSON file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runGUI(cfg, logger.New(logger.ParseLevel(cfg.Log.Level), cfg.Log.JSON))
		},
	}
	rootCmd.PersistentFlags().String("data-file", "", "path of the fitness data file (overrides FITNESS_DATA_FILE)")

	rootCmd.AddCommand(NewSummaryCommand())
	rootCmd.AddCommand(NewAddStepsCommand())
	rootCmd.AddCommand(NewSetWeightCommand())
	rootCmd.AddCommand(NewResetCommand())

	return rootCmd
}

// NewSummaryCommand prints today's summary
func NewSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print today's fitness summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := openTracker(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tracker.Summary())
			return nil
		},
	}
}

// NewAddStepsCommand adds steps to today's total
func NewAddStepsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-steps STEPS",
		Short: "Add steps to today's total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := models.ParseSteps(args[0])
			if err != nil {
				return userError(err)
			}
			tracker, err := openTracker(cmd)
			if err != nil {
				return err
			}
			msg, err := tracker.AddSteps(steps)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

// NewSetWeightCommand records today's weight
func NewSetWeightCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-weight KG",
		Short: "Set today's body weight in kilograms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := models.ParseWeight(args[0])
			if err != nil {
				return userError(err)
			}
			tracker, err := openTracker(cmd)
			if err != nil {
				return err
			}
			msg, err := tracker.SetWeight(weight)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

// NewResetCommand wipes all stored days
func NewResetCommand() *cobra.Command {
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored data and start today from zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				return errors.New("reset deletes all stored data and cannot be undone; pass --yes to confirm")
			}
			tracker, err := openTracker(cmd)
			if err != nil {
				return err
			}
			msg, err := tracker.Reset()
			if err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	resetCmd.Flags().Bool("yes", false, "confirm the reset")
	return resetCmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if path, _ := cmd.Flags().GetString("data-file"); path != "" {
		cfg.Data.File = path
	}
	return cfg, nil
}

func openTracker(cmd *cobra.Command) (*services.TrackerService, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log := logger.NewZerolog(cmd.ErrOrStderr(), logger.ParseLevel(cfg.Log.Level)).
		WithComponent("cli")
	return services.NewTrackerService(storage.NewJSONStore(cfg.Data.File), log)
}

func userError(err error) error {
	return errors.New(controllers.UserMessage(err))
}
