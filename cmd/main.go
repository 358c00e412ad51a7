package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rapidmidiex/rmxchords"
	"github.com/rapidmidiex/rmxchords/config"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Uh oh, there was an error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		language   string
		stateFile  string
		logFile    string
	)

	cmd := &cobra.Command{
		Use:   "rmxchords",
		Short: "Learn to recognize major and minor triads on the keyboard",
		Long: `rmxchords shows a random major or minor triad on a virtual keyboard.
Name its key, mode and inversion; your score is kept between sessions.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if configPath != "" {
				loaded, err := config.LoadFromFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// flags override the config file
			if cmd.Flags().Changed("lang") {
				cfg.Language = language
			}
			if cmd.Flags().Changed("state-file") {
				cfg.StateFile = stateFile
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = logFile
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			return rmxchords.Run(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&language, "lang", "english", "Language of note and key names until one is chosen in the settings (english, german)")
	cmd.Flags().StringVar(&stateFile, "state-file", "", "Where preferences and statistics are saved")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write debug logs to this file")

	cmd.AddCommand(initConfigCmd())

	return cmd
}

func initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config <path>",
		Short: "Write a config file with the default settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.DefaultConfig().SaveToFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			return nil
		},
	}
}
