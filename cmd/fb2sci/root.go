package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"fb2sci/internal/config"
	"fb2sci/internal/convert"
	"fb2sci/internal/logging"
)

const version = "1.1.0"

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string
	var forceFlag bool

	rootCmd := &cobra.Command{
		Use:   "fb2sci <bankfile1> <bankfile2> <patchfile>",
		Short: "Convert FB-01 sysex bank dumps into a Sierra SCI0 patch resource",
		Long: `fb2sci converts two Yamaha FB-01 sysex bank dump files (bank A and
bank B) into the IMF/FB-01 patch resource format consumed by Sierra's
SCI0 sound driver.`,
		Version:       version,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			logger, err := buildLogger(cmd, cfg, logLevelFlag, logFormatFlag)
			if err != nil {
				return err
			}

			conv := &convert.Converter{
				Logger:  logger,
				Confirm: confirmOverwrite(cmd, forceFlag || cfg.Output.Overwrite),
			}
			if err := conv.Convert(args[0], args[1], args[2]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "SCI FB-01 patch created successfully: %s\n", args[2])
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log verbosity (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log output shape (console, json)")
	rootCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite an existing patch file without prompting")

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// buildLogger derives logger options from config, letting explicit flags win.
func buildLogger(cmd *cobra.Command, cfg *config.Config, levelFlag, formatFlag string) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if cmd.Flags().Changed("log-level") {
		level = levelFlag
	}
	format := cfg.Logging.Format
	if cmd.Flags().Changed("log-format") {
		format = formatFlag
	}
	return logging.New(logging.Options{Level: level, Format: format, Writer: cmd.ErrOrStderr()})
}
