// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package cmd provides the root command for the relcat CLI.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/defenseunicorns/relcat/config"
)

const modulePath = "github.com/defenseunicorns/relcat"

// state is shared by every sub-command, it is populated before any of them run
type state struct {
	fs     afero.Fs
	cfg    *config.Config
	lookup config.LookupFunc
}

// NewRootCmd creates the root command for the relcat CLI.
func NewRootCmd() *cobra.Command {
	var (
		level      string
		ver        bool
		dir        string
		configPath string
		envFile    string
	)

	s := &state{
		fs: afero.NewOsFs(),
	}

	root := &cobra.Command{
		Use:   "relcat",
		Short: "Generate and check the releases data of a static website",
		Example: `
relcat generate

relcat check --site website

relcat list --filter 'has_firmware && status == "Released"'

relcat show 03_Turing_Machine
`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if dir != "" {
				if err := os.Chdir(dir); err != nil {
					return err
				}
			}

			l, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			log.FromContext(cmd.Context()).SetLevel(l)

			cfg, err := config.LoadConfigFile(s.fs, configPath)
			if err != nil {
				return fmt.Errorf("failed to load config %q: %w", configPath, err)
			}
			s.cfg = cfg

			lookup, err := config.EnvLookup(s.fs, envFile)
			if err != nil {
				return err
			}
			s.lookup = lookup

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !ver {
				return cmd.Help()
			}

			bi, ok := debug.ReadBuildInfo()
			if !ok {
				return fmt.Errorf("version information not available")
			}
			switch bi.Main.Path {
			case modulePath:
				fmt.Fprintln(cmd.OutOrStdout(), bi.Main.Version)
			default:
				for _, dep := range bi.Deps {
					if dep.Path == modulePath {
						fmt.Fprintln(cmd.OutOrStdout(), dep.Version)
						break
					}
				}
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&level, "log-level", "l", "info", "Set log level")
	_ = root.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{log.DebugLevel.String(), log.InfoLevel.String(), log.WarnLevel.String(), log.ErrorLevel.String(), log.FatalLevel.String()}, cobra.ShellCompDirectiveNoFileComp
	})
	root.PersistentFlags().StringVarP(&dir, "directory", "C", "", "Change to directory before doing anything")
	_ = root.MarkPersistentFlagDirname("directory")
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultFileName, "Path to relcat config file")
	_ = root.MarkPersistentFlagFilename("config", "yaml", "yml")
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "Dotenv file consulted for CI variables missing from the environment")
	root.Flags().BoolVarP(&ver, "version", "V", false, "Print version number and exit")

	root.AddCommand(
		NewGenerateCmd(s),
		NewCheckCmd(s),
		NewListCmd(s),
		NewShowCmd(s),
		NewSchemaCmd(),
	)

	return root
}

// Main executes the root command for the relcat CLI.
//
// It returns 0 on success, 1 on failure and logs any errors.
func Main() int {
	cli := NewRootCmd()

	ctx := context.Background()

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM, os.Interrupt)
	defer cancel()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	logger.SetStyles(DefaultStyles())

	ctx = log.WithContext(ctx, logger)
	if err := cli.ExecuteContext(ctx); err != nil {
		logger.Error(err)
		return 1
	}
	return 0
}
