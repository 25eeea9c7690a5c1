// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package cmd wires the launcher into a cobra CLI. The bare command
// runs the full boot sequence and, on success, never returns.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llbbl/atlas-launcher/internal/config"
	"github.com/llbbl/atlas-launcher/internal/launcher"
	"github.com/llbbl/atlas-launcher/internal/logging"
	"github.com/llbbl/atlas-launcher/internal/update"
)

// Version is set at build time with -ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Launcher for the bundled Atlas Terminal",
	Long: `atlas boots the bundled Atlas Terminal: it prints the banner and
deprecation notice, shows an occasional tip, and then replaces itself
with the terminal executable shipped alongside it.

The launcher takes no arguments and forwards none to the terminal.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logging.SetupLogger(cfg.LogLevel, cfg.LogFormat)

		l := launcher.New()
		l.ShowTips = !cfg.NoTips
		if cfg.CheckUpdates {
			if notice := updateNotice(cmd.Context()); notice != "" {
				l.Notices = append(l.Notices, notice)
			}
		}

		return l.Run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("atlas launcher version %s\n", Version)
	},
}

// updateNotice runs the best-effort release check. Failures are logged
// and swallowed: an unreachable network must never block the launch.
func updateNotice(ctx context.Context) string {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, update.DefaultTimeout)
	defer cancel()

	res, err := update.NewChecker().Check(ctx, Version)
	if err != nil {
		logging.WithComponent("update").Warn("release check failed", "error", err)
		return ""
	}
	return update.Notice(res)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command. Fatal launch errors are printed here
// so main can exit non-zero without double-reporting.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, launcher.DefaultStyle.Error.Render("atlas: "+err.Error()))
	}
	return err
}
