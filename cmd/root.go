// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL      string
	clientKind  string
	sessionFile string
	logLevel    string
	profilePath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tenant-console",
	Short: "Tenant Console",
	Long:  `Tenant Console CLI and web console for managing your account and your team.`,

	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "account API base URL, defaults to $API_URL")
	rootCmd.PersistentFlags().StringVar(&clientKind, "client", "", "allauth client flavour, app or browser, defaults to $CLIENT")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", "", "file holding the stored session, defaults to the user config directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, defaults to $LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile-path", "", "profile endpoint path, defaults to $PROFILE_PATH")
}
