// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	httpclient "github.com/canonical/tenant-console/client/http"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print the session token of the stored app session",
	Long: `Print the session token of the stored app session so scripts can call
the account API with the X-Session-Token header. Only sessions opened with
--client app carry a token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		closer, c, err := getClient()
		if err != nil {
			return err
		}
		defer closer()

		if c.client.Kind() != httpclient.ClientApp {
			return errors.New("browser sessions live in cookies, log in with --client app to get a token")
		}

		if err := c.requireLogin(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), c.client.SessionToken())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
