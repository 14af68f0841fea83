// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage your team",
}

var showTeamCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your team",
	RunE: func(cmd *cobra.Command, args []string) error {
		closer, c, err := getClient()
		if err != nil {
			return err
		}
		defer closer()

		ctx := cmd.Context()
		if err := c.requireLogin(ctx); err != nil {
			return err
		}

		team, _ := c.session.Tenants.Tenant()

		logo := "-"
		if l, err := c.tenant().Logo(ctx); err != nil {
			c.logger.Debugf("failed to fetch logo: %v", err)
		} else if l != nil {
			logo = l.Image
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", team.PK)
		fmt.Fprintf(w, "NAME\t%s\n", team.Name)
		fmt.Fprintf(w, "SLUG\t%s\n", team.Slug)
		fmt.Fprintf(w, "WEBSITE\t%s\n", orDash(team.Website))
		fmt.Fprintf(w, "LOGO\t%s\n", logo)
		fmt.Fprintf(w, "MEMBERS\t%d\n", len(team.TenantUsers))
		fmt.Fprintf(w, "ROLE\t%s\n", team.Me.Role.Label())
		w.Flush()
		return nil
	},
}

var renameTeamCmd = &cobra.Command{
	Use:   "rename [name]",
	Short: "Rename your team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		closer, c, err := getClient()
		if err != nil {
			return err
		}
		defer closer()

		ctx := cmd.Context()
		if err := c.requireLogin(ctx); err != nil {
			return err
		}

		team, err := c.tenant().Rename(ctx, args[0])
		if err != nil {
			return tenantError(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Team renamed: %s\n", team.Name)
		return nil
	},
}

var websiteTeamCmd = &cobra.Command{
	Use:   "website [url]",
	Short: "Set the website of your team, an empty url clears it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		closer, c, err := getClient()
		if err != nil {
			return err
		}
		defer closer()

		ctx := cmd.Context()
		if err := c.requireLogin(ctx); err != nil {
			return err
		}

		team, err := c.tenant().SetWebsite(ctx, args[0])
		if err != nil {
			return tenantError(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Website updated: %s\n", orDash(team.Website))
		return nil
	},
}

var logoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Manage the logo of your team",
}

var uploadLogoCmd = &cobra.Command{
	Use:   "upload [path]",
	Short: "Upload an image as the team logo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		closer, c, err := getClient()
		if err != nil {
			return err
		}
		defer closer()

		ctx := cmd.Context()
		if err := c.requireLogin(ctx); err != nil {
			return err
		}

		file, err := c.gate.Load(args[0])
		if err != nil {
			return uploadError(c.gate, err)
		}

		url, err := c.tenant().UploadLogo(ctx, file)
		if err != nil {
			if msg := c.gate.Message(err); msg != "" {
				return uploadError(c.gate, err)
			}
			return tenantError(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Logo updated")
		if url != nil {
			fmt.Fprintln(cmd.OutOrStdout(), *url)
		}
		return nil
	},
}

var removeLogoCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the team logo",
	RunE: func(cmd *cobra.Command, args []string) error {
		closer, c, err := getClient()
		if err != nil {
			return err
		}
		defer closer()

		ctx := cmd.Context()
		if err := c.requireLogin(ctx); err != nil {
			return err
		}

		if err := c.tenant().RemoveLogo(ctx); err != nil {
			return tenantError(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Logo removed")
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	logoCmd.AddCommand(uploadLogoCmd)
	logoCmd.AddCommand(removeLogoCmd)

	teamCmd.AddCommand(showTeamCmd)
	teamCmd.AddCommand(renameTeamCmd)
	teamCmd.AddCommand(websiteTeamCmd)
	teamCmd.AddCommand(logoCmd)

	rootCmd.AddCommand(teamCmd)
}
