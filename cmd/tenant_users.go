// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/tenant-console/internal/types"
)

var allInvitations bool

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage the members of your team",
}

var listMembersCmd = &cobra.Command{
	Use:   "list",
	Short: "List the members of your team",
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

		svc := c.tenant()

		members, err := svc.ListMembers(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tEDITABLE")
		for _, m := range members {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\n", m.PK, m.Name(), m.Email, m.Role.Label(), svc.CanEditRole(m))
		}
		w.Flush()
		return nil
	},
}

var setRoleCmd = &cobra.Command{
	Use:   "set-role [member-id] [owner|admin|user]",
	Short: "Change the role of a member",
	Long: `Change the role of a member. Making someone the owner transfers the
ownership of the team and is only allowed to the current owner.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		closer, c, err := getClient()
		if err != nil {
			return err
		}
		defer closer()

		ctx := cmd.Context()
		if err := c.requireLogin(ctx); err != nil {
			return err
		}

		member, err := c.tenant().SetRole(ctx, id, types.Role(args[1]))
		if err != nil {
			return tenantError(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Role updated: %s is now %s\n", member.Name(), member.Role.Label())
		return nil
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove [member-id]",
	Short: "Remove a member from your team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		closer, c, err := getClient()
		if err != nil {
			return err
		}
		defer closer()

		ctx := cmd.Context()
		if err := c.requireLogin(ctx); err != nil {
			return err
		}

		if err := c.tenant().RemoveMember(ctx, id); err != nil {
			return tenantError(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Member removed: %d\n", id)
		return nil
	},
}

var invitationsCmd = &cobra.Command{
	Use:   "invitations",
	Short: "Manage the invitations to your team",
}

var listInvitationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending invitations",
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

		var invitations []types.Invitation
		if allInvitations {
			invitations, err = c.tenant().ListInvitations(ctx)
		} else {
			invitations, err = c.tenant().PendingInvitations(ctx)
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tLAST_SENT_AT\tACCEPTED")
		for _, i := range invitations {
			id := "-"
			if i.PK != nil {
				id = strconv.FormatInt(*i.PK, 10)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", id, i.Email, formatTime(i.LastSentAt), !i.Pending())
		}
		w.Flush()
		return nil
	},
}

var createInvitationCmd = &cobra.Command{
	Use:   "create [email]",
	Short: "Invite someone to your team",
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

		invitation, err := c.tenant().Invite(ctx, args[0])
		if err != nil {
			return tenantError(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Invitation sent: %s\n", invitation.Email)
		return nil
	},
}

var resendInvitationCmd = &cobra.Command{
	Use:   "resend [invitation-id]",
	Short: "Send an invitation again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		closer, c, err := getClient()
		if err != nil {
			return err
		}
		defer closer()

		ctx := cmd.Context()
		if err := c.requireLogin(ctx); err != nil {
			return err
		}

		detail, err := c.tenant().Resend(ctx, id)
		if err != nil {
			return tenantError(err)
		}

		if detail == "" {
			detail = "Invitation sent again"
		}
		fmt.Fprintln(cmd.OutOrStdout(), detail)
		return nil
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}

func init() {
	listInvitationsCmd.Flags().BoolVar(&allInvitations, "all", false, "include accepted invitations")

	membersCmd.AddCommand(listMembersCmd)
	membersCmd.AddCommand(setRoleCmd)
	membersCmd.AddCommand(removeMemberCmd)

	invitationsCmd.AddCommand(listInvitationsCmd)
	invitationsCmd.AddCommand(createInvitationCmd)
	invitationsCmd.AddCommand(resendInvitationCmd)

	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(invitationsCmd)
}
