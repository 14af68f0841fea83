// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/tenant-console/pkg/profile"
	"github.com/canonical/tenant-console/pkg/upload"
)

var (
	firstName  string
	lastName   string
	cropSquare bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var updateProfileCmd = &cobra.Command{
	Use:   "update",
	Short: "Change your first and last name",
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

		user, _ := c.session.Users.User()
		first, last := user.FirstName, user.LastName
		if cmd.Flags().Changed("first-name") {
			first = firstName
		}
		if cmd.Flags().Changed("last-name") {
			last = lastName
		}

		updated, err := c.profile().UpdateName(ctx, first, last)
		if errors.Is(err, profile.ErrInvalidName) {
			return profile.ErrInvalidName
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile updated: %s\n", updated.DisplayName())
		return nil
	},
}

var avatarCmd = &cobra.Command{
	Use:   "avatar",
	Short: "Manage your avatar",
}

var uploadAvatarCmd = &cobra.Command{
	Use:   "upload [path]",
	Short: "Upload an image as your avatar",
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

		if cropSquare {
			if file, err = upload.CropCenterSquare(file); err != nil {
				return uploadError(c.gate, err)
			}
		}

		url, err := c.profile().UploadAvatar(ctx, file, nil)
		if err != nil {
			return uploadError(c.gate, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Avatar updated")
		if url != nil {
			fmt.Fprintln(cmd.OutOrStdout(), *url)
		}
		return nil
	},
}

var removeAvatarCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove your avatar",
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

		if err := c.profile().RemoveAvatar(ctx); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Avatar removed")
		return nil
	},
}

func init() {
	updateProfileCmd.Flags().StringVar(&firstName, "first-name", "", "first name, at most 30 characters")
	updateProfileCmd.Flags().StringVar(&lastName, "last-name", "", "last name, at most 30 characters")
	uploadAvatarCmd.Flags().BoolVar(&cropSquare, "crop", false, "crop the image to its centered square")

	avatarCmd.AddCommand(uploadAvatarCmd)
	avatarCmd.AddCommand(removeAvatarCmd)

	profileCmd.AddCommand(updateProfileCmd)
	profileCmd.AddCommand(avatarCmd)

	rootCmd.AddCommand(profileCmd)
}
