// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/tenant-console/pkg/authentication"
)

var (
	loginEmail         string
	loginPhone         string
	loginCode          string
	loginGoogle        bool
	googleClientID     string
	googleClientSecret string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with a one time code or with Google",
	Long: `Log in with a one time code sent to an email address or a phone number,
or with a Google account. Without --code the command prompts for the code,
an empty answer leaves the login pending so it can be finished later with
"login --code".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		closer, c, err := getClient()
		if err != nil {
			return err
		}
		defer closer()

		ctx := cmd.Context()

		switch {
		case loginGoogle:
			err = c.googleLogin(ctx, cmd.ErrOrStderr())
		case loginEmail != "" || loginPhone != "":
			err = c.codeLogin(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		case loginCode != "":
			err = c.resumeLogin(ctx)
		default:
			return errors.New("one of --email, --phone, --code or --google is required")
		}

		if err != nil {
			return err
		}

		if !c.session.Authenticated() {
			return nil
		}
		return c.printUser(cmd.OutOrStdout())
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		closer, c, err := getClient()
		if err != nil {
			return err
		}
		defer closer()

		ctx := cmd.Context()

		// the user is only needed for the audit log, a stale session still logs out
		_ = c.requireLogin(ctx)

		if err := c.flow(nil).Logout(ctx, c.session); err != nil {
			return err
		}

		c.client.ResetSession()
		c.forget = true

		if err := c.file.Clear(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user and their team",
	RunE: func(cmd *cobra.Command, args []string) error {
		closer, c, err := getClient()
		if err != nil {
			return err
		}
		defer closer()

		if err := c.requireLogin(cmd.Context()); err != nil {
			return err
		}
		return c.printUser(cmd.OutOrStdout())
	},
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the third party login providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		closer, c, err := getClient()
		if err != nil {
			return err
		}
		defer closer()

		providers, err := c.flow(nil).Providers(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "PROVIDER\tCLIENT_ID")
		for _, p := range providers {
			fmt.Fprintf(w, "%s\t%s\n", p.Provider, p.ClientID)
		}
		w.Flush()
		return nil
	},
}

func (c *console) codeLogin(ctx context.Context, in io.Reader, out io.Writer) error {
	flow := c.flow(nil)

	result, err := flow.Start(ctx, authentication.Identifier{Email: loginEmail, Phone: loginPhone})
	if err != nil {
		return err
	}

	if result.Outcome == authentication.Authenticated {
		return c.requireLogin(ctx)
	}

	code := loginCode
	if code == "" {
		fmt.Fprintf(out, "We sent a code to %s\nCode: ", flow.Identifier())

		code, err = bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read the code: %w", err)
		}
		code = strings.TrimSpace(code)
	}

	if code == "" {
		fmt.Fprintln(out, "Run `login --code <code>` to finish logging in")
		return nil
	}

	if err := flow.Confirm(ctx, code); err != nil {
		return err
	}

	return c.requireLogin(ctx)
}

// resumeLogin confirms a code for a login started by an earlier run, the
// pending login is held by the stored session cookies
func (c *console) resumeLogin(ctx context.Context) error {
	flow := c.flow(nil)
	flow.Resume("")

	if err := flow.Confirm(ctx, loginCode); err != nil {
		return err
	}

	return c.requireLogin(ctx)
}

func (c *console) googleLogin(ctx context.Context, out io.Writer) error {
	clientID, secret := googleClientID, googleClientSecret
	if clientID == "" {
		clientID = c.specs.GoogleClientID
	}
	if secret == "" {
		secret = c.specs.GoogleClientSecret
	}

	loopback, err := authentication.NewGoogleLoopbackLogin(ctx, clientID, secret, c.tracer, c.monitor, c.logger)
	if err != nil {
		return err
	}

	verifier, err := authentication.NewGoogleAuthenticator(ctx, clientID, c.tracer, c.monitor, c.logger)
	if err != nil {
		return err
	}

	idToken, err := loopback.IDToken(
		ctx,
		func(authURL string) error {
			_, err := fmt.Fprintf(out, "Open this URL in your browser to log in:\n\n  %s\n\n", authURL)
			return err
		},
	)
	if err != nil {
		return err
	}

	err = c.flow(verifier).ProviderLogin(
		ctx,
		authentication.ProviderCredential{
			Provider: authentication.GoogleProvider,
			ClientID: loopback.ClientID(),
			IDToken:  idToken,
		},
	)
	if err != nil {
		return err
	}

	return c.requireLogin(ctx)
}

func (c *console) printUser(out io.Writer) error {
	user, _ := c.session.Users.User()
	team, _ := c.session.Tenants.Tenant()

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "USER\t%s\n", user.DisplayName())
	fmt.Fprintf(w, "EMAIL\t%s\n", user.Email)
	fmt.Fprintf(w, "TEAM\t%s\n", team.Name)
	fmt.Fprintf(w, "ROLE\t%s\n", c.session.Role().Label())
	return w.Flush()
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "email address to send the code to")
	loginCmd.Flags().StringVar(&loginPhone, "phone", "", "phone number in E.164 format to send the code to")
	loginCmd.Flags().StringVar(&loginCode, "code", "", "6 character login code")
	loginCmd.Flags().BoolVar(&loginGoogle, "google", false, "log in with a Google account")
	loginCmd.Flags().StringVar(&googleClientID, "google-client-id", "", "Google OAuth client id, defaults to $GOOGLE_CLIENT_ID")
	loginCmd.Flags().StringVar(&googleClientSecret, "google-client-secret", "", "Google OAuth client secret, defaults to $GOOGLE_CLIENT_SECRET")
	loginCmd.MarkFlagsMutuallyExclusive("email", "phone", "google")
	loginCmd.MarkFlagsMutuallyExclusive("code", "google")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(providersCmd)
}
