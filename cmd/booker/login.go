package main

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with your Google Workspace account",
		Long: `Prints the Google consent URL. After approving access, paste the
authorization code shown by the browser (or pass it with --code).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := newClient(cmd)

			urlEnv := client.Login(ctx)
			if err := envelopeErr(urlEnv); err != nil {
				return fmt.Errorf("failed to get the sign-in URL: %w", err)
			}

			if code == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Paste the authorization code: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read authorization code: %w", err)
				}
				code = strings.TrimSpace(line)
			}

			var state string
			if u, err := url.Parse(urlEnv.Data); err == nil {
				state = u.Query().Get("state")
			}

			res := client.HandleOAuthCallback(ctx, code, state)
			if err := envelopeErr(res); err != nil {
				return fmt.Errorf("sign-in failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", res.Data.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "authorization code (skips the prompt)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and forget the stored tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			newClient(cmd).Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the stored session is still valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !newClient(cmd).ValidateSession(cmd.Context()) {
				return fmt.Errorf(`not signed in, run "booker login"`)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed in")
			return nil
		},
	}
}
