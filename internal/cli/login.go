package cli

import (
	"fmt"
	"os"

	"dsa_tracker/internal/model"
	"dsa_tracker/internal/webutil"

	"github.com/spf13/cobra"
)

func newLoginCommand(a *app) *cobra.Command {
	var req model.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the token to export as " + envToken,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				req.Password = os.Getenv("DSA_PASSWORD")
			}
			if err := webutil.Validator.Struct(req); err != nil {
				return fmt.Errorf("invalid credentials input: %w", err)
			}

			auth, err := a.remote.Login(a.context(cmd), &req)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged in as %s <%s>\n", auth.Profile.Name, auth.Profile.Email)
			fmt.Fprintf(out, "export %s=%s\n", envToken, auth.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password (env DSA_PASSWORD)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
