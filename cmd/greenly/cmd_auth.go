package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Harshchoudhary07/Greenly/internal/api"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the Greenly backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := cliApp.client.Login(cmd.Context(), api.LoginRequest{
			Username: loginUsername,
			Password: loginPassword,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cliApp.client.Logout(cmd.Context()); err != nil {
			// session is cleared locally either way
			fmt.Println("Logged out locally; backend logout failed:", err)
			return nil
		}
		fmt.Println("Logged out")
		return nil
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := cliApp.client.Me(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s> role=%s", user.Username, user.Email, user.Role)
		if user.Phone != "" {
			fmt.Printf(" phone=%s", user.Phone)
		}
		fmt.Println()
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Session token helpers",
}

var tokenCopyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the access token to the clipboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		token := cliApp.session.Token()
		if token == "" {
			return fmt.Errorf("not logged in")
		}
		if err := clipboard.WriteAll(token); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Println("Copied to clipboard!")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "account username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")

	tokenCmd.AddCommand(tokenCopyCmd)
}
