package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with an email address",
	Long: `Resolve the email against the user directory and persist the session.
There is no password; identity is resolved by email lookup only.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		ctrl, err := newController()
		if err != nil {
			fatal("Failed to initialize notewire", err)
		}

		if err := ctrl.Login(ctx, loginEmail); err != nil {
			fatal("Login failed", err)
		}

		ident, _ := ctrl.Identity()
		coll, err := ctrl.Collection()
		if err != nil {
			fatal("Login failed", err)
		}

		fmt.Printf("Logged in as %s <%s> (%d notes)\n", ident.DisplayName(), ident.Email, coll.Len())
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email address")
	loginCmd.MarkFlagRequired("email")
}
