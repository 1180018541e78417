package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/notewire/notewire"
	"github.com/spf13/cobra"
)

var (
	registerFirst string
	registerLast  string
	registerEmail string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account and log in",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		ctrl, err := newController()
		if err != nil {
			fatal("Failed to initialize notewire", err)
		}

		err = ctrl.Register(ctx, notewire.Profile{
			FirstName: registerFirst,
			LastName:  registerLast,
			Email:     registerEmail,
		})
		if errors.Is(err, notewire.ErrEmailTaken) {
			fmt.Fprintln(os.Stderr, "An account with this email already exists. Try 'notewire login'.")
			os.Exit(1)
		}
		if err != nil {
			fatal("Registration failed", err)
		}

		ident, _ := ctrl.Identity()
		fmt.Printf("Registered %s <%s> (id %s)\n", ident.DisplayName(), ident.Email, ident.ID)
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerFirst, "first", "", "First name")
	registerCmd.Flags().StringVar(&registerLast, "last", "", "Last name")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Email address")
	registerCmd.MarkFlagRequired("email")
}
