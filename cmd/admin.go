package main

import (
	"context"
	"fmt"
	"travel/internal/auth"
	"travel/internal/config"
	"travel/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// adminCommand constructs the 'admin' subcommand that registers an admin
// account even when the signup page is closed.
func adminCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Creates an admin account",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			authSvc, err := auth.New(strg, authOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create auth service", zap.Error(err))
			}

			res := authSvc.CreateAdmin(ctx, auth.SignUpInput{Name: name, Email: email, Password: password})
			if !res.Success() {
				logger.Fatal(ctx, "could not create admin", zap.String("reason", res.Envelope().Error))
			}

			fmt.Printf("admin %d created for %s\n", res.Data().ID, res.Data().Email) //nolint: forbidigo
		},
	}

	cmd.Flags().String("name", "", "Display name")
	cmd.Flags().String("email", "", "Login email")
	cmd.Flags().String("password", "", "Password (8 to 72 characters)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
