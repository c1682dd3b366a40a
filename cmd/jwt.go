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

// JWTCommand constructs the 'jwt' subcommand that opens a session for an
// existing admin and prints its signed RS256 token, for scripted access to
// the admin API with a bearer token.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a session token for the given admin email",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			email, _ := cmd.Flags().GetString("email")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			opts := authOptions(cfg)
			if ttl > 0 {
				opts.SessionTTL = ttl
			}
			authSvc, err := auth.New(strg, opts)
			if err != nil {
				logger.Fatal(ctx, "could not create auth service", zap.Error(err))
			}

			res := authSvc.IssueToken(ctx, email, auth.Client{UserAgent: "travel-cli"})
			if !res.Success() {
				logger.Fatal(ctx, "could not issue token", zap.Error(res.Err()))
			}

			fmt.Println(res.Data().Token) //nolint: forbidigo
		},
	}

	cmd.Flags().String("email", "", "Admin email")
	cmd.Flags().Duration("ttl", 0, "Token TTL (e.g., 30s, 15m, 1h); defaults to the session TTL")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
