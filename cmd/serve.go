package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"travel/internal/api"
	"travel/internal/api/handler/v1handler"
	"travel/internal/auth"
	"travel/internal/config"
	"travel/internal/content"
	"travel/internal/worker"
	"travel/pkg/logger"
	"travel/pkg/mailer"
	"travel/pkg/objectstore/s3store"
	"travel/pkg/pagecache"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func authOptions(cfg *config.Config) auth.Options {
	return auth.Options{
		PrivateKey:  cfg.Auth.PrivateKey,
		SessionTTL:  cfg.Auth.SessionTTL,
		Issuer:      cfg.Auth.Issuer,
		AllowSignup: cfg.Auth.AllowSignup,
	}
}

// getCache connects the page cache. Without a cache URL pages are served
// uncached and a nil cache is returned.
func getCache(ctx context.Context, cfg *config.Config) (*pagecache.Cache, func()) {
	if cfg.Cache.URL == "" {
		logger.Warn(ctx, "page cache is disabled")

		return nil, func() {}
	}

	client, err := pagecache.Connect(ctx, cfg.Cache.URL)
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}
	cache, err := pagecache.New(client, pagecache.Options{TTL: cfg.Cache.TTL})
	if err != nil {
		logger.Fatal(ctx, "could not create page cache", zap.Error(err))
	}

	return cache, func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			cache, closeCache := getCache(ctx, cfg)
			defer closeCache()

			objects, err := s3store.New(ctx, s3store.Options{
				Bucket:          cfg.Storage.Bucket,
				Region:          cfg.Storage.Region,
				Endpoint:        cfg.Storage.Endpoint,
				CDNBaseURL:      cfg.Storage.CDNBaseURL,
				AccessKeyID:     cfg.Storage.AccessKeyID,
				SecretAccessKey: cfg.Storage.SecretAccessKey,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create object store", zap.Error(err))
			}

			mail, err := mailer.New(ctx, mailer.Options{
				Region:          cfg.Mail.Region,
				From:            cfg.Mail.From,
				AccessKeyID:     cfg.Mail.AccessKeyID,
				SecretAccessKey: cfg.Mail.SecretAccessKey,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create mailer", zap.Error(err))
			}

			authSvc, err := auth.New(strg, authOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create auth service", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, strg.Pool, worker.Deps{
				Storage:  strg,
				Cache:    cache,
				Mailer:   mail,
				Sessions: authSvc,
			}, worker.Options{
				MaxWorkers:           cfg.Worker.MaxWorkers,
				NotifyTo:             cfg.Mail.To,
				SessionPurgeInterval: cfg.Worker.SessionPurgeInterval,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Content: content.New(strg),
				Auth:    authSvc,
				Cache:   cache,
				Objects: objects,
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
