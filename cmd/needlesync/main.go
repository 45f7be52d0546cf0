package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/needlesync/needlesync/internal/auth"
	"github.com/needlesync/needlesync/internal/config"
	"github.com/needlesync/needlesync/internal/logging"
	"github.com/needlesync/needlesync/internal/server"
	"github.com/needlesync/needlesync/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New()

	if cfg.Auth.InsecureSecret() {
		logger.Warn("NEEDLESYNC_JWT_SECRET is not set; signing tokens with the built-in development secret. Do not run this in production.")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DatabaseURL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = store.EnsureSchema(ctx, db)
	cancel()
	if err != nil {
		return err
	}

	users := store.NewUsersRepository(db)
	projects := store.NewProjectsRepository(db)

	tokens := auth.NewTokenService(cfg.Auth.SigningKey(), cfg.Auth.TTL, cfg.Auth.Issuer, logger)
	auther := auth.NewAuthenticator(users, tokens, logger)
	guard := auth.NewGuard(tokens, logger)

	srv := server.New(server.Options{
		Authenticator: auther,
		Guard:         guard,
		Projects:      projects,
		Logger:        logger,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		errCh <- srv.Listen(cfg.Addr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		return srv.Shutdown()
	}
}
