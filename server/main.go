package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := LoadConfig(args)
	if err != nil {
		return err
	}
	if err := InitLogger(cfg.LogFile, cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer SyncLogger()

	db, err := OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		if secret, err = LoadOrCreateSecret(context.Background(), db); err != nil {
			return err
		}
	}
	auth := NewAuth(secret)

	if cfg.IssueToken != "" {
		tok, err := auth.IssueToken(cfg.IssueToken, 0)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		fmt.Println(tok)
		return nil
	}

	feed := NewFeedHub()
	loop := NewCollisionLoop(db.Stores(),
		WithPeriod(cfg.TickPeriod),
		WithPassTimeout(cfg.PassTimeout),
		WithDispatchLimit(cfg.DispatchLimit),
		WithEventSink(feed),
	)
	loop.Start()
	defer loop.Stop()

	mux := SetupRoutes(Routes{
		Metrics: loop.Metrics(),
		Config:  db.GameConfig(),
		Auth:    auth,
		Feed:    feed,
	})
	server := &http.Server{Addr: cfg.Addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		Log.Infow("server starting", "addr", cfg.Addr, "db", cfg.DBPath)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-stop:
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	}

	Log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
