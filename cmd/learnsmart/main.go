package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"learnsmart/internal/api"
	"learnsmart/internal/app"
	"learnsmart/internal/config"
	"learnsmart/internal/session"
)

func main() {
	cfg := config.Load()

	server := flag.String("server", cfg.APIBaseURL, "LearnSmart API base URL")
	credentialDB := flag.String("credentials", cfg.CredentialDB, "path to the local credential database")
	timeout := flag.Duration("timeout", cfg.HTTPTimeout, "HTTP timeout")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	store, err := session.NewSQLiteStore(*credentialDB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: opening credential store:", err)
		os.Exit(1)
	}
	defer store.Close()

	client := api.NewClient(*server, *timeout)

	a := app.New(client, store, logger, os.Stdout)
	if err := a.Run(context.Background(), os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
