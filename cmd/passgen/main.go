// Package main is the passgen command: it generates passwords from the
// command line, an interactive shell, a full-screen terminal UI or an HTTP API.
package main

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/atinyakov/passgen/internal/client/storage"
	"github.com/atinyakov/passgen/internal/clipboard"
	"github.com/atinyakov/passgen/internal/config"
	"github.com/atinyakov/passgen/internal/db"
	"github.com/atinyakov/passgen/internal/logger"
	"github.com/atinyakov/passgen/internal/password"
	"github.com/atinyakov/passgen/internal/repository"
	"github.com/atinyakov/passgen/internal/service"
	"github.com/atinyakov/passgen/internal/session"
	"github.com/atinyakov/passgen/internal/tui"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	options, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal(err)
	}

	if options.ShowVersion {
		fmt.Printf("passgen\nVersion: %s\nBuild Date: %s\n", cmp.Or(version, "N/A"), cmp.Or(buildDate, "N/A"))
		return
	}
	if err := options.Validate(); err != nil {
		log.Fatal(err)
	}

	// Initialize structured logging.
	lg := logger.New()
	defer func() { _ = lg.Log.Sync() }()
	if err := lg.Init(options.LogLevel); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	zapLogger := lg.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// History is optional; without a DSN nothing is recorded.
	var historyRepo service.HistoryRepository
	var historyDB *sql.DB
	if options.DatabaseDSN != "" {
		historyDB, err = db.InitPostgres(options.DatabaseDSN)
		if err != nil {
			zapLogger.Fatal("cannot init database", zap.Error(err))
		}
		defer historyDB.Close()
		historyRepo = repository.NewPostgresHistoryRepository(historyDB)
	}

	svc := service.NewGeneratorService(password.NewGenerator(), historyRepo, zapLogger)
	store := storage.NewFileStore(options.SaveFile)
	sess := session.New(options.Password, svc, store, clipboard.System{}, zapLogger)

	switch options.Cmd {
	case "generate":
		if err := runGenerate(ctx, os.Stdout, sess, options); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	case "shell":
		repl(ctx, os.Stdin, os.Stdout, sess, svc, options)
	case "tui":
		if err := tui.Run(sess, options.SaveFile); err != nil {
			zapLogger.Fatal("tui failed", zap.Error(err))
		}
	case "history":
		if err := printHistory(ctx, os.Stdout, svc, options.HistoryLimit); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	case "serve":
		ln, err := net.Listen("tcp", options.Addr)
		if err != nil {
			zapLogger.Fatal("cannot listen", zap.String("addr", options.Addr), zap.Error(err))
		}
		if err := serve(ctx, ln, options, svc, historyDB, zapLogger); err != nil {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}
}
