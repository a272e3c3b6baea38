package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	nethttp "net/http"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/passgen/internal/config"
	"github.com/atinyakov/passgen/internal/db"
	"github.com/atinyakov/passgen/internal/server/handler/http"
	"github.com/atinyakov/passgen/internal/service"
)

const shutdownTimeout = 5 * time.Second

var pruneInterval = time.Hour

// serve runs the HTTP API on ln until ctx is cancelled. It serves TLS when
// both a certificate and a key are configured.
func serve(ctx context.Context, ln net.Listener, options *config.Options, svc *service.GeneratorService, historyDB *sql.DB, log *zap.Logger) error {
	var pruned <-chan struct{}
	if historyDB != nil {
		retention := time.Duration(options.RetentionDays) * 24 * time.Hour
		pruned = db.StartHistoryPruner(ctx, historyDB, pruneInterval, retention, log)
	}

	router := http.NewRouter(&http.GenerateHandler{Service: svc}, log)
	server := &nethttp.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	var err error
	if options.TLSCert != "" && options.TLSKey != "" {
		log.Info("starting HTTPS server", zap.String("addr", ln.Addr().String()))
		err = server.ServeTLS(ln, options.TLSCert, options.TLSKey)
	} else {
		log.Info("starting HTTP server", zap.String("addr", ln.Addr().String()))
		err = server.Serve(ln)
	}
	if !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	if pruned != nil {
		<-pruned
	}
	log.Info("server stopped")
	return nil
}
