package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/dish4u/cliparse"
	"github.com/danielhkuo/dish4u/handlers"
	"github.com/danielhkuo/dish4u/middleware"
	"github.com/danielhkuo/dish4u/router"
)

// runStubServer serves the in-memory backend until ctx is cancelled.
func runStubServer(ctx context.Context, cfg cliparse.Config, args []string) error {
	var portFlag int

	fs := newFlagSet("stub-server")
	fs.IntVar(&portFlag, "p", 0, "Listen port")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	port, err := cliparse.ParsePort(portFlag)
	if err != nil {
		return err
	}

	mux := router.NewRouter(handlers.NewStore(), cfg)
	server := &http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Listening", "port", port, "api", "http://localhost:"+strconv.Itoa(port)+router.APIPrefix)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	slog.Info("Server closed", "error", err)
	return err
}
