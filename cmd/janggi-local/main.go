package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"janggi/internal/server/game"
	httpserver "janggi/internal/server/http"
)

func main() {
	addr := flag.String("addr", getenv("JANGGI_ADDR", ":2888"), "listen address")
	level := flag.String("log-level", getenv("JANGGI_LOG_LEVEL", "info"), "logrus level (debug, info, warn, error)")
	jsonLogs := flag.Bool("log-json", getenb("JANGGI_LOG_JSON", false), "log as JSON")
	flag.Parse()

	if err := setupLogging(*level, *jsonLogs); err != nil {
		logrus.Fatalf("log level: %v", err)
	}

	h := httpserver.NewHandler(game.NewManager(), logrus.StandardLogger())
	srv := httpserver.NewServer(*addr, h)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.Infof("listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logrus.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.Fatal(err)
	}
}

func setupLogging(level string, asJSON bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	if asJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
