// Command validated-demo serves an HTTP API demonstrating request validation
// with every strategy.
//
//	curl -X POST localhost:8080/playground/example --json '{"name": "foo"}'
//
// Names shorter than five characters are rejected with 400.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/validated/internal/demo"
	"github.com/dmitrymomot/validated/pkg/config"
	"github.com/dmitrymomot/validated/pkg/httpserver"
	"github.com/dmitrymomot/validated/pkg/logger"
	"github.com/dmitrymomot/validated/validate/ozzo"
)

func main() {
	cfg := config.MustLoad[demo.Config]()

	log, err := demo.NewLogger(cfg, os.Stdout)
	if err != nil {
		log.Warn("ignoring LOG_FORMAT", logger.Error(err))
	}
	logger.SetAsDefault(log)

	if cfg.CustomErrors {
		ozzo.SetErrorHandler(demo.CustomErrorHandler)
	}

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), demo.NewRouter(log)); err != nil {
		log.Error("server stopped", logger.Error(err), slog.String("addr", cfg.Server.Addr))
		os.Exit(1)
	}
}
