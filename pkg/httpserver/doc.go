// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run listens on the configured address and serves until the context is
// cancelled or the process receives SIGINT or SIGTERM, then drains in-flight
// requests within the shutdown timeout:
//
//	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
