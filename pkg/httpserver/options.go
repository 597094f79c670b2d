package httpserver

import (
	"log/slog"
	"time"
)

// Config is the environment-driven server configuration.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Option configures a Server.
type Option func(*settings)

type settings struct {
	cfg Config
	log *slog.Logger
}

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *settings) {
		if addr != "" {
			s.cfg.Addr = addr
		}
	}
}

// WithShutdownTimeout bounds the time spent draining requests on shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.cfg.ShutdownTimeout = d
		}
	}
}

// WithLogger sets the logger for lifecycle events. Without it nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}
