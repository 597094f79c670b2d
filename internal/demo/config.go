package demo

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/validated/pkg/httpserver"
	"github.com/dmitrymomot/validated/pkg/logger"
	"github.com/dmitrymomot/validated/pkg/requestid"
)

// Config is the demo server configuration.
type Config struct {
	Env       string     `env:"APP_ENV" envDefault:"development"`
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"LOG_FORMAT"`
	// CustomErrors installs CustomErrorHandler for the ozzo strategy process-wide.
	CustomErrors bool `env:"CUSTOM_ERRORS" envDefault:"false"`

	Server httpserver.Config
}

// NewLogger builds the application logger from cfg.
// An invalid LOG_FORMAT is reported and the environment default kept.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "validated-demo"),
		logger.WithLevel(cfg.LogLevel),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}

	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return logger.New(opts...), err
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}
