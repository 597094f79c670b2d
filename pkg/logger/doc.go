// Package logger builds *slog.Logger instances for the module and its demo
// server and keeps attribute naming consistent across packages.
//
// New applies functional options on top of production-safe defaults (JSON,
// info level, stdout):
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "validated-demo"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// Three output formats are available. FormatJSON and FormatText use the
// standard slog handlers; FormatPretty uses github.com/lmittmann/tint with
// colours enabled only when the output is a terminal.
//
// Attribute helpers (Error, Component, Strategy, RequestID ...) return an empty
// slog.Attr for nil inputs so they can be passed unconditionally:
//
//	log.Warn("request error", logger.Error(err), logger.Status(400))
package logger
