package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/validated/binder"
	"github.com/dmitrymomot/validated/core"
	"github.com/dmitrymomot/validated/pkg/logger"
	"github.com/dmitrymomot/validated/pkg/requestid"
	"github.com/dmitrymomot/validated/validate"
)

const defaultInternalMessage = "An error occurred processing your request"

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// InternalMessage replaces the body text of 5xx responses so internal
	// details never reach the client.
	InternalMessage string
}

// ErrorInfo is the classification of an error.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func statusKey(statusCode int) string {
	return strings.ToLower(strings.ReplaceAll(http.StatusText(statusCode), " ", "_"))
}

// ClassifyError derives the status code, key and message reported for err.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       "internal_error",
		Message:    defaultInternalMessage,
	}

	var (
		re      core.ResponseError
		httpErr core.HTTPError
	)
	switch {
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)
	case errors.As(err, &re):
		info.StatusCode = re.StatusCode()
		info.Code = statusKey(info.StatusCode)
		info.Message = re.Error()
	case binder.IsBindError(err):
		info.StatusCode = binder.StatusCode(err)
		info.Code = statusKey(info.StatusCode)
		info.Message = err.Error()
	}

	info.LogLevel = slog.LevelError
	if isClientError(info.StatusCode) {
		info.LogLevel = slog.LevelWarn
	} else {
		info.Message = defaultInternalMessage
	}
	return info
}

// DefaultErrorHandler is used by Wrap when no error handler is configured.
// It does not log.
func DefaultErrorHandler[C Context](ctx C, err error) {
	render(ctx.ResponseWriter(), ctx.Request(), err, ClassifyError(err), defaultInternalMessage)
}

// NewErrorHandler returns an error handler that logs every error with the
// request id, at warn level for 4xx and error level for 5xx, before rendering
// it like DefaultErrorHandler.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.InternalMessage == "" {
		cfg.InternalMessage = defaultInternalMessage
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := ClassifyError(err)

		attrs := []slog.Attr{
			logger.Component("error_handler"),
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.Status(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		}
		var verr *validate.Error
		if errors.As(err, &verr) {
			attrs = append(attrs, logger.Strategy(verr.Strategy), logger.Violations(len(verr.Violations)))
		}
		log.LogAttrs(r.Context(), info.LogLevel, "request error", attrs...)

		if werr := render(ctx.ResponseWriter(), r, err, info, cfg.InternalMessage); werr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Component("error_handler"),
				logger.RequestID(requestid.FromContext(r.Context())),
				logger.Error(werr),
			)
		}
	}
}

// render lets client-side ResponseErrors draw themselves and writes a
// negotiated JSON or text body for everything else.
func render(w http.ResponseWriter, r *http.Request, err error, info ErrorInfo, internalMessage string) error {
	var re core.ResponseError
	if isClientError(info.StatusCode) && errors.As(err, &re) {
		return re.WriteResponse(w, r)
	}

	message := info.Message
	if !isClientError(info.StatusCode) {
		message = internalMessage
	}

	if core.WantsJSON(r) {
		return core.WriteJSON(w, info.StatusCode, core.ErrorBody{
			Code:    info.Code,
			Message: message,
			Status:  info.StatusCode,
		})
	}
	http.Error(w, message, info.StatusCode)
	return nil
}
