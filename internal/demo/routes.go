package demo

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/validated/binder"
	"github.com/dmitrymomot/validated/handler"
	"github.com/dmitrymomot/validated/pkg/httpserver"
	"github.com/dmitrymomot/validated/pkg/logger"
	"github.com/dmitrymomot/validated/pkg/requestid"
	"github.com/dmitrymomot/validated/validate"
	"github.com/dmitrymomot/validated/validate/custom"
	"github.com/dmitrymomot/validated/validate/ozzo"
	"github.com/dmitrymomot/validated/validate/playground"
)

// NewRouter builds the demo API.
func NewRouter(log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(log))

	r.Get("/healthz", httpserver.HealthCheckHandler(log))

	r.Post("/playground/example", wrap(eh, greetPlayground, playground.JSON[PlaygroundExample]()))
	r.Post("/ozzo/example", wrap(eh, greetOzzo, ozzo.JSON[OzzoExample]()))
	r.Post("/ozzo/custom-error", wrap(eh, greetOzzo,
		ozzo.JSON[OzzoExample](validate.WithErrorHandler(CustomErrorHandler)),
	))
	r.Post("/custom/example", wrap(eh, greetCustom, custom.JSON[CustomExample]()))

	r.Get("/search", wrap(eh, search, playground.Query[SearchQuery]()))
	r.Put("/items/{id}", wrap(eh, updateItem,
		playground.Extract(binder.Of[ItemUpdate](binder.BindPath(chi.URLParam), binder.BindJSON())),
	))
	r.Put("/settings", wrap(eh, saveSettings, ozzo.Extract(binder.YAML[Settings]())))
	r.Post("/signup", wrap(eh, signup, custom.Form[Signup]()))

	return r
}

func wrap[R any](
	eh handler.ErrorHandler[handler.Context],
	h handler.HandlerFunc[handler.Context, R],
	ex binder.Extractor[R],
) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithExtractor[handler.Context](ex),
		handler.WithErrorHandler[handler.Context, R](eh),
	)
}

func greetPlayground(_ handler.Context, req playground.Validated[PlaygroundExample]) handler.Response {
	return handler.Text("Hello " + req.Value.Name)
}

func greetOzzo(_ handler.Context, req ozzo.Validated[OzzoExample]) handler.Response {
	return handler.Text("Hello " + req.Value.Name)
}

func greetCustom(_ handler.Context, req custom.Validated[CustomExample]) handler.Response {
	return handler.Text("Hello " + req.Value.Name)
}

func search(_ handler.Context, req playground.Validated[SearchQuery]) handler.Response {
	q := req.Unwrap()
	if q.Limit == 0 {
		q.Limit = 20
	}
	return handler.JSON(q)
}

func updateItem(_ handler.Context, req playground.Validated[ItemUpdate]) handler.Response {
	item := req.Unwrap()
	return handler.JSON(item, handler.WithJSONMeta(map[string]any{"id": item.ID}))
}

func saveSettings(_ handler.Context, req ozzo.Validated[Settings]) handler.Response {
	return handler.JSON(req.Value)
}

func signup(_ handler.Context, req custom.Validated[Signup]) handler.Response {
	return handler.JSON(req.Value, handler.WithJSONStatus(http.StatusCreated))
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			log.LogAttrs(r.Context(), slog.LevelInfo, "request",
				logger.Component("http"),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				logger.Status(ww.Status()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
