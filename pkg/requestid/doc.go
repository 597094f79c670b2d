// Package requestid attaches a correlation identifier to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header supplied by the client or
// generates a time-ordered UUID otherwise. The identifier is stored in the
// request context, echoed in the response header and picked up by the logger
// through LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// Handlers and error handlers read it with FromContext.
package requestid
