// Package validate wraps request extractors with a validation step.
//
// Extract takes any binder.Extractor[T] and a Strategy and returns a new
// extractor that yields Validated[T]. For every request the wrapped extractor:
//
//  1. runs the inner extractor and returns its error unchanged on failure;
//  2. runs the strategy's validation exactly once;
//  3. on a validation failure, converts it into a request error using, in
//     order, the handler passed with WithErrorHandler, the handler stored in
//     the strategy's Slot, or the strategy's default conversion (HTTP 400);
//  4. otherwise yields the payload unchanged.
//
// Strategies live in sub-packages, one per validation backend:
//
//   - validate/playground: github.com/go-playground/validator/v10 struct tags
//   - validate/ozzo: github.com/go-ozzo/ozzo-validation/v4 rules
//   - validate/custom: the in-house Rule set and Validatable interface
//
// Each sub-package owns a process-wide Slot for its error handler. Set it once
// during application setup:
//
//	playground.SetErrorHandler(func(errs validator.ValidationErrors, r *http.Request) error {
//		return core.NewHTTPError(http.StatusUnprocessableEntity, "invalid_payload")
//	})
//
// and use the typed extractors in handlers:
//
//	http.HandleFunc("/users", handler.Wrap(
//		func(ctx handler.Context, req playground.Validated[CreateUser]) handler.Response {
//			return handler.JSON(req.Value)
//		},
//		handler.WithExtractor[handler.Context](playground.JSON[CreateUser]()),
//	))
package validate
