// Package core holds the HTTP error values shared by the binder, handler and
// validate packages.
//
// Two shapes are used across the module:
//
//   - HTTPError is a plain status code plus a machine-readable key. It is what
//     handlers return for "you are not allowed" or "not found" outcomes.
//   - ResponseError is any error that knows how to write itself to the client.
//     Validation failures are converted into ResponseError values so the host
//     error handler can render them without knowing which validation library
//     produced them.
//
// Content negotiation between plain text and JSON bodies is done with WantsJSON.
package core
