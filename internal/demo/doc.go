// Package demo wires the three validation strategies into an HTTP API used by
// cmd/validated-demo.
package demo
