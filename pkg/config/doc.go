// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with github.com/caarlos0/env tags. A .env
// file in the working directory, when present, is read once before the first
// load; variables already set in the environment win.
//
//	type Server struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg := config.MustLoad[Server]()
//
// Each type is parsed once per process and cached. A failed parse is not
// cached, so a later call retries.
package config
