// Package config loads the sixcities client configuration.
//
// # Resolution order
//
//  1. Built-in defaults (Default)
//  2. The TOML file at the given path, or ~/.config/sixcities/config.toml
//  3. A .env file in the working directory
//  4. The process environment
//
// Later steps win. A missing config file or .env file is not an error, so the
// client works out of the box against a local development server.
//
// # TOML format
//
//	api_url = "http://127.0.0.1:8089"
//	request_timeout = "5s"
//	max_inflight = 4
//	log_file = "~/.local/state/sixcities/sixcities.log"
//	log_level = "info"
//
//	[fluent]
//	enabled = false
//	host = "127.0.0.1"
//	port = 24224
//	tag = "sixcities"
//
// Every field is optional. Blank values keep the default and tilde paths are
// expanded.
//
// # Environment
//
// SIXCITIES_API_URL, SIXCITIES_LOG_LEVEL, SIXCITIES_LOG_FILE,
// SIXCITIES_FLUENT_HOST and SIXCITIES_FLUENT_PORT override the file. Setting
// SIXCITIES_FLUENT_HOST also enables fluentd forwarding.
//
// # Errors
//
// Load fails on unreadable files, malformed TOML, unparseable durations or
// log levels, and invalid ports. Errors are wrapped with the step that
// failed ("parse config: ...").
package config
