// Package config provides configuration management for chancli.
//
// Configuration is loaded and merged in the following order, later sources
// overriding earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/chancli/config.yaml)
//  3. Project configuration (./.chancli/config.yaml)
//  4. Environment: CHANCLI_API_URL, CHANCLI_TIMEOUT, CHANCLI_DEBUG and
//     CHANCLI_LOG_LEVEL. A .env file in the working directory is read first
//     and never overrides variables that are already set.
//
// When an explicit path is given (--config), steps 2 and 3 are replaced by
// that single file.
//
// # Configuration Structure
//
//	api:
//	  baseURL: https://a.4cdn.org
//	  timeout: 10s
//	  retryMax: 2
//	  requestsPerSecond: 1
//	  userAgent: chancli
//	ui:
//	  darkMode: true
//	  indent: 4
//	debug: false
//	logLevel: info  # debug, info, warn or error
//
// A zero requestsPerSecond disables client-side rate limiting and a zero
// indent renders comment bodies flush left. Leaving either out keeps the
// default.
package config
