// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags reads the global flags and returns the Config plus the
subcommand arguments that follow them:

	cfg, rest, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-api          Backend base URL
	-t            State store driver (sqlite or postgres)
	-d            State store DSN
	-timeout      HTTP timeout
	-fee          Delivery fee
	-admin-token  Admin bearer token
	-log-level    Log level

# Environment Variables

Flags fall back to environment variables:

	API_BASE_URL  → -api         (default https://my-project-932b.onrender.com/api)
	STATE_DRIVER  → -t           (default sqlite)
	STATE_DSN     → -d           (default dish4u.db)
	HTTP_TIMEOUT  → -timeout     (default 15s)
	DELIVERY_FEE  → -fee         (default 50)
	ADMIN_TOKEN   → -admin-token
	LOG_LEVEL     → -log-level   (default info)
	LOG_FORMAT    text or json   (default text)

A .env file in the working directory is loaded first. It never overrides
variables already present in the environment. CLI flags take precedence
over both.

# Logging

	cliparse.SetupLogger(cfg, os.Stderr)

installs a slog text or JSON handler as the default logger.
*/
package cliparse
