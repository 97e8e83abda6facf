// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP logging and JSON helpers for both sides of
the API: the client transport and the local stub backend.

# Client Transport

LoggingTransport tags every outgoing request with an X-Request-ID (a random
UUID unless the caller set one) and logs method, path, status and
duration_ms:

	client := middleware.NewHTTPClient(15 * time.Second)

# Request Logging

Wrap stub backend handlers with request logging:

	mux.HandleFunc("GET /orders", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(duration_ms).

# CORS Middleware

Lets the web frontend call the stub backend during development:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PATCH, OPTIONS with headers Content-Type,
Authorization, X-Request-ID. Any origin is reflected and credentials are
never allowed; do not put it in front of a deployed API.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

ErrorResponse writes the API's {success: false, error, message} shape.

	var req models.ContactRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, X-Real-IP, then RemoteAddr.
*/
package middleware
