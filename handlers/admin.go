// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/dish4u/auth"
	"github.com/danielhkuo/dish4u/middleware"
)

// requireAdmin checks the bearer token against the configured admin token.
// With no token configured the admin routes are open.
func requireAdmin(w http.ResponseWriter, r *http.Request, adminToken string) bool {
	if adminToken == "" {
		return true
	}
	if err := auth.ValidateAdminToken(auth.BearerToken(r), adminToken); err != nil {
		slog.Warn("admin request rejected", "path", r.URL.Path, "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return false
	}
	return true
}
