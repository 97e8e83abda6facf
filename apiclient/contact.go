// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/dish4u/models"
)

// SendContact posts a contact message. Any 2xx status is success.
func (c *Client) SendContact(ctx context.Context, msg models.ContactRequest) error {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/contact", msg)
	if err != nil {
		return err
	}
	if _, err := c.do(req, "send contact", nil); err != nil {
		return err
	}

	slog.Info("contact message sent", "email", msg.Email, "subject", msg.Subject)
	return nil
}
