// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/danielhkuo/dish4u/auth"
)

// NewItem is a menu item upload. Price stays a string; the form sends it
// as typed.
type NewItem struct {
	Name        string
	Description string
	Price       string
	Category    string
	ImageName   string
	Image       io.Reader
}

// AddItem uploads a menu item as multipart/form-data. Only 201 Created
// counts as success.
func (c *Client) AddItem(ctx context.Context, session auth.Session, item NewItem) error {
	body, contentType, err := encodeItem(item)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/add-item", body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	session.SetBearer(req)

	status, respBody, err := c.send(req, "add item")
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return &APIError{StatusCode: status, Message: serverMessage(respBody)}
	}

	slog.Info("menu item added", "itemname", item.Name, "category", item.Category)
	return nil
}

func encodeItem(item NewItem) (*bytes.Buffer, string, error) {
	if item.Image == nil {
		return nil, "", fmt.Errorf("image is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"itemname", item.Name},
		{"description", item.Description},
		{"price", item.Price},
		{"category", item.Category},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", f.name, err)
		}
	}

	name := item.ImageName
	if name == "" {
		name = "image"
	}
	part, err := w.CreateFormFile("image", name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create image part: %w", err)
	}
	if _, err := io.Copy(part, item.Image); err != nil {
		return nil, "", fmt.Errorf("failed to copy image: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
