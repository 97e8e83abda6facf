// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/dish4u/auth"
	"github.com/danielhkuo/dish4u/cliparse"
	"github.com/danielhkuo/dish4u/middleware"
	"github.com/danielhkuo/dish4u/models"
)

// Upload size limit for POST /add-item
const maxUploadBytes = 10 << 20

type ItemHandler struct {
	store *Store
	cfg   cliparse.Config
}

func NewItemHandler(store *Store, cfg cliparse.Config) *ItemHandler {
	return &ItemHandler{store: store, cfg: cfg}
}

// AddItem handles POST /add-item
func (h *ItemHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg.AdminToken) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	name := r.FormValue("itemname")
	description := r.FormValue("description")
	priceStr := r.FormValue("price")
	category := r.FormValue("category")
	if name == "" || description == "" || priceStr == "" || category == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "All fields are required")
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid price")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Image is required")
		return
	}
	defer file.Close()

	// The stub keeps only the file name; drain the upload to confirm it arrived whole
	size, err := io.Copy(io.Discard, file)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read image")
		return
	}

	itemID, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate item ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add item")
		return
	}

	item := models.MenuItem{
		ID:          itemID,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       header.Filename,
		CreatedAt:   time.Now().UTC(),
	}
	h.store.AddItem(item)

	slog.Info("menu item added", "item_id", itemID, "itemname", name, "image_bytes", size)

	middleware.JSONResponse(w, http.StatusCreated, models.AddItemResponse{
		Success: true,
		Message: "Item added successfully",
		Item:    &item,
	})
}
