// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/danielhkuo/dish4u/apiclient"
	"github.com/danielhkuo/dish4u/auth"
	"github.com/danielhkuo/dish4u/models"
	"github.com/danielhkuo/dish4u/opstate"
)

// Item form messages
const (
	ItemMissingFieldsMessage = "Please fill all fields and upload an image."
	ItemAddedMessage         = "Item added successfully!"
	ItemFailedMessage        = "Failed to add item."
)

type ItemUploader interface {
	AddItem(ctx context.Context, session auth.Session, item apiclient.NewItem) error
}

// ItemFields are the text inputs of the form. Price is kept as typed.
type ItemFields struct {
	Name        string
	Description string
	Price       string
	Category    string
}

type ItemForm struct {
	client  ItemUploader
	session auth.Session
	tracker opstate.Tracker[struct{}]

	mu        sync.Mutex
	fields    ItemFields
	imageName string
	image     []byte
	success   string
	failure   string
}

func NewItemForm(client ItemUploader, session auth.Session) (*ItemForm, error) {
	if err := auth.RequireAdmin(session); err != nil {
		return nil, err
	}
	return &ItemForm{client: client, session: session}, nil
}

func (f *ItemForm) SetFields(fields ItemFields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

func (f *ItemForm) Fields() ItemFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// SetImage selects the image to upload. It doubles as the preview.
func (f *ItemForm) SetImage(name string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.imageName = name
	f.image = data
}

// ReadImage selects an image from r.
func (f *ItemForm) ReadImage(name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read image %s: %w", name, err)
	}
	f.SetImage(name, data)
	return nil
}

// Preview returns the selected image name, or "" when none is selected.
func (f *ItemForm) Preview() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.image == nil {
		return ""
	}
	return f.imageName
}

// Messages returns the success and error texts. At most one is set.
func (f *ItemForm) Messages() (success, failure string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.success, f.failure
}

func (f *ItemForm) State() opstate.State[struct{}] {
	return f.tracker.State()
}

// Submit uploads the item. Incomplete input is rejected locally.
func (f *ItemForm) Submit(ctx context.Context) error {
	if err := f.tracker.Begin(); err != nil {
		return err
	}

	f.mu.Lock()
	f.success, f.failure = "", ""
	fields, imageName, image := f.fields, f.imageName, f.image
	f.mu.Unlock()

	if fields.Name == "" || fields.Description == "" || fields.Price == "" || fields.Category == "" || image == nil {
		err := &models.ValidationError{Message: ItemMissingFieldsMessage}
		f.setMessages("", ItemMissingFieldsMessage)
		f.tracker.Fail(err)
		return err
	}

	f.tracker.Send()
	err := f.client.AddItem(ctx, f.session, apiclient.NewItem{
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
		Category:    fields.Category,
		ImageName:   imageName,
		Image:       bytes.NewReader(image),
	})
	if err != nil {
		f.session.Logger().Warn("failed to add menu item", "name", fields.Name, "error", err)
		f.setMessages("", apiclient.Message(err, ItemFailedMessage))
		f.tracker.Fail(err)
		return err
	}

	f.mu.Lock()
	f.fields = ItemFields{}
	f.imageName, f.image = "", nil
	f.success = ItemAddedMessage
	f.mu.Unlock()

	f.session.Logger().Info("menu item added", "name", fields.Name, "category", fields.Category)
	f.tracker.Succeed(struct{}{})
	return nil
}

func (f *ItemForm) setMessages(success, failure string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.success, f.failure = success, failure
}
