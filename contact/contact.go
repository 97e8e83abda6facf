// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contact

import (
	"context"
	"strings"
	"sync"

	"github.com/danielhkuo/dish4u/apiclient"
	"github.com/danielhkuo/dish4u/models"
	"github.com/danielhkuo/dish4u/opstate"
)

const (
	SentMessage           = "Message sent successfully! We'll get back to you soon."
	FailedMessage         = "Failed to send message"
	TransportErrorMessage = "There was an error submitting the form. Please try again."
	MissingFieldsMessage  = "Please fill in all fields."
)

type Sender interface {
	SendContact(ctx context.Context, msg models.ContactRequest) error
}

// Form is the contact form. It is cleared only after a successful send.
type Form struct {
	client  Sender
	tracker opstate.Tracker[struct{}]

	mu      sync.Mutex
	values  models.ContactRequest
	success string
	failure string
}

func NewForm(client Sender) *Form {
	return &Form{client: client}
}

func (f *Form) Set(values models.ContactRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = values
}

func (f *Form) Values() models.ContactRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Messages returns the success and error texts. At most one is set.
func (f *Form) Messages() (success, failure string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.success, f.failure
}

func (f *Form) State() opstate.State[struct{}] {
	return f.tracker.State()
}

func (f *Form) Submit(ctx context.Context) error {
	if err := f.tracker.Begin(); err != nil {
		return err
	}

	f.mu.Lock()
	f.success, f.failure = "", ""
	values := f.values
	f.mu.Unlock()

	if err := Validate(values); err != nil {
		f.setMessages("", MissingFieldsMessage)
		f.tracker.Fail(err)
		return err
	}

	f.tracker.Send()
	if err := f.client.SendContact(ctx, values); err != nil {
		msg := apiclient.Message(err, FailedMessage)
		if apiclient.IsTransport(err) {
			msg = TransportErrorMessage
		}
		f.setMessages("", msg)
		f.tracker.Fail(err)
		return err
	}

	f.mu.Lock()
	f.values = models.ContactRequest{}
	f.success = SentMessage
	f.mu.Unlock()

	f.tracker.Succeed(struct{}{})
	return nil
}

// Validate requires every field to be non-blank.
func Validate(msg models.ContactRequest) error {
	fields := []struct{ name, value string }{
		{"name", msg.Name},
		{"email", msg.Email},
		{"subject", msg.Subject},
		{"message", msg.Message},
	}
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			return &models.ValidationError{Field: field.name, Message: MissingFieldsMessage}
		}
	}
	return nil
}

func (f *Form) setMessages(success, failure string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.success, f.failure = success, failure
}
