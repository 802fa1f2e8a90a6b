package portfolio

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

var ErrUnknownField = errors.New("portfolio: unknown contact field")

type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
)

func ParseField(s string) (Field, error) {
	switch f := Field(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldName, FieldEmail:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownField, s)
	}
}

// ContactDraft is unvalidated, unpersisted contact form input.
type ContactDraft struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (d ContactDraft) IsEmpty() bool {
	return d.Name == "" && d.Email == ""
}

// UpdateField returns a copy of d with exactly one field replaced.
func UpdateField(d ContactDraft, field Field, value string) (ContactDraft, error) {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	default:
		return d, fmt.Errorf("%w %q", ErrUnknownField, field)
	}
	return d, nil
}

// Acknowledger is told about every submitted draft, synchronously.
type Acknowledger interface {
	Acknowledge(draft ContactDraft, message string)
}

type AcknowledgerFunc func(draft ContactDraft, message string)

func (f AcknowledgerFunc) Acknowledge(draft ContactDraft, message string) { f(draft, message) }

// LogAcknowledger writes submissions to the process log.
type LogAcknowledger struct{}

func (LogAcknowledger) Acknowledge(draft ContactDraft, _ string) {
	log.Printf("[contact] submission received name=%q email=%q", draft.Name, draft.Email)
}

type SubmissionResult struct {
	Submitted ContactDraft `json:"submitted"`
	Message   string       `json:"message"`
	Draft     ContactDraft `json:"draft"`
}

// AcknowledgmentMessage is the text shown to the visitor after submitting.
func AcknowledgmentMessage(d ContactDraft) string {
	return fmt.Sprintf("Email enviado!\nNome: %s\nEmail: %s", d.Name, d.Email)
}

// ContactDraftController holds the draft between input events.
type ContactDraftController struct {
	draft ContactDraft
	ack   Acknowledger
}

func NewContactDraftController(ack Acknowledger) *ContactDraftController {
	if ack == nil {
		ack = LogAcknowledger{}
	}
	return &ContactDraftController{ack: ack}
}

func (c *ContactDraftController) Draft() ContactDraft {
	return c.draft
}

func (c *ContactDraftController) UpdateField(field Field, value string) (ContactDraft, error) {
	next, err := UpdateField(c.draft, field, value)
	if err != nil {
		return c.draft, err
	}
	c.draft = next
	return c.draft, nil
}

// Submit acknowledges the current draft and resets it. Empty drafts are
// submitted like any other.
func (c *ContactDraftController) Submit() SubmissionResult {
	submitted := c.draft
	msg := AcknowledgmentMessage(submitted)
	c.ack.Acknowledge(submitted, msg)
	c.draft = ContactDraft{}
	return SubmissionResult{Submitted: submitted, Message: msg, Draft: c.draft}
}
