package mailer

import (
	"context"
	"slices"
	"sync"
)

// MemorySender records every sent email. Safe for concurrent use.
// Set Err to make subsequent sends fail.
type MemorySender struct {
	mu     sync.Mutex
	emails []Email
	err    error
}

// NewMemorySender creates an empty MemorySender.
func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

// Send implements Sender.
func (s *MemorySender) Send(_ context.Context, email *Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	s.emails = append(s.emails, *email)
	return nil
}

// FailWith makes subsequent sends return err. Pass nil to succeed again.
func (s *MemorySender) FailWith(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Emails returns a copy of the recorded emails in send order.
func (s *MemorySender) Emails() []Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.emails)
}

// Reset drops all recorded emails.
func (s *MemorySender) Reset() {
	s.mu.Lock()
	s.emails = nil
	s.mu.Unlock()
}
