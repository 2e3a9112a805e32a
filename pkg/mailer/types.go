package mailer

import "fmt"

// Tags represents email tags/categories that can be either presence-only
// (using struct{}{}) or key-value pairs (using string values).
//   - SendGrid: tag names become categories
//   - Resend: name-value pairs (presence-only tags become name="true")
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Headers map[string]string // Custom headers
	Tags    Tags              // Provider-specific tags/categories
	Subject string            // Email subject
	HTML    string            // HTML body content
	Text    string            // Plain text alternative
	From    string            // Sender; providers fall back to their configured address
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
}

// Validate checks the fields every provider needs.
func (e *Email) Validate() error {
	switch {
	case len(e.To) == 0 || e.To[0] == "":
		return ErrNoRecipient
	case e.Subject == "":
		return ErrNoSubject
	case e.Text == "" && e.HTML == "":
		return ErrNoContent
	}
	return nil
}

// Request is the payload accepted by the dispatch endpoint and posted by the form.
// Values are used exactly as received.
type Request struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate returns ErrMissingFields if any field is empty.
func (r Request) Validate() error {
	if r.To == "" || r.Subject == "" || r.Message == "" {
		return ErrMissingFields
	}
	return nil
}

// Presence reports which fields are non-empty, keyed by JSON name.
func (r Request) Presence() map[string]bool {
	return map[string]bool{
		"to":      r.To != "",
		"subject": r.Subject != "",
		"message": r.Message != "",
	}
}
