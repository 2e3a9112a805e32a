package mailer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dmitrymomot/mailform/pkg/sanitizer"
)

// BodyFormat selects how the HTML body is produced from the message.
type BodyFormat string

const (
	// BodyFormatText wraps the message in a paragraph with <br> line breaks.
	BodyFormatText BodyFormat = "text"
	// BodyFormatMarkdown renders the message as markdown.
	BodyFormatMarkdown BodyFormat = "markdown"
)

// Valid reports whether f is a known format. The empty format means text.
func (f BodyFormat) Valid() bool {
	switch f {
	case "", BodyFormatText, BodyFormatMarkdown:
		return true
	}
	return false
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// FormatHTML wraps message in <p> and replaces each "\n" with "<br>".
// The message is not escaped.
func FormatHTML(message string) string {
	return "<p>" + strings.ReplaceAll(message, "\n", "<br>") + "</p>"
}

// FormatMarkdown renders message as GitHub-flavored markdown.
// Raw HTML in the message is omitted.
func FormatMarkdown(message string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(message), &buf); err != nil {
		return "", fmt.Errorf("mailer: render markdown: %w", err)
	}
	return buf.String(), nil
}

// formatBody produces the HTML body for message according to cfg.
func formatBody(cfg Config, message string) (string, error) {
	var (
		html string
		err  error
	)

	switch cfg.BodyFormat {
	case "", BodyFormatText:
		html = FormatHTML(message)
	case BodyFormatMarkdown:
		html, err = FormatMarkdown(message)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBodyFormat, cfg.BodyFormat)
	}

	if cfg.SanitizeHTML {
		html = sanitizer.SanitizeHTML(html)
	}
	return html, nil
}
