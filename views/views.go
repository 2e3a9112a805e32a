// Package views renders the email form page with templ components.
package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/mailform/pkg/form"
)

// FormID is the DOM id of the form element; htmx swaps it in place.
const FormID = "email-form"

// htmxScript is loaded from a CDN pinned to a known version.
const htmxScript = `<script src="https://unpkg.com/htmx.org@2.0.4"></script>`

const styles = `<style>
body{font-family:system-ui,sans-serif;background:#f4f4f5;display:flex;justify-content:center;padding:3rem 1rem}
.card{background:#fff;border:2px solid #18181b;box-shadow:4px 4px 0 #18181b;padding:1.5rem;width:100%;max-width:28rem}
label{display:block;font-weight:600;margin:.75rem 0 .25rem}
input,textarea{width:100%;box-sizing:border-box;border:2px solid #18181b;padding:.5rem;font:inherit}
textarea{min-height:8rem}
button{margin-top:1rem;width:100%;padding:.6rem;border:2px solid #18181b;background:#18181b;color:#fff;font-weight:600;cursor:pointer}
button:disabled{opacity:.6;cursor:wait}
.htmx-indicator{margin:.5rem 0 0}
.status{margin-top:1rem;padding:.5rem;border:2px solid}
.status-success{border-color:#15803d;color:#15803d}
.status-error{border-color:#b91c1c;color:#b91c1c}
</style>`

// Page renders the full HTML document around the form.
func Page(f *form.Form, action string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1"><title>Send Email</title>`+
			htmxScript+styles+`</head><body><main class="card"><h1>Send Email</h1>`); err != nil {
			return err
		}
		if err := EmailForm(f, action).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// EmailForm renders the form fragment.
// While a request is in flight htmx disables the submit button (hx-disabled-elt)
// and shows the "Sending..." indicator. The server renders only finished
// submissions, so the fragment never carries a loading state of its own.
func EmailForm(f *form.Form, action string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<form id="` + FormID + `" method="post" action="` + templ.EscapeString(action) + `"`)
		b.WriteString(` hx-post="` + templ.EscapeString(action) + `" hx-target="this" hx-swap="outerHTML" hx-disabled-elt="find button">`)

		field(&b, "to", "To", "email", "recipient@example.com", f.Fields.To)
		field(&b, "subject", "Subject", "text", "Subject", f.Fields.Subject)

		b.WriteString(`<label for="message">Message</label>`)
		b.WriteString(`<textarea id="message" name="message" placeholder="Your message" required>`)
		b.WriteString(templ.EscapeString(f.Fields.Message))
		b.WriteString(`</textarea>`)

		b.WriteString(`<button type="submit">Send Email</button>`)
		b.WriteString(`<p class="htmx-indicator" aria-live="polite">Sending...</p>`)

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := StatusBanner(f.Status, f.Message).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</form>`)
		return err
	})
}

// StatusBanner renders the outcome of the last submission. Idle renders nothing.
func StatusBanner(status form.Status, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if status == form.StatusIdle || status == "" || message == "" {
			return nil
		}
		role := "status"
		if status == form.StatusError {
			role = "alert"
		}
		_, err := io.WriteString(w, `<p class="status status-`+templ.EscapeString(string(status))+`" role="`+role+`">`+
			templ.EscapeString(message)+`</p>`)
		return err
	})
}

func field(b *strings.Builder, name, label, typ, placeholder, value string) {
	name = templ.EscapeString(name)
	b.WriteString(`<label for="` + name + `">` + templ.EscapeString(label) + `</label>`)
	b.WriteString(`<input id="` + name + `" name="` + name + `" type="` + templ.EscapeString(typ) + `"`)
	b.WriteString(` placeholder="` + templ.EscapeString(placeholder) + `"`)
	b.WriteString(` value="` + templ.EscapeString(value) + `" required>`)
}
