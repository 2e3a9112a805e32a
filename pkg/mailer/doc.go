// Package mailer turns a submitted email request into a provider message and
// hands it to a Sender.
//
// Providers implement the one-method [Sender] interface. Real delivery lives
// in the sendgrid and resend subpackages; [LogSender] and [MemorySender] are
// for development and tests.
//
//	sender := sendgrid.New(sendgrid.Config{
//		APIKey:      os.Getenv("SENDGRID_API_KEY"),
//		SenderEmail: "noreply@example.com",
//	})
//	m := mailer.New(sender, mailer.Config{From: "noreply@example.com"})
//
//	err := m.Send(ctx, mailer.Request{
//		To:      "user@example.com",
//		Subject: "Hello",
//		Message: "Line one\nLine two",
//	})
//
// # Body formats
//
// The plain-text body is always the message as posted. The HTML body depends
// on Config.BodyFormat:
//
//   - "text" (default): the message wrapped in <p>, newlines become <br>.
//     The message is not escaped.
//   - "markdown": the message rendered with goldmark. Raw HTML is dropped.
//
// Config.SanitizeHTML additionally runs the HTML body through a bluemonday policy.
//
// # Errors
//
// [Mailer.Send] returns [ErrMissingFields] before any provider call when a
// field is empty. Provider failures are joined with [ErrSendFailed];
// [ErrorDetails] recovers the provider's own message for display.
package mailer
