// Package resend delivers mailer.Email messages through the Resend API.
//
// The sender address defaults to "SenderName <SenderEmail>" unless the email
// carries its own From.
package resend
