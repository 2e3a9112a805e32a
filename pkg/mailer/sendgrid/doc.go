// Package sendgrid delivers mailer.Email messages through the SendGrid v3 mail send API.
//
//	sender := sendgrid.New(sendgrid.Config{
//		APIKey:      os.Getenv("SENDGRID_API_KEY"),
//		SenderEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
//	})
//
// Non-2xx responses are returned as *APIError carrying the status code and the
// messages from the response body.
package sendgrid
