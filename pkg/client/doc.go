// Package client calls the mail dispatch endpoint over HTTP.
//
//	c := client.New("http://localhost:8080")
//	resp, err := c.SendEmail(ctx, mailer.Request{To: "a@example.com", Subject: "Hi", Message: "Hello"})
//
// Each call issues exactly one POST to {baseURL}/api/send-email; there are no
// retries. A non-2xx response with a JSON body is returned as *APIError.
// Everything else that goes wrong, including a response body that is not JSON,
// is wrapped in ErrTransport.
package client
