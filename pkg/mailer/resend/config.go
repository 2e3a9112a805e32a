package resend

// Config holds the Resend credentials and default sender.
// Parsed from the environment when MAIL_PROVIDER=resend.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME"`
}
