package sendgrid

// Config holds SendGrid email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string `env:"SENDGRID_API_KEY"`
	SenderEmail string `env:"SENDGRID_FROM_EMAIL"`
	SenderName  string `env:"SENDGRID_FROM_NAME"`
	// Host overrides the API base URL. Empty means https://api.sendgrid.com.
	Host string `env:"SENDGRID_HOST"`
}
