package mailer

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// From is the fixed sender address. When empty the provider's own default is used.
	From         string     `env:"MAIL_FROM"`
	BodyFormat   BodyFormat `env:"MAIL_BODY_FORMAT" envDefault:"text"`
	SanitizeHTML bool       `env:"MAIL_SANITIZE_HTML" envDefault:"false"`
}
