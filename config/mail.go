package config

// MailConfig configures outgoing account email (verification and
// password reset links). When Host is empty the service falls back to
// the dev log mailer.
type MailConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM" envDefault:"no-reply@carmodpicker.local"`
}

// Enabled reports whether SMTP delivery is configured.
func (c MailConfig) Enabled() bool { return c.Host != "" }
