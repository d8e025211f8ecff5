package config

// MailConfig holds the SMTP relay used for report emails
type MailConfig struct {
	Host      string `json:"host" yaml:"host"`
	Port      int    `json:"port" yaml:"port"`
	Username  string `json:"username" yaml:"username"`
	Password  string `json:"-" yaml:"-"` // Never serialize
	From      string `json:"from" yaml:"from"`
	SSL       bool   `json:"ssl" yaml:"ssl"` // Implicit TLS, as on port 465
	TimeoutMS int    `json:"timeoutMs" yaml:"timeoutMs"`
}

// DefaultMailConfig returns the default SMTP configuration
func DefaultMailConfig() MailConfig {
	return MailConfig{
		Host:      "smtp.hostinger.com",
		Port:      465,
		SSL:       true,
		TimeoutMS: 15000,
	}
}

// IsEnabled returns true when credentials are present
func (c *MailConfig) IsEnabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// Sender is the From address, defaulting to the SMTP user
func (c *MailConfig) Sender() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}

func (c *MailConfig) applyEnv() {
	c.Host = getEnv("SMTP_HOST", c.Host)
	c.Port = getEnvInt("SMTP_PORT", c.Port)
	c.Username = getEnv("EMAIL_USER", c.Username)
	c.Password = getEnv("EMAIL_PASS", c.Password)
	c.From = getEnv("EMAIL_FROM", c.From)
	c.SSL = getEnvBool("SMTP_SSL", c.SSL)
}
