package email

// Email represents an outgoing message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// SMTPConfig holds SMTP provider configuration.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
}
