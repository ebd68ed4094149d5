package utils

import (
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"regexp"
	"strings"
)

var ErrInvalidRecipient = errors.New("invalid recipient address")

// ErrDeliveryFailed wraps the transport's own message so the boundary can
// surface it.
var ErrDeliveryFailed = errors.New("email delivery failed")

var emailShape = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*@([\w-]+\.)+[a-zA-Z]{2,7}$`)

// Mailer dispatches plain-text notifications over SMTP. When no SMTP
// credentials are configured it logs the message instead of dialing out.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

func NewMailer(host, port, username, password, fromName string) *Mailer {
	return &Mailer{Host: host, Port: port, Username: username, Password: password, FromName: fromName}
}

func (m *Mailer) configured() bool {
	return m.Host != "" && m.Port != "" && m.Username != "" && m.Password != ""
}

// SendEmail validates the recipient before any dialing happens, then formats
// and dispatches the message.
func (m *Mailer) SendEmail(to, subject, body string) error {
	if !emailShape.MatchString(strings.TrimSpace(to)) {
		return ErrInvalidRecipient
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	subject = safe(subject)

	if !m.configured() {
		log.Printf("[MOCK EMAIL] to:%s subject:%s", to, subject)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", m.FromName, m.Username)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	if err := smtp.SendMail(addr, auth, m.Username, []string{to}, []byte(sb.String())); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	log.Printf("Email sent to %s", to)
	return nil
}
