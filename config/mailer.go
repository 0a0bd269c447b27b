package config

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"
	"time"

	mail "github.com/go-mail/mail/v2"
)

const smtpDialTimeout = 5 * time.Second

// SMTPSettings holds the optional outgoing mail configuration.
type SMTPSettings struct {
	Host          string
	Port          int
	User          string
	Pass          string
	From          string // e.g. "Review Requester <no-reply@your.org>"
	SkipTLSVerify bool
}

// LoadSMTPSettings reads SMTP_* variables. Port defaults to 587.
func LoadSMTPSettings() SMTPSettings {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return SMTPSettings{
		Host:          os.Getenv("SMTP_HOST"),
		Port:          port,
		User:          os.Getenv("SMTP_USER"),
		Pass:          os.Getenv("SMTP_PASS"),
		From:          os.Getenv("SMTP_FROM"),
		SkipTLSVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1",
	}
}

// Configured reports whether enough is set to send mail.
func (s SMTPSettings) Configured() bool {
	return s.Host != "" && s.From != ""
}

// Mailer sends HTML mail over SMTP with mandatory STARTTLS.
type Mailer struct {
	settings SMTPSettings
}

func NewMailer(settings SMTPSettings) *Mailer {
	return &Mailer{settings: settings}
}

// Enabled reports whether the mailer has an SMTP host and sender.
func (m *Mailer) Enabled() bool {
	return m != nil && m.settings.Configured()
}

func (m *Mailer) SendMail(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}
	if !m.Enabled() {
		return fmt.Errorf("smtp not configured (SMTP_HOST/SMTP_FROM)")
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.settings.From)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	d := mail.NewDialer(m.settings.Host, m.settings.Port, m.settings.User, m.settings.Pass)
	d.Timeout = smtpDialTimeout
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         m.settings.Host,
		InsecureSkipVerify: m.settings.SkipTLSVerify,
	}

	return d.DialAndSend(msg)
}
