package services

import (
	"gopkg.in/gomail.v2"
)

// Mailer dispatches a single email. Delivery is best effort with no
// confirmation beyond the error of the dispatch call itself.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends plain-text email over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
