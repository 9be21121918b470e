package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPMailer sends confirmation mail over plain SMTP.
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

// SendConfirmation mails the visitor a short confirmation addressed by name,
// with plain-text and HTML bodies.
func (m *SMTPMailer) SendConfirmation(ctx context.Context, to, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "We received your details – US Cryotherapy")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nThanks for reaching out! We've received your details and a member of our team will be in touch shortly to finish setting up your visit.\n\nStay cool,\nThe US Cryotherapy Team", name))
	msg.AddAlternative("text/html", fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for reaching out! We've received your details and a member of our team will be in touch shortly to finish setting up your visit.</p><p>Stay cool,<br>The US Cryotherapy Team</p>", name))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: send confirmation to %s: %w", to, err)
	}
	return nil
}
