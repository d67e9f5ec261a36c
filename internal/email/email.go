package email

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/mshulgin/go-account-service/internal/logger"
)

// ErrDelivery is returned when the mail transport rejects or fails a send.
var ErrDelivery = errors.New("email delivery failed")

// Template holds the subject and HTML body of a verification-code email.
// The body has one %s verb for the code.
type Template struct {
	Subject string
	Body    string
}

// TemplateLogin is sent for email-code logins.
var TemplateLogin = Template{
	Subject: "Your login verification code",
	Body: `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 520px; margin: 0 auto; padding: 16px;">
    <h2>Login verification</h2>
    <p>Your login code is:</p>
    <div style="font-size: 28px; font-weight: bold; letter-spacing: 3px;">%s</div>
    <p>If you did not request this code, you can ignore this email.</p>
  </div>
</body>
</html>`,
}

// TemplateReset is sent for password resets.
var TemplateReset = Template{
	Subject: "Your password reset code",
	Body: `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 520px; margin: 0 auto; padding: 16px;">
    <h2>Password reset</h2>
    <p>Your password reset code is:</p>
    <div style="font-size: 28px; font-weight: bold; letter-spacing: 3px;">%s</div>
    <p>If you did not request a reset, you can ignore this email.</p>
  </div>
</body>
</html>`,
}

// Sender delivers verification codes over SMTP.
type Sender struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

// NewSender creates an SMTP sender.
func NewSender(host string, port int, user, password, from string) *Sender {
	return &Sender{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
	}
}

// SendVerificationCode emails the plaintext code to the recipient using the
// given template.
func (s *Sender) SendVerificationCode(to, code string, t Template) error {
	if s.host == "" || s.user == "" || s.from == "" {
		return fmt.Errorf("%w: smtp config missing", ErrDelivery)
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("%w: empty recipient", ErrDelivery)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", t.Subject)
	m.SetBody("text/html", fmt.Sprintf(t.Body, code))

	d := gomail.NewDialer(s.host, s.port, s.user, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	logger.Log.Infow("verification email sent", "to", to)
	return nil
}
