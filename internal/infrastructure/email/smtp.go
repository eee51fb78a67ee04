package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// AdminEmail receives the access request notifications.
	AdminEmail string
}

// SMTPNotifier delivers access request notifications to the site admin over
// SMTP. It implements usecases.AccessNotifier.
type SMTPNotifier struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPNotifier{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPNotifier) NotifyAccessRequested(name, guestID, approvalURL string) error {
	escapedName := html.EscapeString(name)

	subject := fmt.Sprintf("Portfolio access request from %s", name)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Access Request</h2>
			<p><strong>%s</strong> has requested access to your portfolio.</p>
			<p>Guest ID: <code>%s</code></p>
			<p><a href="%s">Approve this request</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>Approved access is valid for 24 hours.</p>
		</body>
		</html>
	`, escapedName, guestID, approvalURL, approvalURL)

	plainBody := fmt.Sprintf(`
New Access Request

%s has requested access to your portfolio.

Guest ID: %s

Approve this request by visiting:
%s

Approved access is valid for 24 hours.
	`, name, guestID, approvalURL)

	return s.sendEmail(s.config.AdminEmail, subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
