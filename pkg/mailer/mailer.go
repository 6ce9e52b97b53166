// Package mailer relays lead notifications over SMTP. Sending is a
// best-effort convenience: callers must treat every error here as a soft
// warning, never as a failure of the lead capture itself.
package mailer

import (
	"errors"
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/MarloFC/ArchProj/pkg/config"
)

// ErrNotConfigured is returned when the SMTP transport is not set up.
var ErrNotConfigured = errors.New("smtp transport not configured")

// Lead carries the fields included in a notification message.
type Lead struct {
	Name    string
	Email   string
	Message string
	Project string
}

// Sender delivers a lead notification to a recipient address.
type Sender interface {
	SendLeadNotification(recipient string, lead Lead) error
	Configured() bool
}

// SMTPSender is the gomail-backed Sender used in production.
type SMTPSender struct {
	cfg *config.SMTPConfig
}

// New creates an SMTPSender from configuration.
func New(cfg *config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Configured reports whether the transport has enough settings to attempt a send.
func (s *SMTPSender) Configured() bool {
	return s.cfg != nil && s.cfg.Configured()
}

// SendLeadNotification sends the new-lead email to the recipient address.
func (s *SMTPSender) SendLeadNotification(recipient string, lead Lead) error {
	if !s.Configured() {
		return ErrNotConfigured
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.User, s.cfg.FromName)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", fmt.Sprintf("New Lead: %s - %s", lead.Name, lead.Project))
	m.SetBody("text/html", leadBody(lead))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	d.SSL = s.cfg.Secure

	return d.DialAndSend(m)
}

func leadBody(lead Lead) string {
	var b strings.Builder
	b.WriteString("<h2>New Lead Received!</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", htmlEscape(lead.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", htmlEscape(lead.Email))
	fmt.Fprintf(&b, "<p><strong>Project Type:</strong> %s</p>", htmlEscape(lead.Project))
	b.WriteString("<h3>Message:</h3>")
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(htmlEscape(lead.Message), "\n", "<br>"))
	b.WriteString("<hr><p style=\"color: #666; font-size: 12px;\">This contact was sent through your website's contact form.</p>")
	return b.String()
}

// Contact-form input is untrusted and must never reach an HTML body unescaped.
func htmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return r.Replace(s)
}
