package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"trendwatch-backend/pkg/logger"
)

type WelcomeEmailData struct {
	Email    string
	SiteName string
	SiteURL  string
}

// DigestEmailData carries one article line per trending post.
type DigestEmailData struct {
	Email    string
	SiteName string
	SiteURL  string
	Articles []DigestArticle
}

type DigestArticle struct {
	Title string
	URL   string
}

type EmailService interface {
	SendWelcomeEmail(ctx context.Context, data WelcomeEmailData) error
	SendDigestEmail(ctx context.Context, data DigestEmailData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendWelcomeEmail(ctx context.Context, data WelcomeEmailData) error {
	subject := fmt.Sprintf("Welcome to the %s newsletter", data.SiteName)
	body := fmt.Sprintf(`Hi there,

Thanks for subscribing to %s! You'll get our weekly digest of the
stories everyone is talking about.

Read the latest anytime at %s

If this wasn't you, just ignore this email or unsubscribe from any
newsletter we send.`, data.SiteName, data.SiteURL)

	return s.send(ctx, data.Email, subject, body)
}

func (s *smtpEmailService) SendDigestEmail(ctx context.Context, data DigestEmailData) error {
	subject := fmt.Sprintf("%s weekly digest", data.SiteName)

	var lines strings.Builder
	for _, a := range data.Articles {
		fmt.Fprintf(&lines, "  - %s\n    %s\n", a.Title, a.URL)
	}

	body := fmt.Sprintf(`Hi there,

Here's what was trending on %s this week:

%s
More at %s`, data.SiteName, lines.String(), data.SiteURL)

	return s.send(ctx, data.Email, subject, body)
}

func (s *smtpEmailService) send(ctx context.Context, to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg); err != nil {
		logger.Warn("Failed to send email", map[string]interface{}{
			"error":     err.Error(),
			"to":        to,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
