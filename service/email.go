package service

import (
	"fmt"
	"html"
	"log"
	"net/smtp"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/go-playground/validator/v10"
)

// EmailService notifies a card owner when a new lead is captured.
type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
}

var (
	emailServiceInstance *EmailService
	emailServiceOnce     sync.Once
)

// GetEmailService returns a singleton instance of EmailService
// This ensures we only read environment variables once and reuse the service
func GetEmailService() *EmailService {
	emailServiceOnce.Do(func() {
		emailServiceInstance = NewEmailService()
	})
	return emailServiceInstance
}

// NewEmailService creates a new EmailService instance (for testing or custom config)
// For production use, prefer GetEmailService() singleton
func NewEmailService() *EmailService {
	return &EmailService{
		smtpHost:     getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		smtpPort:     getEnvOrDefault("SMTP_PORT", "587"),
		smtpUsername: os.Getenv("SMTP_USERNAME"),
		smtpPassword: os.Getenv("SMTP_PASSWORD"),
		fromEmail:    os.Getenv("SMTP_FROM_EMAIL"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// sanitizeEmailHeader removes dangerous characters that could be used for header injection
func sanitizeEmailHeader(input string) string {
	sanitized := strings.ReplaceAll(input, "\r", "")
	sanitized = strings.ReplaceAll(sanitized, "\n", "")
	sanitized = strings.ReplaceAll(sanitized, "\x00", "")
	sanitized = strings.Map(func(r rune) rune {
		if r < 32 && r != 9 { // Allow tab (9) but remove other control chars
			return -1
		}
		return r
	}, sanitized)
	return strings.TrimSpace(sanitized)
}

var emailValidator = validator.New()

// sanitizeEmailAddress validates and sanitizes an email address for use in headers
func sanitizeEmailAddress(email string) (string, error) {
	if err := emailValidator.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("invalid email format: %w", err)
	}

	sanitized := sanitizeEmailHeader(email)
	if sanitized == "" {
		return "", fmt.Errorf("email cannot be empty")
	}

	return sanitized, nil
}

// generateLeadHTML renders the HTML version of the new-lead notification
func generateLeadHTML(lead *models.Lead, cardName string) string {
	escapedName := html.EscapeString(lead.Name)
	escapedEmail := html.EscapeString(lead.Email)
	escapedNotes := strings.ReplaceAll(html.EscapeString(lead.Notes), "\n", "<br>")
	timestamp := lead.CreatedAt.Format("January 2, 2006 at 3:04 PM")

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>New Lead Captured</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<div style="background-color: #e0f2fe; padding: 20px; border-radius: 5px; margin-bottom: 20px;">
		<h2 style="color: #0ea5e9; margin-top: 0;">New Lead Captured</h2>
		<p style="color: #7f8c8d; font-size: 14px; margin: 0;">Captured on %s via %s</p>
	</div>

	<div style="background-color: #ffffff; padding: 20px; border: 1px solid #ddd; border-radius: 5px; margin-bottom: 20px;">
		<div style="margin-bottom: 15px;">
			<strong style="color: #2c3e50; display: inline-block; width: 80px;">Name:</strong>
			<span style="color: #34495e;">%s</span>
		</div>
		<div style="margin-bottom: 15px;">
			<strong style="color: #2c3e50; display: inline-block; width: 80px;">Email:</strong>
			<a href="mailto:%s" style="color: #3498db; text-decoration: none;">%s</a>
		</div>
		<div style="margin-bottom: 15px;">
			<strong style="color: #2c3e50; display: inline-block; width: 80px;">Card:</strong>
			<span style="color: #34495e;">%s</span>
		</div>
		<div style="color: #34495e; white-space: pre-wrap;">%s</div>
	</div>
</body>
</html>`, timestamp, html.EscapeString(lead.Source), escapedName, escapedEmail, escapedEmail, html.EscapeString(cardName), escapedNotes)
}

// SendLeadNotification emails the card owner about a freshly captured lead.
func (es *EmailService) SendLeadNotification(ownerEmail string, lead *models.Lead, cardName string) error {
	// Validate required configuration
	if es.smtpUsername == "" || es.smtpPassword == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}
	if es.fromEmail == "" {
		return fmt.Errorf("SMTP_FROM_EMAIL not configured")
	}

	sanitizedTo, err := sanitizeEmailAddress(ownerEmail)
	if err != nil {
		return fmt.Errorf("owner email validation failed: %w", err)
	}
	sanitizedLeadEmail, err := sanitizeEmailAddress(lead.Email)
	if err != nil {
		return fmt.Errorf("lead email validation failed: %w", err)
	}

	subject := fmt.Sprintf("New lead: %s", sanitizeEmailHeader(lead.Name))

	plainTextBody := fmt.Sprintf("New lead captured for %s\n\n"+
		"Name: %s\nEmail: %s\nSource: %s\n\n%s\n",
		cardName, sanitizeEmailHeader(lead.Name), sanitizedLeadEmail, lead.Source, strings.ReplaceAll(lead.Notes, "\x00", ""))
	htmlBody := generateLeadHTML(lead, cardName)

	emailBody := es.createMultipartEmail(plainTextBody, htmlBody)

	headers := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Reply-To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n",
		es.fromEmail, sanitizedTo, sanitizedLeadEmail, subject)

	fullEmail := headers + emailBody

	auth := smtp.PlainAuth("", es.smtpUsername, es.smtpPassword, es.smtpHost)

	addr := fmt.Sprintf("%s:%s", es.smtpHost, es.smtpPort)
	if err := smtp.SendMail(addr, auth, es.fromEmail, []string{sanitizedTo}, []byte(fullEmail)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// createMultipartEmail creates a multipart email with both plain text and HTML versions
func (es *EmailService) createMultipartEmail(plainText, html string) string {
	boundary := "----=_NextPart_" + fmt.Sprintf("%d", time.Now().UnixNano())

	body := fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n"+
		"\r\n"+
		"--%s\r\n"+
		"Content-Type: text/plain; charset=UTF-8\r\n"+
		"Content-Transfer-Encoding: 8bit\r\n"+
		"\r\n"+
		"%s\r\n"+
		"\r\n"+
		"--%s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"Content-Transfer-Encoding: 8bit\r\n"+
		"\r\n"+
		"%s\r\n"+
		"\r\n"+
		"--%s--\r\n",
		boundary, boundary, plainText, boundary, html, boundary)

	return body
}

// SendLeadNotificationAsync sends the notification in a goroutine so lead
// capture returns immediately. Errors are logged but not returned.
func (es *EmailService) SendLeadNotificationAsync(ownerEmail string, lead *models.Lead, cardName string) {
	go func() {
		if err := es.SendLeadNotification(ownerEmail, lead, cardName); err != nil {
			log.Printf("event=lead_email_error lead=%s err=%v", lead.ID, err)
		} else {
			log.Printf("event=lead_email_sent lead=%s to=%s", lead.ID, ownerEmail)
		}
	}()
}
