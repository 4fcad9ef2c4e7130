// file: utils/email.go
package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendEmail delivers a plain-text mail over SMTP. It is a best-effort fallback
// channel: callers log the returned error and move on.
func SendEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	if username == "" || password == "" {
		return fmt.Errorf("email credentials not configured")
	}
	if port == "" {
		port = "587"
	}
	if from == "" {
		from = username
	}

	auth := smtp.PlainAuth("", username, password, host)

	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", from, to, subject, body)

	return smtp.SendMail(host+":"+port, auth, from, []string{to}, []byte(message))
}
