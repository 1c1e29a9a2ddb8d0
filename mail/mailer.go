package mail

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/Amezzyx/backend-riders-forge/logger"
	"go.uber.org/zap"
)

// Send delivers a plain-text message through the SMTP relay configured via
// SMTP_HOST / SMTP_PORT / SMTP_USER / SMTP_PASS / MAIL_FROM. When no relay is
// configured the message is dropped silently. Mail is a notification
// collaborator: failures are logged, never returned, and must never block or
// roll back the operation that triggered them.
func Send(to, subject, body string) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = user
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		from, to, subject, body))

	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}

	if err := smtp.SendMail(host+":"+port, auth, from, []string{to}, msg); err != nil {
		logger.GetLogger().Warn("failed to send mail",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
	}
}

// SendAsync fires the send on its own goroutine (fire-and-forget).
func SendAsync(to, subject, body string) {
	go Send(to, subject, body)
}
