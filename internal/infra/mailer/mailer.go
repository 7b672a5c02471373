package mailer

import (
	"fmt"
	"net/smtp"

	"bookly-backend/config"
)

// Send delivers a plain-text email through the configured SMTP relay.
// An unconfigured relay is reported as an error the caller logs; email is a
// best-effort channel for every workflow in this module.
func Send(to, subject, body string) error {
	from := config.SMTP_FROM
	if from == "" || config.SMTP_HOST == "" {
		return fmt.Errorf("SMTP not configured")
	}

	auth := smtp.PlainAuth("", from, config.SMTP_PASSWORD, config.SMTP_HOST)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(config.SMTP_HOST+":"+config.SMTP_PORT, auth, from, []string{to}, message)
	if err != nil {
		fmt.Println("❌ SMTP error:", err)
	}
	return err
}
