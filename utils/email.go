package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendEmail delivers an HTML mail from the FixNear notifications address.
// The body fragment is wrapped in the shared layout before sending.
func SendEmail(to, subject, body string) error {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetAddressHeader("From", os.Getenv("EMAIL_USER"), "FixNear")
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", EmailLayout(body))

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// EmailLayout frames a message fragment with the FixNear signature so every
// outgoing mail looks the same.
func EmailLayout(content string) string {
	return fmt.Sprintf(`<div style="font-family:sans-serif;max-width:600px">
%s
<p>Best regards,</p>
<p>The FixNear Team</p>
</div>`, content)
}
