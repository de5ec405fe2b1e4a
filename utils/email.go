package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"cms-backend/config"
)

// SendEmail sends an HTML email through the configured SMTP relay.
// Returns nil without sending when no sender is configured.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig == nil || config.AppConfig.EmailSender == "" {
		return nil
	}

	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword
	smtpHost := config.AppConfig.SMTPHost
	smtpPort := config.AppConfig.SMTPPort

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: University Registrar <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// SendEnrollmentConfirmation emails a student that their enrollment went through
func SendEnrollmentConfirmation(email, username, courseCode, courseTitle string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You are now enrolled in <b>%s — %s</b>.</p>
		<p>You can review your enrollments and results in the student portal.</p>`,
		username, courseCode, courseTitle,
	)
	subject := fmt.Sprintf("Enrollment confirmed: %s", courseCode)
	return SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Confirmed", body))
}

// getEmailTemplate wraps body content in the shared HTML layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #00264D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00264D; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>UNIVERSITY CMS</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from the course management system.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}
