package utils

import (
	"fmt"
	"log"
	"tiffin/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends one HTML email through SendGrid. A missing API key is
// treated as "email disabled", not an error worth failing callers over.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("Email disabled, skipping %q to %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("Right Tiffin", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}

// SendReviewNotification tells a provider that one of their tiffins just
// got reviewed.
func SendReviewNotification(providerEmail, providerName, tiffinName string, rating int) error {
	subject := fmt.Sprintf("New review for %s", tiffinName)

	body := fmt.Sprintf(`
	<html>
		<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
			<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
				<h2 style="color: #333333;">Hi %s,</h2>
				<p style="font-size: 16px; color: #555555;">Your tiffin <strong>%s</strong> just received a new review.</p>
				<h1 style="color: #FF6B35; font-size: 32px;">%d/5 stars</h1>
				<p style="font-size: 14px; color: #999999;">Log in to see the full review and AI insights for your listing.</p>
			</div>
		</body>
	</html>
	`, providerName, tiffinName, rating)

	return SendEmail(providerName, providerEmail, subject, body)
}
