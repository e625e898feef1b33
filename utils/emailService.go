package utils

import (
	"fintrack/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email through SendGrid
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("Email to %s skipped: SendGrid is not configured", toEmail)
		return nil
	}

	from := mail.NewEmail("Fintrack", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid responded with status %d", resp.StatusCode)
	}

	return nil
}

// HTML wrapper shared by all outgoing emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B1F3B; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B1F3B; line-height: 1.6; }
			.content h2 { color: #1B1F3B; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.summary-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #6C63FF; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>FINTRACK</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				You are receiving this email because you have a Fintrack account.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to Fintrack"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Fintrack</strong>! Your account has been created successfully.</p>
		<p>Start adding your income and expenses to see your balance and spending trends on the dashboard.</p>
	`, name)

	go SendEmail(email, name, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendMonthlySummaryEmail mails a user their previous month's totals
func SendMonthlySummaryEmail(email, name, month string, income, expense, balance float64) {
	subject := "Your Fintrack Summary for " + month
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Here is your financial summary for <strong>%s</strong>:</p>
		<div class="summary-box">
			<ul style="list-style: none; padding: 0; margin: 0;">
				<li style="margin-bottom: 8px;"><strong>Total Income:</strong> %.2f</li>
				<li style="margin-bottom: 8px;"><strong>Total Expense:</strong> %.2f</li>
				<li><strong>Balance:</strong> %.2f</li>
			</ul>
		</div>
		<p>Login to your dashboard to see the full breakdown.</p>
	`, name, month, income, expense, balance)

	go SendEmail(email, name, subject, getEmailTemplate("Monthly Summary", body))
}
