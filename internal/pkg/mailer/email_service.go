package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendSubscriptionConfirmation(toEmail, fullName, planName string, monthlyPrice float64) error
	SendRenewalNotice(toEmail, fullName, planName, newEndDate string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}
	return nil
}

func (s *emailService) SendSubscriptionConfirmation(toEmail, fullName, planName string, monthlyPrice float64) error {
	body := fmt.Sprintf(`
		<h2>Welcome to SEA Catering, %s!</h2>
		<p>Your <strong>%s</strong> subscription is active.</p>
		<p>Monthly price: <strong>Rp %.0f</strong></p>
		<p>You can pause or cancel anytime from your dashboard.</p>
	`, fullName, planName, monthlyPrice)
	return s.send(toEmail, "Your SEA Catering subscription is active", body)
}

func (s *emailService) SendRenewalNotice(toEmail, fullName, planName, newEndDate string) error {
	body := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>Your <strong>%s</strong> subscription has been renewed automatically.</p>
		<p>The new period runs until <strong>%s</strong>.</p>
	`, fullName, planName, newEndDate)
	return s.send(toEmail, "Your SEA Catering subscription was renewed", body)
}
