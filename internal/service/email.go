package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"greenhire-backend/internal/domain"
	"greenhire-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewSendGridEmailService creates the SendGrid-backed notification sender.
func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) send(ctx context.Context, toEmail, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", toEmail, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}

func (s *sendGridEmailService) SendBookingRequestNotification(ctx context.Context, ownerEmail, clientName, machineName string) error {
	subject := fmt.Sprintf("New booking request for %s", machineName)
	body := fmt.Sprintf("Hello,\n\n%s has requested to book your machine %q. Open GreenHire to approve or reject the request.\n\nThe GreenHire Team", clientName, machineName)
	return s.send(ctx, ownerEmail, subject, body)
}

func (s *sendGridEmailService) SendBookingDecisionNotification(ctx context.Context, clientEmail, machineName string, status domain.BookingStatus) error {
	var subject, body string
	switch status {
	case domain.BookingStatusApproved:
		subject = fmt.Sprintf("Your booking for %s was approved", machineName)
		body = fmt.Sprintf("Hello,\n\nGood news: the owner approved your booking request for %q.\n\nThe GreenHire Team", machineName)
	case domain.BookingStatusRejected:
		subject = fmt.Sprintf("Your booking for %s was rejected", machineName)
		body = fmt.Sprintf("Hello,\n\nUnfortunately the owner rejected your booking request for %q.\n\nThe GreenHire Team", machineName)
	default:
		return fmt.Errorf("no decision notification for status %s", status)
	}
	return s.send(ctx, clientEmail, subject, body)
}

func (s *sendGridEmailService) SendBookingCancellationNotification(ctx context.Context, ownerEmail, clientName, machineName string) error {
	subject := fmt.Sprintf("Booking for %s was cancelled", machineName)
	body := fmt.Sprintf("Hello,\n\n%s cancelled their booking for %q.\n\nThe GreenHire Team", clientName, machineName)
	return s.send(ctx, ownerEmail, subject, body)
}

// noopEmailService swallows notifications when email sending is disabled.
type noopEmailService struct{}

// NewNoopEmailService returns an EmailService that logs instead of sending.
func NewNoopEmailService() EmailService {
	return &noopEmailService{}
}

func (noopEmailService) SendBookingRequestNotification(ctx context.Context, ownerEmail, clientName, machineName string) error {
	logger.Debug("Email disabled; skipping booking request notification", "to", ownerEmail, "machine", machineName)
	return nil
}

func (noopEmailService) SendBookingDecisionNotification(ctx context.Context, clientEmail, machineName string, status domain.BookingStatus) error {
	logger.Debug("Email disabled; skipping booking decision notification", "to", clientEmail, "status", status)
	return nil
}

func (noopEmailService) SendBookingCancellationNotification(ctx context.Context, ownerEmail, clientName, machineName string) error {
	logger.Debug("Email disabled; skipping booking cancellation notification", "to", ownerEmail, "machine", machineName)
	return nil
}
