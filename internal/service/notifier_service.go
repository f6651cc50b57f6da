package service

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/pkg/logger"
	"github.com/raflyryhnsyh/sea-catering/internal/pkg/mailer"
)

// NotifierService drains the notification topic and sends the matching
// email. It runs on the in-process gochannel bus so a slow SMTP server never
// blocks a request handler.
type NotifierService struct {
	email mailer.IEmailService
	log   logger.ILogger
}

func NewNotifierService(email mailer.IEmailService, log logger.ILogger) *NotifierService {
	return &NotifierService{email: email, log: log}
}

func (n *NotifierService) Run(messages <-chan *message.Message) {
	for msg := range messages {
		n.handle(msg)
		msg.Ack()
	}
}

func (n *NotifierService) handle(msg *message.Message) {
	var payload dto.SubscriptionNotificationMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		n.log.Warn("notifier", "failed to decode notification message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	var err error
	switch payload.Kind {
	case NotificationKindCreated:
		err = n.email.SendSubscriptionConfirmation(payload.Email, payload.FullName, payload.PlanName, payload.MonthlyPrice)
	case NotificationKindRenewed:
		err = n.email.SendRenewalNotice(payload.Email, payload.FullName, payload.PlanName, payload.EndDate)
	default:
		n.log.Warn("notifier", "unknown notification kind", map[string]interface{}{
			"kind": payload.Kind,
		})
		return
	}

	if err != nil {
		n.log.Error("notifier", "failed to send notification email", map[string]interface{}{
			"kind":  payload.Kind,
			"email": payload.Email,
			"error": err.Error(),
		})
		return
	}
	n.log.Info("notifier", "notification email sent", map[string]interface{}{
		"kind":  payload.Kind,
		"email": payload.Email,
	})
}
