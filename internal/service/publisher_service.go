package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
)

const (
	TopicSubscriptionNotifications = "subscription.notifications"

	NotificationKindCreated = "created"
	NotificationKindRenewed = "renewed"
)

type IPublisherService interface {
	PublishSubscriptionNotification(ctx context.Context, msg *dto.SubscriptionNotificationMessage) error
	Close() error
}

type publisherService struct {
	publisher message.Publisher
}

func NewPublisherService(publisher message.Publisher) IPublisherService {
	return &publisherService{publisher: publisher}
}

func (s *publisherService) PublishSubscriptionNotification(_ context.Context, msg *dto.SubscriptionNotificationMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.publisher.Publish(TopicSubscriptionNotifications, message.NewMessage(watermill.NewUUID(), payload))
}

func (s *publisherService) Close() error {
	return s.publisher.Close()
}
