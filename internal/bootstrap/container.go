package bootstrap

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/raflyryhnsyh/sea-catering/internal/config"
	"github.com/raflyryhnsyh/sea-catering/internal/controller"
	"github.com/raflyryhnsyh/sea-catering/internal/pkg/logger"
	"github.com/raflyryhnsyh/sea-catering/internal/pkg/mailer"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/unitofwork"
	"github.com/raflyryhnsyh/sea-catering/internal/service"
	pktNats "github.com/raflyryhnsyh/sea-catering/pkg/nats"
)

type Container struct {
	AuthController         controller.IAuthController
	PlanController         controller.IPlanController
	SubscriptionController controller.ISubscriptionController
	TestimonialController  controller.ITestimonialController
	AdminController        controller.IAdminController
	PaymentController      controller.IPaymentController

	Logger   logger.ILogger
	notifier *service.NotifierService
	pubSub   *gochannel.GoChannel
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisherService := service.NewPublisherService(pubSub)

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	subscriptionService := service.NewSubscriptionService(uowFactory, natsPub, publisherService, sysLogger)
	planService := service.NewPlanService(uowFactory)
	authService := service.NewAuthService(uowFactory, cfg.JWT)
	testimonialService := service.NewTestimonialService(uowFactory)
	adminService := service.NewAdminService(uowFactory, rdb, sysLogger)
	paymentService := service.NewPaymentService(uowFactory, cfg.Midtrans, cfg.App.ClientURL, sysLogger)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		PlanController:         controller.NewPlanController(planService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService),
		TestimonialController:  controller.NewTestimonialController(testimonialService),
		AdminController:        controller.NewAdminController(adminService),
		PaymentController:      controller.NewPaymentController(paymentService),

		Logger:   sysLogger,
		notifier: service.NewNotifierService(emailService, sysLogger),
		pubSub:   pubSub,
	}
}

// StartWorkers subscribes the email notifier to the in-process bus. Call
// once after construction; workers stop when the bus is closed.
func (c *Container) StartWorkers(ctx context.Context) error {
	messages, err := c.pubSub.Subscribe(ctx, service.TopicSubscriptionNotifications)
	if err != nil {
		return err
	}
	go c.notifier.Run(messages)
	return nil
}

func (c *Container) Close() error {
	return c.pubSub.Close()
}
