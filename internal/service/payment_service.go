package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/raflyryhnsyh/sea-catering/internal/config"
	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/pkg/logger"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/unitofwork"
	"github.com/raflyryhnsyh/sea-catering/pkg/pricing"
)

type IPaymentService interface {
	Checkout(ctx context.Context, userId, subscriptionId uuid.UUID) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
}

// paymentService bridges subscriptions to Midtrans Snap. Payment state is an
// attribute of the subscription; the lifecycle status never depends on it.
type paymentService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        config.MidtransConfig
	clientURL  string
	log        logger.ILogger
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, cfg config.MidtransConfig, clientURL string, log logger.ILogger) IPaymentService {
	return &paymentService{
		uowFactory: uowFactory,
		cfg:        cfg,
		clientURL:  clientURL,
		log:        log,
	}
}

func (s *paymentService) Checkout(ctx context.Context, userId, subscriptionId uuid.UUID) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx,
		specification.ByID{ID: subscriptionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, dto.NewUpstreamError("find subscription", err)
	}
	if sub == nil {
		return nil, &dto.NotFoundError{Resource: "subscription"}
	}
	if sub.PaymentStatus == entity.PaymentStatusPaid {
		return nil, &dto.ConflictError{Message: "subscription is already paid"}
	}

	plan, err := uow.MealPlanRepository().FindOne(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return nil, dto.NewUpstreamError("find meal plan", err)
	}
	if plan == nil {
		return nil, &dto.NotFoundError{Resource: "meal plan"}
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, dto.NewUpstreamError("find user", err)
	}
	if user == nil {
		return nil, &dto.NotFoundError{Resource: "user"}
	}

	monthlyPrice, err := pricing.MonthlyPrice(plan.Price, sub.MealTypes, sub.DeliveryDays)
	if err != nil {
		return nil, dto.NewValidationError("%v", err)
	}
	grossAmount := int64(math.Round(monthlyPrice))

	env := midtrans.Sandbox
	if s.cfg.IsProduction {
		env = midtrans.Production
	}
	var client snap.Client
	client.New(s.cfg.ServerKey, env)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			// Order id is the subscription id so the webhook can map back
			// without a lookup table.
			OrderID:  sub.Id.String(),
			GrossAmt: grossAmount,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/subscription?payment=finish", s.clientURL),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FullName,
			Email: user.Email,
			Phone: sub.PhoneNumber,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    plan.Id.String(),
				Price: grossAmount,
				Qty:   1,
				Name:  fmt.Sprintf("%s (monthly)", plan.Name),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := client.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, dto.NewUpstreamError("midtrans create transaction", fmt.Errorf("%s", midErr.GetMessage()))
	}

	orderId := sub.Id.String()
	sub.MidtransOrderId = &orderId
	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return nil, dto.NewUpstreamError("record midtrans order", err)
	}

	return &dto.CheckoutResponse{
		SubscriptionId:  sub.Id,
		SnapToken:       snapResp.Token,
		SnapRedirectUrl: snapResp.RedirectURL,
		GrossAmount:     grossAmount,
	}, nil
}

// HandleNotification verifies the Midtrans webhook signature and updates the
// payment status. Signature = SHA512(order_id + status_code + gross_amount +
// server_key).
func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	if s.cfg.ServerKey == "" {
		return dto.NewUpstreamError("midtrans webhook", fmt.Errorf("server key not configured"))
	}

	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + s.cfg.ServerKey
	expected := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expected {
		return &dto.UnauthenticatedError{}
	}

	subId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return dto.NewValidationError("invalid order id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: subId})
	if err != nil {
		return dto.NewUpstreamError("find subscription", err)
	}
	if sub == nil {
		return &dto.NotFoundError{Resource: "subscription"}
	}

	var newPaymentStatus entity.PaymentStatus
	switch req.TransactionStatus {
	case "capture", "settlement":
		newPaymentStatus = entity.PaymentStatusPaid
	case "deny", "cancel", "expire":
		newPaymentStatus = entity.PaymentStatusFailed
	default:
		// pending and unknown statuses leave the record untouched
		return nil
	}

	if sub.PaymentStatus == newPaymentStatus {
		return nil
	}

	s.log.Info("payment", "payment status transition", map[string]interface{}{
		"subscription_id": sub.Id,
		"from":            sub.PaymentStatus,
		"to":              newPaymentStatus,
	})

	sub.PaymentStatus = newPaymentStatus
	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return dto.NewUpstreamError("update payment status", err)
	}
	return nil
}
