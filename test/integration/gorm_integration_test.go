package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/unitofwork"
	"github.com/raflyryhnsyh/sea-catering/pkg/database"
)

func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.SubscriptionRepository())
	assert.NotNil(t, uow.MealPlanRepository())
	assert.NotNil(t, uow.TestimonialRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(ctx)
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Subscription round trip with JSON set columns", func(t *testing.T) {
		user := &entity.User{
			Id:       uuid.New(),
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			Role:     entity.UserRoleUser,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		plan := &entity.MealPlan{
			Id:    uuid.New(),
			Name:  "Integration Plan " + uuid.New().String(),
			Price: 25000,
		}
		require.NoError(t, uow.MealPlanRepository().Create(ctx, plan))

		today := time.Now().Truncate(24 * time.Hour)
		sub := &entity.Subscription{
			Id:           uuid.New(),
			UserId:       user.Id,
			PlanId:       plan.Id,
			PhoneNumber:  "081234567890",
			MealTypes:    []string{"breakfast", "dinner"},
			DeliveryDays: []string{"monday", "friday"},
			Status:       entity.SubscriptionStatusActive,
			StartDate:    today,
			EndDate:      today.AddDate(0, 0, 30),
			AutoRenewal:  true,
		}
		require.NoError(t, uow.SubscriptionRepository().Create(ctx, sub))

		found, err := uow.SubscriptionRepository().FindOne(ctx,
			specification.ByID{ID: sub.Id},
			specification.OwnedBy{UserID: user.Id},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.ElementsMatch(t, []string{"breakfast", "dinner"}, found.MealTypes)
		assert.ElementsMatch(t, []string{"monday", "friday"}, found.DeliveryDays)
		assert.Equal(t, entity.SubscriptionStatusActive, found.Status)
	})
}
