package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/memory"
)

func TestCreateTestimonial(t *testing.T) {
	ctx := context.Background()

	t.Run("records the author", func(t *testing.T) {
		store := memory.NewStore()
		svc := NewTestimonialService(store.NewRepositoryFactory())
		userId := uuid.New()

		res, err := svc.Create(ctx, userId, &dto.CreateTestimonialRequest{
			Name:    "Budi",
			Message: "The Protein Plan keeps me on track every week.",
			Rating:  5,
		})
		require.NoError(t, err)
		assert.Equal(t, "Budi", res.Name)

		stored, err := store.NewRepositoryFactory().NewUnitOfWork(ctx).TestimonialRepository().FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		require.NotNil(t, stored[0].UserId)
		assert.Equal(t, userId, *stored[0].UserId)
	})

	t.Run("rejects an out of range rating", func(t *testing.T) {
		store := memory.NewStore()
		svc := NewTestimonialService(store.NewRepositoryFactory())

		_, err := svc.Create(ctx, uuid.New(), &dto.CreateTestimonialRequest{
			Name:    "Budi",
			Message: "Too good",
			Rating:  6,
		})
		var validation *dto.ValidationError
		assert.True(t, errors.As(err, &validation))
	})
}
