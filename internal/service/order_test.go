package service_test

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/storefront-catalog-service/internal/model"
	"github.com/maxviazov/storefront-catalog-service/internal/repository"
	"github.com/maxviazov/storefront-catalog-service/internal/service"
)

type fakeOrderRepo struct{ items map[int64]model.OrderResult }

func (f *fakeOrderRepo) GetResult(_ context.Context, id int64) (model.OrderResult, error) {
	o, ok := f.items[id]
	if !ok {
		return model.OrderResult{}, repository.ErrNotFound
	}
	return o, nil
}

func TestOrderService_GetOrderResult(t *testing.T) {
	repo := &fakeOrderRepo{items: map[int64]model.OrderResult{7: {ID: 7, Total: 12.5}}}
	svc := service.NewOrderService(repo, zerolog.New(io.Discard))
	ctx := context.Background()

	o, err := svc.GetOrderResult(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 12.5, o.Total)

	_, err = svc.GetOrderResult(ctx, -1)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.GetOrderResult(ctx, 8)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPaymentService_ValidatePaymentRequest(t *testing.T) {
	svc := service.NewPaymentService(zerolog.New(io.Discard))
	ctx := context.Background()

	cases := []struct {
		name       string
		in         model.PaymentRequest
		wantFields []string
	}{
		{"ok", model.PaymentRequest{BasketID: " basket-1 ", ShippingMethodID: 2}, nil},
		{"missing basket", model.PaymentRequest{BasketID: "   ", ShippingMethodID: 2}, []string{"basketId"}},
		{"missing both", model.PaymentRequest{}, []string{"basketId", "shippingMethodId"}},
		{"negative shipping", model.PaymentRequest{BasketID: "b", ShippingMethodID: -3}, []string{"shippingMethodId"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := svc.ValidatePaymentRequest(ctx, tc.in)
			if tc.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, "basket-1", out.BasketID)
				return
			}
			require.ErrorIs(t, err, service.ErrInvalidInput)
			var got []string
			for _, fe := range service.FieldErrors(err) {
				got = append(got, fe.Field)
				assert.NotEmpty(t, fe.Message)
			}
			assert.Equal(t, tc.wantFields, got)
		})
	}
}

func TestFieldErrors(t *testing.T) {
	assert.Nil(t, service.FieldErrors(nil))
	assert.Nil(t, service.FieldErrors(service.ErrInvalidInput))
	assert.Nil(t, service.NewInvalidInputError(nil))

	err := service.NewInvalidInputError([]service.FieldError{{Field: "x", Message: "bad"}})
	assert.Equal(t, "invalid input", err.Error())
	assert.Len(t, service.FieldErrors(err), 1)
}
