package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maxviazov/storefront-catalog-service/internal/model"
	"github.com/maxviazov/storefront-catalog-service/internal/repository"
)

type orderService struct {
	repo repository.OrderRepository
	log  zerolog.Logger
}

func NewOrderService(repo repository.OrderRepository, logger zerolog.Logger) OrderService {
	l := logger.With().Str("module", "service").Str("component", "order").Logger()
	return &orderService{repo: repo, log: l}
}

func (s *orderService) GetOrderResult(ctx context.Context, id int64) (model.OrderResult, error) {
	if err := validID("id", id); err != nil {
		return model.OrderResult{}, err
	}
	out, err := s.repo.GetResult(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Int64("order_id", id).Msg("get order result failed")
		}
		return model.OrderResult{}, err
	}
	return out, nil
}

type paymentService struct {
	log zerolog.Logger
}

func NewPaymentService(logger zerolog.Logger) PaymentService {
	l := logger.With().Str("module", "service").Str("component", "payment").Logger()
	return &paymentService{log: l}
}

// ValidatePaymentRequest normalizes and checks the request; it never talks to a gateway.
func (s *paymentService) ValidatePaymentRequest(_ context.Context, req model.PaymentRequest) (model.PaymentRequest, error) {
	req.BasketID = strings.TrimSpace(req.BasketID)
	if err := validateStruct(req); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("payment request validation failed")
		return model.PaymentRequest{}, err
	}
	return req, nil
}
