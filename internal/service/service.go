// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/storefront-catalog-service/internal/model"
	"github.com/maxviazov/storefront-catalog-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error; nil when fe is empty.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// ProductService defines catalog browsing use cases.
type ProductService interface {
	ListProducts(ctx context.Context, params model.ProductSpecParams) (repository.PageResult[model.Product], error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	ListBrands(ctx context.Context) ([]model.ProductBrand, error)
	ListTypes(ctx context.Context) ([]model.ProductType, error)
}

// OrderService exposes the buyer-facing order view.
type OrderService interface {
	GetOrderResult(ctx context.Context, id int64) (model.OrderResult, error)
}

// PaymentService checks payment preparation requests. Capturing money is out of scope.
type PaymentService interface {
	ValidatePaymentRequest(ctx context.Context, req model.PaymentRequest) (model.PaymentRequest, error)
}

// ProductPageCache is an optional read-through cache for listing pages.
type ProductPageCache interface {
	Get(ctx context.Context, f repository.ProductFilter) (repository.PageResult[model.Product], bool, error)
	Set(ctx context.Context, f repository.ProductFilter, res repository.PageResult[model.Product]) error
}
