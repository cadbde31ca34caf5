package repository

import (
	"context"

	"github.com/maxviazov/storefront-catalog-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProductRepository declares read operations over the catalog.
// I return domain models and surface domain errors from errors.go rather than PG codes.
type ProductRepository interface {
	List(ctx context.Context, f ProductFilter) (PageResult[model.Product], error)
	GetByID(ctx context.Context, id int64) (model.Product, error)
	ListBrands(ctx context.Context) ([]model.ProductBrand, error)
	ListTypes(ctx context.Context) ([]model.ProductType, error)
}

// OrderRepository exposes the buyer-facing order read model.
type OrderRepository interface {
	GetResult(ctx context.Context, id int64) (model.OrderResult, error)
}
