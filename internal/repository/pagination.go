package repository

import "github.com/maxviazov/storefront-catalog-service/internal/model"

// Page represents a simple limit/offset window for listing operations.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries a slice of items and the total count matching the query.
// I return the total so clients can compute pagination without an extra round trip.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// ProductFilter is the storage-level view of a product listing request.
// Zero values mean "no constraint"; an empty Sort falls back to name ascending.
type ProductFilter struct {
	BrandID *int64
	TypeID  *int64
	Search  string
	Sort    model.SortOrder
	Page    Page
}

// DefaultLimit is applied when a listing asks for a non-positive page size.
const DefaultLimit = model.DefaultPageSize

// EffectiveLimit is the number of rows storage returns at most for a requested limit.
func EffectiveLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
