package model

import "strings"

const (
	// MaxPageSize is the hard ceiling for a listing page.
	MaxPageSize = 188
	// DefaultPageSize applies when the client does not ask for a size.
	DefaultPageSize = 10
	// DefaultPageIndex is the first page; pages are 1-based.
	DefaultPageIndex = 1
)

// SortOrder selects the ordering of a product listing.
type SortOrder string

const (
	SortNameAsc   SortOrder = "nameAsc"
	SortNameDesc  SortOrder = "nameDesc"
	SortPriceAsc  SortOrder = "priceAsc"
	SortPriceDesc SortOrder = "priceDesc"
)

var sortOrders = []SortOrder{SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc}

// ParseSortOrder matches raw case-insensitively against the known orders.
// Surrounding whitespace is ignored. Unknown input reports false.
func ParseSortOrder(raw string) (SortOrder, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range sortOrders {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

// ProductSpecParams is the normalized query descriptor for a product listing.
// It is built per request from client input and never fails: absent or
// unusable values keep their defaults.
type ProductSpecParams struct {
	BrandID   *int64
	TypeID    *int64
	Sort      *SortOrder
	PageIndex int
	Search    *string

	pageSize int
}

// NewProductSpecParams returns params with page 1 and the default page size.
func NewProductSpecParams() ProductSpecParams {
	return ProductSpecParams{PageIndex: DefaultPageIndex, pageSize: DefaultPageSize}
}

// SetPageSize stores v, truncated to MaxPageSize. There is no lower bound:
// zero and negative sizes are stored as given.
func (p *ProductSpecParams) SetPageSize(v int) {
	if v > MaxPageSize {
		v = MaxPageSize
	}
	p.pageSize = v
}

// PageSize returns the stored page size.
func (p ProductSpecParams) PageSize() int { return p.pageSize }
