package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/storefront-catalog-service/internal/model"
	"github.com/maxviazov/storefront-catalog-service/internal/repository"
)

func ptr[T any](v T) *T { return &v }

func TestBuildListQuery_NoFilters(t *testing.T) {
	q, args := buildListQuery(repository.ProductFilter{})
	assert.NotContains(t, q, "WHERE")
	assert.Contains(t, q, "ORDER BY p.name ASC, p.id LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{defaultPageLimit, 0}, args)
}

func TestBuildListQuery_AllFilters(t *testing.T) {
	q, args := buildListQuery(repository.ProductFilter{
		BrandID: ptr(int64(3)),
		TypeID:  ptr(int64(5)),
		Search:  "  50%_off ",
		Sort:    model.SortPriceDesc,
		Page:    repository.Page{Limit: 20, Offset: 40},
	})
	assert.Contains(t, q, "WHERE p.product_brand_id = $1 AND p.product_type_id = $2 AND p.name ILIKE $3")
	assert.Contains(t, q, "ORDER BY p.price DESC, p.id LIMIT $4 OFFSET $5")
	assert.Equal(t, []any{int64(3), int64(5), `%50\%\_off%`, 20, 40}, args)
}

func TestBuildListQuery_SortOrders(t *testing.T) {
	cases := map[model.SortOrder]string{
		model.SortNameAsc:   "p.name ASC",
		model.SortNameDesc:  "p.name DESC",
		model.SortPriceAsc:  "p.price ASC",
		model.SortPriceDesc: "p.price DESC",
		"":                  "p.name ASC",
		"dropTable":         "p.name ASC",
	}
	for sort, want := range cases {
		q, _ := buildListQuery(repository.ProductFilter{Sort: sort})
		assert.Contains(t, q, "ORDER BY "+want+", p.id", "sort %q", sort)
		assert.False(t, strings.Contains(q, "dropTable"))
	}
}

func TestBuildCountQuery(t *testing.T) {
	q, args := buildCountQuery(repository.ProductFilter{TypeID: ptr(int64(2)), Page: repository.Page{Limit: 5, Offset: 10}})
	assert.True(t, strings.HasPrefix(q, "SELECT COUNT(*) FROM products p"))
	assert.Contains(t, q, "WHERE p.product_type_id = $1")
	assert.NotContains(t, q, "LIMIT")
	assert.Equal(t, []any{int64(2)}, args)
}

func TestSanitizeLimitOffset(t *testing.T) {
	l, o := sanitizeLimitOffset(0, -3)
	assert.Equal(t, defaultPageLimit, l)
	assert.Equal(t, 0, o)
	l, o = sanitizeLimitOffset(-5, 7)
	assert.Equal(t, defaultPageLimit, l)
	assert.Equal(t, 7, o)
	l, o = sanitizeLimitOffset(188, 0)
	assert.Equal(t, 188, l)
	assert.Equal(t, 0, o)
}
