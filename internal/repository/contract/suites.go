// Package contract holds storage-agnostic behavior suites. Each backend wires
// its own factory and runs the same expectations.
package contract

import (
	"context"
	"testing"
	"time"

	"github.com/maxviazov/storefront-catalog-service/internal/model"
	"github.com/maxviazov/storefront-catalog-service/internal/repository"
)

// Seeder writes fixtures; the repositories under test are read-only.
type Seeder interface {
	Brand(ctx context.Context, name string) (int64, error)
	Type(ctx context.Context, name string) (int64, error)
	Product(ctx context.Context, p model.Product) (int64, error)
	Order(ctx context.Context, o model.OrderResult) (int64, error)
}

type ProductFactory func(t *testing.T) (repository.ProductRepository, Seeder, func())

type OrderFactory func(t *testing.T) (repository.OrderRepository, Seeder, func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

type catalog struct {
	brands map[string]int64
	types  map[string]int64
}

// seedCatalog inserts 2 brands x 2 types and 7 products with distinct names and prices.
func seedCatalog(t *testing.T, s Seeder) catalog {
	t.Helper()
	ctx := context.Background()
	c := catalog{brands: map[string]int64{}, types: map[string]int64{}}
	for _, b := range []string{"Angular", "NetCore"} {
		id, err := s.Brand(ctx, b)
		if err != nil {
			t.Fatalf("seed brand: %v", err)
		}
		c.brands[b] = id
	}
	for _, ty := range []string{"Boards", "Hats"} {
		id, err := s.Type(ctx, ty)
		if err != nil {
			t.Fatalf("seed type: %v", err)
		}
		c.types[ty] = id
	}
	products := []struct {
		name  string
		price float64
		brand string
		typ   string
	}{
		{"Angular Speedster Board", 200, "Angular", "Boards"},
		{"Green Angular Board", 150, "Angular", "Boards"},
		{"Core Board Speed Rush", 180, "NetCore", "Boards"},
		{"Net Core Super Board", 300, "NetCore", "Boards"},
		{"Angular Blue Hat", 10, "Angular", "Hats"},
		{"Green Code Hat", 15, "NetCore", "Hats"},
		{"Purple 100% Hat", 12.5, "NetCore", "Hats"},
	}
	for _, p := range products {
		if _, err := s.Product(ctx, model.Product{
			Name: p.name, Price: p.price, BrandID: c.brands[p.brand], ProductTypeID: c.types[p.typ],
		}); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
	return c
}

func RunProductRepositoryContract(t *testing.T, makeRepo ProductFactory) {
	t.Helper()

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, seeder, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seedCatalog(t, seeder)
		ctx := context.Background()

		res, err := repo.List(ctx, repository.ProductFilter{Page: repository.Page{Limit: 3}})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		last, err := repo.List(ctx, repository.ProductFilter{Page: repository.Page{Limit: 3, Offset: 6}})
		if err != nil {
			t.Fatalf("list last: %v", err)
		}
		if len(last.Items) != 1 || last.Total != 7 {
			t.Fatalf("unexpected last page: len=%d total=%d", len(last.Items), last.Total)
		}
		past, err := repo.List(ctx, repository.ProductFilter{Page: repository.Page{Limit: 3, Offset: 30}})
		if err != nil {
			t.Fatalf("list past end: %v", err)
		}
		if len(past.Items) != 0 || past.Total != 7 {
			t.Fatalf("unexpected past-end page: len=%d total=%d", len(past.Items), past.Total)
		}
	})

	t.Run("list_filters", func(t *testing.T) {
		repo, seeder, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		c := seedCatalog(t, seeder)
		ctx := context.Background()

		brand := c.brands["Angular"]
		typ := c.types["Boards"]
		res, err := repo.List(ctx, repository.ProductFilter{BrandID: &brand, TypeID: &typ, Page: repository.Page{Limit: 50}})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 2 {
			t.Fatalf("expected 2 angular boards, got %d", res.Total)
		}
		for _, p := range res.Items {
			if p.BrandID != brand || p.ProductTypeID != typ || p.Brand != "Angular" || p.ProductType != "Boards" {
				t.Fatalf("filter leak: %+v", p)
			}
		}

		res, err = repo.List(ctx, repository.ProductFilter{Search: "green", Page: repository.Page{Limit: 50}})
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if res.Total != 2 {
			t.Fatalf("expected 2 green products, got %d", res.Total)
		}

		res, err = repo.List(ctx, repository.ProductFilter{Search: "100%", Page: repository.Page{Limit: 50}})
		if err != nil {
			t.Fatalf("search literal: %v", err)
		}
		if res.Total != 1 {
			t.Fatalf("expected literal %% match only, got %d", res.Total)
		}
	})

	t.Run("list_sorting", func(t *testing.T) {
		repo, seeder, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seedCatalog(t, seeder)
		ctx := context.Background()

		asc, err := repo.List(ctx, repository.ProductFilter{Sort: model.SortPriceAsc, Page: repository.Page{Limit: 50}})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		for i := 1; i < len(asc.Items); i++ {
			if asc.Items[i-1].Price > asc.Items[i].Price {
				t.Fatalf("not price ascending at %d", i)
			}
		}
		desc, err := repo.List(ctx, repository.ProductFilter{Sort: model.SortNameDesc, Page: repository.Page{Limit: 50}})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		for i := 1; i < len(desc.Items); i++ {
			if desc.Items[i-1].Name < desc.Items[i].Name {
				t.Fatalf("not name descending at %d", i)
			}
		}
	})

	t.Run("get_and_not_found", func(t *testing.T) {
		repo, seeder, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		c := seedCatalog(t, seeder)
		ctx := context.Background()

		id, err := seeder.Product(ctx, model.Product{Name: "Solo", Price: 9.99, BrandID: c.brands["NetCore"], ProductTypeID: c.types["Hats"]})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		got, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Name != "Solo" || got.Price != 9.99 || got.Brand != "NetCore" {
			t.Fatalf("mismatch: %+v", got)
		}
		if _, err := repo.GetByID(ctx, 999999); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("brands_and_types", func(t *testing.T) {
		repo, seeder, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seedCatalog(t, seeder)
		ctx := context.Background()

		brands, err := repo.ListBrands(ctx)
		if err != nil || len(brands) != 2 || brands[0].Name != "Angular" {
			t.Fatalf("brands: %v %+v", err, brands)
		}
		types, err := repo.ListTypes(ctx)
		if err != nil || len(types) != 2 || types[1].Name != "Hats" {
			t.Fatalf("types: %v %+v", err, types)
		}
	})
}

func RunOrderRepositoryContract(t *testing.T, makeRepo OrderFactory) {
	t.Helper()

	t.Run("get_result", func(t *testing.T) {
		repo, seeder, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		id, err := seeder.Order(ctx, model.OrderResult{
			BuyerEmail: "bob@test.com", OrderDate: time.Now().UTC(), Subtotal: 100, DeliveryFee: 5, Status: "pending",
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		got, err := repo.GetResult(ctx, id)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Total != 105 || !model.IsCashPayment(got) {
			t.Fatalf("unexpected result: %+v", got)
		}

		cardID, err := seeder.Order(ctx, model.OrderResult{
			BuyerEmail: "amy@test.com", OrderDate: time.Now().UTC(), Subtotal: 20, Status: "paid", PaymentIntentID: "pi_123",
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		card, err := repo.GetResult(ctx, cardID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if model.PaymentMethod(card) != model.PaymentMethodCard {
			t.Fatalf("expected card payment: %+v", card)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		if _, err := repo.GetResult(context.Background(), 424242); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	p, cleanup := makePinger(t)
	t.Cleanup(cleanup)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}
