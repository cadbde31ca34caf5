package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/storefront-catalog-service/internal/model"
	"github.com/maxviazov/storefront-catalog-service/internal/repository"
)

// productService holds catalog use-case logic: param mapping, caching and orchestration.
type productService struct {
	repo  repository.ProductRepository
	cache ProductPageCache
	log   zerolog.Logger
}

// NewProductService wires the catalog service. cache may be nil to disable caching.
func NewProductService(repo repository.ProductRepository, cache ProductPageCache, logger zerolog.Logger) ProductService {
	l := logger.With().Str("module", "service").Str("component", "product").Logger()
	return &productService{repo: repo, cache: cache, log: l}
}

func (s *productService) ListProducts(ctx context.Context, params model.ProductSpecParams) (repository.PageResult[model.Product], error) {
	start := time.Now()
	f := toFilter(params)

	if s.cache != nil {
		res, ok, err := s.cache.Get(ctx, f)
		switch {
		case err != nil:
			// fall through to the database
			s.log.Warn().Err(err).Msg("product cache read failed")
		case ok:
			s.log.Debug().Dur("took", time.Since(start)).Msg("product page served from cache")
			return res, nil
		}
	}

	res, err := s.repo.List(ctx, f)
	if err != nil {
		s.log.Error().Err(err).Int("limit", f.Page.Limit).Int("offset", f.Page.Offset).Msg("list products failed")
		return repository.PageResult[model.Product]{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, f, res); err != nil {
			s.log.Warn().Err(err).Msg("product cache write failed")
		}
	}
	s.log.Debug().Dur("took", time.Since(start)).Int("items", len(res.Items)).Int("total", res.Total).Msg("products listed")
	return res, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	if err := validID("id", id); err != nil {
		return model.Product{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *productService) ListBrands(ctx context.Context) ([]model.ProductBrand, error) {
	out, err := s.repo.ListBrands(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list brands failed")
		return nil, err
	}
	return out, nil
}

func (s *productService) ListTypes(ctx context.Context) ([]model.ProductType, error) {
	out, err := s.repo.ListTypes(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list types failed")
		return nil, err
	}
	return out, nil
}
