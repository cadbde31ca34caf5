package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/storefront-catalog-service/internal/repository"
)

const defaultPageLimit = repository.DefaultLimit

func sanitizeLimitOffset(limit, offset int) (int, int) {
	limit = repository.EffectiveLimit(limit)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// escapeLike neutralizes LIKE wildcards so search terms match literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// helper to assert we didn't accidentally nil the pool
func ensurePool(pool *pgxpool.Pool) error {
	if pool == nil {
		return errors.New("pgx pool is nil")
	}
	return nil
}
