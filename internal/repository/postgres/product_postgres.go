package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/storefront-catalog-service/internal/model"
	"github.com/maxviazov/storefront-catalog-service/internal/repository"
)

type productRepository struct{ pool *pgxpool.Pool }

func NewProductRepository(pool *pgxpool.Pool) repository.ProductRepository {
	return &productRepository{pool: pool}
}

const productColumns = `p.id, p.name, p.description, p.price::float8, p.picture_url,
	p.product_type_id, t.name, p.product_brand_id, b.name, p.created_at, p.updated_at`

const productFrom = `FROM products p
	JOIN product_types t ON t.id = p.product_type_id
	JOIN product_brands b ON b.id = p.product_brand_id`

// orderClauses is a closed set; user input never reaches ORDER BY directly.
var orderClauses = map[model.SortOrder]string{
	model.SortNameAsc:   "p.name ASC",
	model.SortNameDesc:  "p.name DESC",
	model.SortPriceAsc:  "p.price ASC",
	model.SortPriceDesc: "p.price DESC",
}

func orderBy(s model.SortOrder) string {
	if c, ok := orderClauses[s]; ok {
		return c + ", p.id"
	}
	return orderClauses[model.SortNameAsc] + ", p.id"
}

// buildWhere renders the filter predicates and their positional args.
func buildWhere(f repository.ProductFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.BrandID != nil {
		where = append(where, "p.product_brand_id = "+arg(*f.BrandID))
	}
	if f.TypeID != nil {
		where = append(where, "p.product_type_id = "+arg(*f.TypeID))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		where = append(where, "p.name ILIKE "+arg("%"+escapeLike(s)+"%")+` ESCAPE '\'`)
	}
	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

// buildListQuery renders the listing SQL. The total comes from a window
// function so one round trip serves both the page and the count.
func buildListQuery(f repository.ProductFilter) (string, []any) {
	where, args := buildWhere(f)
	limit, offset := sanitizeLimitOffset(f.Page.Limit, f.Page.Offset)
	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s, COUNT(*) OVER() AS total %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		productColumns, productFrom, where, orderBy(f.Sort), len(args)-1, len(args))
	return query, args
}

func buildCountQuery(f repository.ProductFilter) (string, []any) {
	where, args := buildWhere(f)
	return "SELECT COUNT(*) " + productFrom + where, args
}

func scanProduct(row pgx.Row, extra ...any) (model.Product, error) {
	var p model.Product
	dest := []any{
		&p.ID, &p.Name, &p.Description, &p.Price, &p.PictureURL,
		&p.ProductTypeID, &p.ProductType, &p.BrandID, &p.Brand, &p.CreatedAt, &p.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return p, err
}

func (r *productRepository) List(ctx context.Context, f repository.ProductFilter) (repository.PageResult[model.Product], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Product]{}, err
	}
	query, args := buildListQuery(f)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return repository.PageResult[model.Product]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Product]{Items: make([]model.Product, 0)}
	for rows.Next() {
		var total int
		p, err := scanProduct(rows, &total)
		if err != nil {
			return repository.PageResult[model.Product]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, p)
		res.Total = total
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Product]{}, repository.MapPgError(err)
	}
	// An offset past the end yields no rows and therefore no window total.
	if len(res.Items) == 0 && f.Page.Offset > 0 {
		total, err := r.count(ctx, f)
		if err != nil {
			return repository.PageResult[model.Product]{}, err
		}
		res.Total = total
	}
	return res, nil
}

func (r *productRepository) count(ctx context.Context, f repository.ProductFilter) (int, error) {
	query, args := buildCountQuery(f)
	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, repository.MapPgError(err)
	}
	return total, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (model.Product, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Product{}, err
	}
	row := r.pool.QueryRow(ctx, "SELECT "+productColumns+" "+productFrom+" WHERE p.id = $1", id)
	p, err := scanProduct(row)
	if err != nil {
		return model.Product{}, repository.MapPgError(err)
	}
	return p, nil
}

func (r *productRepository) ListBrands(ctx context.Context) ([]model.ProductBrand, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM product_brands ORDER BY name`)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.ProductBrand])
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

func (r *productRepository) ListTypes(ctx context.Context) ([]model.ProductType, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM product_types ORDER BY name`)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.ProductType])
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.ProductRepository = (*productRepository)(nil)
