package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	"github.com/m04kA/SMC-LaundryService/pkg/psqlbuilder"
)

const tableProducts = "products"

var productColumns = []string{
	"id",
	"name",
	"description",
	"brand",
	"image",
	"unit",
	"weight",
	"price",
	"original_price",
	"stock",
	"rating",
	"sold_count",
	"category",
	"tags",
	"recommend_for",
	"is_active",
	"created_at",
	"updated_at",
}

// Порядок сортировки. Последние колонки дают стабильный порядок при равенстве ключа.
var orderBySortKey = map[domain.ProductSortKey][]string{
	domain.SortBySoldCount: {"sold_count DESC", "created_at ASC", "id ASC"},
	domain.SortByRating:    {"rating DESC", "created_at ASC", "id ASC"},
	domain.SortByPriceAsc:  {"price ASC", "created_at ASC", "id ASC"},
	domain.SortByPriceDesc: {"price DESC", "created_at ASC", "id ASC"},
	domain.SortByNewest:    {"created_at DESC", "id ASC"},
	domain.SortByInsertion: {"created_at ASC", "id ASC"},
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository репозиторий каталога товаров (только активные товары для клиентских запросов)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindActiveByCategory получает до limit активных товаров категории в порядке sortKey
func (r *Repository) FindActiveByCategory(
	ctx context.Context,
	category domain.ProductCategory,
	sortKey domain.ProductSortKey,
	limit int,
) ([]*domain.Product, error) {
	return r.List(ctx, domain.ProductFilter{
		Category: &category,
		Sort:     sortKey,
		Limit:    limit,
	})
}

// FindActiveByRecommendFor получает активные товары, рекомендуемые для типа услуги serviceTag
// (recommend_for содержит тег или "all"). Категория опциональна.
// Сортировка: продажи по убыванию, затем рейтинг по убыванию.
func (r *Repository) FindActiveByRecommendFor(
	ctx context.Context,
	category *domain.ProductCategory,
	serviceTag string,
	limit int,
) ([]*domain.Product, error) {
	selectBuilder := psqlbuilder.Select(productColumns...).
		From(tableProducts).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Expr("(? = ANY(recommend_for) OR ? = ANY(recommend_for))", serviceTag, domain.RecommendForAll)).
		OrderBy("sold_count DESC", "rating DESC", "created_at ASC", "id ASC")

	if category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *category})
	}
	if limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByRecommendFor - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "FindActiveByRecommendFor", query, args)
}

// List получает активные товары по фильтру
func (r *Repository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	selectBuilder := psqlbuilder.Select(productColumns...).
		From(tableProducts).
		Where(squirrel.Eq{"is_active": true})

	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"brand": pattern},
			squirrel.Expr("EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE ?)", pattern),
		})
	}

	if filter.MinPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"price": *filter.MaxPrice})
	}

	if filter.DiscountedOnly {
		selectBuilder = selectBuilder.Where("original_price IS NOT NULL AND original_price > price")
	}

	orderBy, ok := orderBySortKey[filter.Sort]
	if !ok {
		orderBy = orderBySortKey[domain.SortBySoldCount]
	}
	selectBuilder = selectBuilder.OrderBy(orderBy...)

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

// GetByID получает активный товар по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrProductNotFound
	}

	query, args, err := psqlbuilder.Select(productColumns...).
		From(tableProducts).
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan product: %v", ErrScanRow, err)
	}

	return product, nil
}

// Count считает все товары каталога, включая неактивные
func (r *Repository) Count(ctx context.Context) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").From(tableProducts).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

// Create добавляет товар в каталог (используется при начальном заполнении)
func (r *Repository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(tableProducts).
		Columns(
			"id",
			"name",
			"description",
			"brand",
			"image",
			"unit",
			"weight",
			"price",
			"original_price",
			"stock",
			"rating",
			"sold_count",
			"category",
			"tags",
			"recommend_for",
			"is_active",
		).
		Values(
			product.ID,
			product.Name,
			product.Description,
			product.Brand,
			product.Image,
			product.Unit,
			product.Weight,
			product.Price,
			product.OriginalPrice,
			product.Stock,
			product.Rating,
			product.SoldCount,
			product.Category,
			pq.Array(product.Tags),
			pq.Array(product.RecommendFor),
			product.IsActive,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&product.CreatedAt, &product.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return product, nil
}

// DeleteAll удаляет весь каталог, возвращает число удаленных товаров
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := psqlbuilder.Delete(tableProducts).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Brand,
		&p.Image,
		&p.Unit,
		&p.Weight,
		&p.Price,
		&p.OriginalPrice,
		&p.Stock,
		&p.Rating,
		&p.SoldCount,
		&p.Category,
		pq.Array(&p.Tags),
		pq.Array(&p.RecommendFor),
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
