package recommendations

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// Engine подбирает сопутствующие товары для заказа.
// Рекомендации носят справочный характер: ошибки каталога не пробрасываются,
// вместо них возвращается пустой список.
type Engine struct {
	catalog CatalogRepository
	metrics Metrics
	logger  Logger
}

func NewEngine(catalog CatalogRepository, metrics Metrics, logger Logger) *Engine {
	return &Engine{
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}
}

// Recommend возвращает не более domain.MaxRecommendedProducts товаров без повторов.
// Выборки по правилам выполняются параллельно, результат собирается в порядке правил.
func (e *Engine) Recommend(ctx context.Context, booking *domain.Booking) []*domain.Product {
	applicable := make([]rule, 0, len(rules))
	for _, r := range rules {
		if r.applies(booking) {
			applicable = append(applicable, r)
		}
	}

	results := make([][]*domain.Product, len(applicable))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range applicable {
		i, r := i, r
		g.Go(func() error {
			products, err := e.catalog.FindActiveByCategory(gctx, r.category, r.sortKey, r.limit)
			if err != nil {
				e.logger.Warn("Recommend: rule %s failed for booking id=%s: %v", r.name, booking.ID, err)
				return err
			}
			results[i] = products
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.logger.Error("Recommend: degraded to empty result for booking id=%s: %v", booking.ID, err)
		e.metrics.IncRecommendationsDegraded()
		return []*domain.Product{}
	}

	candidates := make([]*domain.Product, 0, domain.MaxRecommendedProducts+1)
	for _, products := range results {
		candidates = append(candidates, products...)
	}

	recommended := dedupe(candidates, domain.MaxRecommendedProducts)

	e.metrics.ObserveRecommendedProducts(len(recommended))
	e.logger.Info("Recommend: %d products for booking id=%s, service=%q", len(recommended), booking.ID, booking.Service)

	return recommended
}

// dedupe убирает повторы по ID с сохранением порядка первого вхождения и обрезает до limit
func dedupe(products []*domain.Product, limit int) []*domain.Product {
	seen := make(map[string]struct{}, len(products))
	out := make([]*domain.Product, 0, limit)

	for _, p := range products {
		if p == nil {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}

	return out
}
