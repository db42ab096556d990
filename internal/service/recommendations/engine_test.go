package recommendations

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	"github.com/m04kA/SMC-LaundryService/pkg/logger"
	"github.com/m04kA/SMC-LaundryService/pkg/metrics"
)

// memoryCatalog каталог в памяти, порядок слайса = порядок добавления
type memoryCatalog struct {
	mu       sync.Mutex
	products []*domain.Product
	err      error
	calls    []domain.ProductCategory
}

func (c *memoryCatalog) add(id string, category domain.ProductCategory, sold int, rating float64) *domain.Product {
	p := &domain.Product{ID: id, Name: id, Category: category, SoldCount: sold, Rating: rating, IsActive: true}
	c.products = append(c.products, p)
	return p
}

func (c *memoryCatalog) FindActiveByCategory(_ context.Context, category domain.ProductCategory, sortKey domain.ProductSortKey, limit int) ([]*domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, category)

	if c.err != nil {
		return nil, c.err
	}

	out := make([]*domain.Product, 0)
	for _, p := range c.products {
		if p.IsActive && p.Category == category {
			out = append(out, p)
		}
	}

	switch sortKey {
	case domain.SortBySoldCount:
		sort.SliceStable(out, func(i, j int) bool { return out[i].SoldCount > out[j].SoldCount })
	case domain.SortByRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type metricsSpy struct {
	metrics.Noop
	degraded int
	observed []int
}

func (m *metricsSpy) IncRecommendationsDegraded()    { m.degraded++ }
func (m *metricsSpy) ObserveRecommendedProducts(n int) { m.observed = append(m.observed, n) }

func ids(products []*domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func newEngine(catalog *memoryCatalog) (*Engine, *metricsSpy) {
	spy := &metricsSpy{}
	return NewEngine(catalog, spy, logger.NewNop()), spy
}

func TestRecommend_WashService(t *testing.T) {
	catalog := &memoryCatalog{}
	catalog.add("det-1", domain.CategoryDetergent, 1, 5)
	catalog.add("det-10", domain.CategoryDetergent, 10, 4)
	catalog.add("det-5", domain.CategoryDetergent, 5, 4)
	catalog.add("soft", domain.CategorySoftener, 3, 4)

	engine, spy := newEngine(catalog)

	got := engine.Recommend(context.Background(), &domain.Booking{ID: "b1", Service: "giat-say", UseBag: domain.BagYes})

	assert.Equal(t, []string{"det-10", "det-5", "soft"}, ids(got))
	assert.Equal(t, []int{3}, spy.observed)
}

func TestRecommend_WashServiceWithAccessory(t *testing.T) {
	catalog := &memoryCatalog{}
	catalog.add("det-10", domain.CategoryDetergent, 10, 4)
	catalog.add("det-5", domain.CategoryDetergent, 5, 4)
	catalog.add("soft", domain.CategorySoftener, 3, 4)
	catalog.add("acc-low", domain.CategoryAccessory, 50, 3.5)
	catalog.add("acc-top", domain.CategoryAccessory, 1, 4.9)

	engine, _ := newEngine(catalog)

	got := engine.Recommend(context.Background(), &domain.Booking{Service: "Giặt ủi", UseBag: domain.BagYes})

	assert.Equal(t, []string{"det-10", "det-5", "soft", "acc-top"}, ids(got))
}

func TestRecommend_MissingBagAppendsBestSellingBag(t *testing.T) {
	catalog := &memoryCatalog{}
	catalog.add("bag-a", domain.CategoryBag, 2, 4)
	catalog.add("bag-b", domain.CategoryBag, 9, 4)
	catalog.add("acc", domain.CategoryAccessory, 0, 5)

	engine, _ := newEngine(catalog)

	got := engine.Recommend(context.Background(), &domain.Booking{Service: "iron"})

	assert.Equal(t, []string{"bag-b", "acc"}, ids(got))
}

func TestRecommend_DryCleanBagsAreNotDuplicated(t *testing.T) {
	catalog := &memoryCatalog{}
	catalog.add("bag-a", domain.CategoryBag, 2, 4)
	catalog.add("bag-b", domain.CategoryBag, 9, 4)
	catalog.add("bag-c", domain.CategoryBag, 1, 4)

	engine, _ := newEngine(catalog)

	got := engine.Recommend(context.Background(), &domain.Booking{Service: "dry-clean", UseBag: domain.BagNo})

	// dry-clean берет первые два по порядку добавления, самый продаваемый bag-b уже среди них
	assert.Equal(t, []string{"bag-a", "bag-b"}, ids(got))
}

func TestRecommend_BoundedAndUnique(t *testing.T) {
	catalog := &memoryCatalog{}
	for i := 0; i < 5; i++ {
		catalog.add(fmt.Sprintf("det-%d", i), domain.CategoryDetergent, i, 4)
		catalog.add(fmt.Sprintf("soft-%d", i), domain.CategorySoftener, i, 4)
		catalog.add(fmt.Sprintf("bag-%d", i), domain.CategoryBag, i, 4)
		catalog.add(fmt.Sprintf("acc-%d", i), domain.CategoryAccessory, i, float64(i))
	}

	engine, _ := newEngine(catalog)

	services := []string{"giat-say", "giat-kho", "giat-ui", "wash-dry", "iron", ""}
	bags := []domain.BagOption{"", domain.BagYes, domain.BagNo}

	for _, service := range services {
		for _, bag := range bags {
			got := engine.Recommend(context.Background(), &domain.Booking{Service: service, UseBag: bag})
			require.LessOrEqual(t, len(got), domain.MaxRecommendedProducts, "service=%s bag=%s", service, bag)

			seen := map[string]bool{}
			for _, p := range got {
				assert.False(t, seen[p.ID], "duplicate %s for service=%s bag=%s", p.ID, service, bag)
				seen[p.ID] = true
			}
		}
	}
}

func TestRecommend_InactiveProductsExcluded(t *testing.T) {
	catalog := &memoryCatalog{}
	hidden := catalog.add("acc-hidden", domain.CategoryAccessory, 0, 5)
	hidden.IsActive = false
	catalog.add("acc-visible", domain.CategoryAccessory, 0, 3)

	engine, _ := newEngine(catalog)

	got := engine.Recommend(context.Background(), &domain.Booking{Service: "iron", UseBag: domain.BagYes})
	assert.Equal(t, []string{"acc-visible"}, ids(got))
}

func TestRecommend_DegradesOnCatalogError(t *testing.T) {
	catalog := &memoryCatalog{err: errors.New("connection refused")}

	engine, spy := newEngine(catalog)

	got := engine.Recommend(context.Background(), &domain.Booking{ID: "b1", Service: "giat-say"})

	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 1, spy.degraded)
}

func TestRecommend_OnlyApplicableRulesQueried(t *testing.T) {
	catalog := &memoryCatalog{}

	engine, _ := newEngine(catalog)
	engine.Recommend(context.Background(), &domain.Booking{Service: "iron", UseBag: domain.BagYes})

	assert.Equal(t, []domain.ProductCategory{domain.CategoryAccessory}, catalog.calls)
}

func TestDedupe(t *testing.T) {
	a := &domain.Product{ID: "a"}
	b := &domain.Product{ID: "b"}
	c := &domain.Product{ID: "c"}

	assert.Equal(t, []string{"a", "b"}, ids(dedupe([]*domain.Product{a, b, a, nil, c}, 2)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(dedupe([]*domain.Product{a, b, a, c}, 4)))
	assert.Empty(t, dedupe(nil, 4))
}
