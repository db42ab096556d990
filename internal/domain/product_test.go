package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-LaundryService/pkg/ptr"
)

func TestProduct_Discount(t *testing.T) {
	p := &Product{Price: 89000, OriginalPrice: ptr.Ptr(120000.0)}
	assert.True(t, p.HasDiscount())
	assert.Equal(t, 26, p.DiscountPercent())

	p = &Product{Price: 100, OriginalPrice: ptr.Ptr(100.0)}
	assert.False(t, p.HasDiscount())
	assert.Equal(t, 0, p.DiscountPercent())

	assert.False(t, (&Product{Price: 10}).HasDiscount())
}

func TestProduct_IsRecommendedFor(t *testing.T) {
	p := &Product{RecommendFor: []string{"giat-say"}}
	assert.True(t, p.IsRecommendedFor("giat-say"))
	assert.False(t, p.IsRecommendedFor("giat-kho"))

	p.RecommendFor = []string{RecommendForAll}
	assert.True(t, p.IsRecommendedFor("giat-kho"))
}

func TestParseProductSortKey(t *testing.T) {
	assert.Equal(t, SortByPriceAsc, ParseProductSortKey("price-asc"))
	assert.Equal(t, SortBySoldCount, ParseProductSortKey(""))
	assert.Equal(t, SortBySoldCount, ParseProductSortKey("bogus"))
}
