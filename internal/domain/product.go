package domain

import (
	"errors"
	"math"
	"strings"
	"time"
)

// ErrUnknownCategory возвращается при разборе неизвестной категории товара
var ErrUnknownCategory = errors.New("domain: unknown product category")

// ProductCategory closed classification of a catalog product
type ProductCategory string

const (
	CategoryDetergent ProductCategory = "detergent"
	CategorySoftener  ProductCategory = "softener"
	CategoryBleach    ProductCategory = "bleach"
	CategoryBag       ProductCategory = "bag"
	CategoryAccessory ProductCategory = "accessory"
	CategoryOther     ProductCategory = "other"
)

var allCategories = []ProductCategory{
	CategoryDetergent,
	CategorySoftener,
	CategoryBleach,
	CategoryBag,
	CategoryAccessory,
	CategoryOther,
}

func ParseProductCategory(s string) (ProductCategory, error) {
	category := ProductCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range allCategories {
		if category == valid {
			return category, nil
		}
	}
	return "", ErrUnknownCategory
}

// ProductSortKey порядок выборки товаров из каталога
type ProductSortKey string

const (
	SortBySoldCount ProductSortKey = "popular"
	SortByRating    ProductSortKey = "rating"
	SortByPriceAsc  ProductSortKey = "price-asc"
	SortByPriceDesc ProductSortKey = "price-desc"
	SortByNewest    ProductSortKey = "newest"
	// SortByInsertion порядок добавления в каталог
	SortByInsertion ProductSortKey = "insertion"
)

// ParseProductSortKey неизвестное или пустое значение трактуется как SortBySoldCount
func ParseProductSortKey(s string) ProductSortKey {
	switch key := ProductSortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case SortByRating, SortByPriceAsc, SortByPriceDesc, SortByNewest, SortByInsertion:
		return key
	default:
		return SortBySoldCount
	}
}

// Product represents a supplementary product sold alongside laundry services
type Product struct {
	ID          string
	Name        string
	Description string
	Brand       string
	Image       string
	Unit        string
	Weight      string

	Price         float64
	OriginalPrice *float64
	Stock         int
	Rating        float64
	SoldCount     int

	Category     ProductCategory
	Tags         []string
	RecommendFor []string // теги типов услуг или RecommendForAll
	IsActive     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasDiscount returns true if the product is sold below its original price
func (p *Product) HasDiscount() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// DiscountPercent returns the rounded discount in percent, 0 when there is no discount
func (p *Product) DiscountPercent() int {
	if !p.HasDiscount() || *p.OriginalPrice <= 0 {
		return 0
	}
	return int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
}

// IsRecommendedFor returns true if the product may be suggested for the given service tag
func (p *Product) IsRecommendedFor(serviceTag string) bool {
	for _, tag := range p.RecommendFor {
		if tag == RecommendForAll || tag == serviceTag {
			return true
		}
	}
	return false
}

// ProductFilter фильтр для выборки активных товаров каталога
type ProductFilter struct {
	Category       *ProductCategory // nil - все категории
	Search         string           // по названию, описанию, бренду и тегам
	MinPrice       *float64
	MaxPrice       *float64
	DiscountedOnly bool
	Sort           ProductSortKey
	Limit          int // 0 - без ограничения
}
