package models

import (
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// FeaturedKind вид подборки товаров на витрине
type FeaturedKind string

const (
	FeaturedBestsellers FeaturedKind = "bestsellers"
	FeaturedNew         FeaturedKind = "new"
	FeaturedDiscounted  FeaturedKind = "discounted"
)

// ListProductsRequest параметры каталога. Пустые значения не фильтруют.
type ListProductsRequest struct {
	Category string // "all" или пусто - все категории
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
}

// ProductResponse товар в формате API
type ProductResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	OriginalPrice   *float64  `json:"originalPrice,omitempty"`
	DiscountPercent int       `json:"discountPercent,omitempty"`
	Category        string    `json:"category"`
	Brand           string    `json:"brand"`
	Image           string    `json:"image"`
	Stock           int       `json:"stock"`
	Unit            string    `json:"unit"`
	Weight          string    `json:"weight"`
	Rating          float64   `json:"rating"`
	SoldCount       int       `json:"soldCount"`
	Tags            []string  `json:"tags"`
	RecommendFor    []string  `json:"recommendFor"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromDomainProduct конвертирует domain модель в DTO
func FromDomainProduct(p *domain.Product) *ProductResponse {
	if p == nil {
		return nil
	}

	resp := &ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent(),
		Category:        string(p.Category),
		Brand:           p.Brand,
		Image:           p.Image,
		Stock:           p.Stock,
		Unit:            p.Unit,
		Weight:          p.Weight,
		Rating:          p.Rating,
		SoldCount:       p.SoldCount,
		Tags:            p.Tags,
		RecommendFor:    p.RecommendFor,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}

	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if resp.RecommendFor == nil {
		resp.RecommendFor = []string{}
	}

	return resp
}

// FromDomainProductList конвертирует список товаров, nil превращается в пустой список
func FromDomainProductList(products []*domain.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		resp = append(resp, *FromDomainProduct(p))
	}
	return resp
}
