package list_products

import (
	"net/url"
	"strings"

	"github.com/spf13/cast"

	"github.com/m04kA/SMC-LaundryService/internal/service/products/models"
)

// Response {success, data[], count}
type Response struct {
	Success bool                     `json:"success"`
	Data    []models.ProductResponse `json:"data"`
	Count   int                      `json:"count"`
}

// parseQuery разбирает параметры каталога. Пустая цена = без ограничения.
func parseQuery(query url.Values) (*models.ListProductsRequest, error) {
	req := &models.ListProductsRequest{
		Category: query.Get("category"),
		Search:   query.Get("search"),
		Sort:     query.Get("sort"),
	}

	var err error
	if req.MinPrice, err = parsePrice(query.Get("minPrice")); err != nil {
		return nil, err
	}
	if req.MaxPrice, err = parsePrice(query.Get("maxPrice")); err != nil {
		return nil, err
	}

	return req, nil
}

func parsePrice(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	price, err := cast.ToFloat64E(raw)
	if err != nil {
		return nil, err
	}
	return &price, nil
}
