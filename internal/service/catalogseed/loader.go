package catalogseed

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

type seedFile struct {
	Products []productEntry `yaml:"products"`
}

type productEntry struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Brand         string   `yaml:"brand"`
	Image         string   `yaml:"image"`
	Unit          string   `yaml:"unit"`
	Weight        string   `yaml:"weight"`
	Price         float64  `yaml:"price"`
	OriginalPrice *float64 `yaml:"original_price"`
	Stock         int      `yaml:"stock"`
	Rating        float64  `yaml:"rating"`
	SoldCount     int      `yaml:"sold_count"`
	Category      string   `yaml:"category"`
	Tags          []string `yaml:"tags"`
	RecommendFor  []string `yaml:"recommend_for"`
	IsActive      *bool    `yaml:"is_active"`
}

// LoadFile читает YAML файл с товарами
func LoadFile(path string) ([]*domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadFile - read %s: %v", ErrInvalidSeedFile, path, err)
	}
	return Parse(data)
}

// Parse разбирает YAML документ вида {products: [...]}.
// Отсутствующий is_active означает активный товар.
func Parse(data []byte) ([]*domain.Product, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: Parse - decode yaml: %v", ErrInvalidSeedFile, err)
	}

	products := make([]*domain.Product, 0, len(file.Products))
	for i, entry := range file.Products {
		product, err := entry.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: Parse - product #%d (%q): %v", ErrInvalidSeedFile, i+1, entry.Name, err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (e productEntry) toDomain() (*domain.Product, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return nil, fmt.Errorf("empty name")
	}
	if e.Price < 0 {
		return nil, fmt.Errorf("negative price %v", e.Price)
	}
	if e.Rating < 0 || e.Rating > domain.MaxProductRating {
		return nil, fmt.Errorf("rating %v out of range", e.Rating)
	}

	category, err := domain.ParseProductCategory(e.Category)
	if err != nil {
		return nil, err
	}

	isActive := true
	if e.IsActive != nil {
		isActive = *e.IsActive
	}

	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	recommendFor := e.RecommendFor
	if recommendFor == nil {
		recommendFor = []string{}
	}

	return &domain.Product{
		Name:          name,
		Description:   e.Description,
		Brand:         e.Brand,
		Image:         e.Image,
		Unit:          e.Unit,
		Weight:        e.Weight,
		Price:         e.Price,
		OriginalPrice: e.OriginalPrice,
		Stock:         e.Stock,
		Rating:        e.Rating,
		SoldCount:     e.SoldCount,
		Category:      category,
		Tags:          tags,
		RecommendFor:  recommendFor,
		IsActive:      isActive,
	}, nil
}
