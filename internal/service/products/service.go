package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	productRepo "github.com/m04kA/SMC-LaundryService/internal/infra/storage/product"
	"github.com/m04kA/SMC-LaundryService/internal/service/products/models"
)

// Service чтение каталога для покупателей. Неактивные товары не возвращаются.
type Service struct {
	productRepo ProductRepository
	logger      Logger
}

func NewService(productRepo ProductRepository, logger Logger) *Service {
	return &Service{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List возвращает активные товары по фильтру
func (s *Service) List(ctx context.Context, req *models.ListProductsRequest) ([]models.ProductResponse, error) {
	s.logger.Info("ListProducts: category=%q, search=%q, sort=%q", req.Category, req.Search, req.Sort)

	filter := domain.ProductFilter{
		Search:   strings.TrimSpace(req.Search),
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Sort:     domain.ParseProductSortKey(req.Sort),
	}

	if category := strings.TrimSpace(req.Category); category != "" && category != domain.RecommendForAll {
		parsed, err := domain.ParseProductCategory(category)
		if err != nil {
			s.logger.Warn("ListProducts: unknown category=%q", req.Category)
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
		}
		filter.Category = &parsed
	}

	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		s.logger.Warn("ListProducts: minPrice=%v greater than maxPrice=%v", *filter.MinPrice, *filter.MaxPrice)
		return nil, fmt.Errorf("%w: minPrice greater than maxPrice", ErrInvalidInput)
	}

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListProducts: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("ListProducts: found %d products", len(products))
	return models.FromDomainProductList(products), nil
}

// GetByID возвращает активный товар
func (s *Service) GetByID(ctx context.Context, id string) (*models.ProductResponse, error) {
	s.logger.Info("GetProduct: fetching product id=%s", id)

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			s.logger.Warn("GetProduct: product id=%s not found", id)
			return nil, ErrProductNotFound
		}
		s.logger.Error("GetProduct: repository error for product id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStorage, err)
	}

	return models.FromDomainProduct(product), nil
}

// ByServiceType возвращает товары, рекомендуемые для типа услуги (recommendFor содержит тег или "all")
func (s *Service) ByServiceType(ctx context.Context, serviceType string, limit int) ([]models.ProductResponse, error) {
	serviceType = strings.TrimSpace(serviceType)
	if serviceType == "" {
		return nil, fmt.Errorf("%w: service type is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = domain.DefaultServiceRecommendationsLimit
	}

	s.logger.Info("ByServiceType: service=%s, limit=%d", serviceType, limit)

	products, err := s.productRepo.FindActiveByRecommendFor(ctx, nil, serviceType, limit)
	if err != nil {
		s.logger.Error("ByServiceType: repository error for service=%s: %v", serviceType, err)
		return nil, fmt.Errorf("%w: ByServiceType - repository error: %v", ErrStorage, err)
	}

	return models.FromDomainProductList(products), nil
}

// Featured возвращает витринную подборку: хиты продаж, новинки или товары со скидкой
func (s *Service) Featured(ctx context.Context, kind models.FeaturedKind, limit int) ([]models.ProductResponse, error) {
	if limit <= 0 {
		limit = domain.DefaultFeaturedLimit
	}

	filter := domain.ProductFilter{Limit: limit}
	switch kind {
	case models.FeaturedBestsellers:
		filter.Sort = domain.SortBySoldCount
	case models.FeaturedNew:
		filter.Sort = domain.SortByNewest
	case models.FeaturedDiscounted:
		filter.Sort = domain.SortBySoldCount
		filter.DiscountedOnly = true
	default:
		s.logger.Warn("Featured: unknown kind=%q", kind)
		return nil, fmt.Errorf("%w: unknown featured kind %q", ErrInvalidInput, kind)
	}

	s.logger.Info("Featured: kind=%s, limit=%d", kind, limit)

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Featured: repository error for kind=%s: %v", kind, err)
		return nil, fmt.Errorf("%w: Featured - repository error: %v", ErrStorage, err)
	}

	return models.FromDomainProductList(products), nil
}
