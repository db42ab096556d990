package catalogseed

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// Seeder заполняет каталог начальными товарами
type Seeder struct {
	productRepo ProductRepository
	logger      Logger
}

func NewSeeder(productRepo ProductRepository, logger Logger) *Seeder {
	return &Seeder{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Run добавляет товары в каталог. Непустой каталог без force не трогается,
// с force текущие товары удаляются перед вставкой.
func (s *Seeder) Run(ctx context.Context, products []*domain.Product, force bool) (int, error) {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Seed - failed to count products: %v", err)
		return 0, fmt.Errorf("%w: Run - count products: %v", ErrStorage, err)
	}

	if count > 0 {
		if !force {
			s.logger.Warn("Seed - catalog already has %d products, use force to replace them", count)
			return 0, fmt.Errorf("%w: Run - %d products present", ErrCatalogNotEmpty, count)
		}

		deleted, err := s.productRepo.DeleteAll(ctx)
		if err != nil {
			s.logger.Error("Seed - failed to delete products: %v", err)
			return 0, fmt.Errorf("%w: Run - delete products: %v", ErrStorage, err)
		}
		s.logger.Info("Seed - deleted %d products", deleted)
	}

	for i, product := range products {
		created, err := s.productRepo.Create(ctx, product)
		if err != nil {
			s.logger.Error("Seed - failed to create product %q: %v", product.Name, err)
			return i, fmt.Errorf("%w: Run - create product %q: %v", ErrStorage, product.Name, err)
		}
		s.logger.Info("Seed - %s (%s) - %.0fđ", created.Name, created.Category, created.Price)
	}

	return len(products), nil
}
