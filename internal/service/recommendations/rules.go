package recommendations

import "github.com/m04kA/SMC-LaundryService/internal/domain"

// rule одно правило подбора: условие по заказу и выборка из каталога.
// Правила применяются в порядке объявления, кандидаты дедуплицируются в конце.
type rule struct {
	name     string
	applies  func(b *domain.Booking) bool
	category domain.ProductCategory
	sortKey  domain.ProductSortKey
	limit    int
}

var rules = []rule{
	{
		name:     "wash-detergent",
		applies:  isWash,
		category: domain.CategoryDetergent,
		sortKey:  domain.SortBySoldCount,
		limit:    2,
	},
	{
		name:     "wash-softener",
		applies:  isWash,
		category: domain.CategorySoftener,
		sortKey:  domain.SortBySoldCount,
		limit:    1,
	},
	{
		name:     "dry-clean-bag",
		applies:  isDryClean,
		category: domain.CategoryBag,
		sortKey:  domain.SortByInsertion,
		limit:    2,
	},
	{
		name:     "missing-bag",
		applies:  needsBag,
		category: domain.CategoryBag,
		sortKey:  domain.SortBySoldCount,
		limit:    1,
	},
	{
		name:     "accessory",
		applies:  always,
		category: domain.CategoryAccessory,
		sortKey:  domain.SortByRating,
		limit:    1,
	},
}

func isWash(b *domain.Booking) bool {
	return domain.IsWashService(b.Service)
}

func isDryClean(b *domain.Booking) bool {
	return domain.IsDryCleanService(b.Service)
}

func needsBag(b *domain.Booking) bool {
	return b.NeedsBag()
}

func always(*domain.Booking) bool {
	return true
}
