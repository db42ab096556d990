package domain

// Значения по умолчанию при создании заказа
const (
	DefaultDetergent = "Omo"
)

// Рекомендации
const (
	MaxRecommendedProducts = 4
	RecommendForAll        = "all"
)

// Пагинация
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxListOffset страницы дальше этого смещения заведомо пусты
	MaxListOffset = 1<<31 - 1
)

// Каталог
const (
	DefaultServiceRecommendationsLimit = 6
	DefaultFeaturedLimit               = 8
	MaxProductRating                   = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses все статусы заказа
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusCompleted,
	StatusCancelled,
}

// statusTransitions допустимые переходы в строгом режиме
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusProcessing, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCompleted, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusCancelled},
}

// Ключевые слова для сопоставления типа услуги (сравнение без учета регистра и диакритики)
var (
	WashKeywords     = []string{"giặt", "wash", "laundry"}
	DryCleanKeywords = []string{"khô", "dry-clean", "dry clean", "dryclean"}
)
