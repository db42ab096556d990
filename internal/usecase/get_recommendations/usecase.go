package get_recommendations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LaundryService/internal/infra/storage/booking"
)

// UseCase пересчитывает рекомендации для сохраненного заказа
type UseCase struct {
	bookingRepo BookingRepository
	recommender Recommender
	logger      Logger
}

func NewUseCase(bookingRepo BookingRepository, recommender Recommender, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		recommender: recommender,
		logger:      logger,
	}
}

// Execute возвращает рекомендации по текущему состоянию каталога.
// Ошибка возможна только при чтении заказа, сбои каталога дают пустой список.
func (uc *UseCase) Execute(ctx context.Context, bookingID string) ([]*domain.Product, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	uc.logger.Info("GetRecommendations: booking id=%s", bookingID)

	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("GetRecommendations: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("GetRecommendations: failed to get booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrStorage, err)
	}

	products := uc.recommender.Recommend(ctx, booking)
	if products == nil {
		products = []*domain.Product{}
	}

	return products, nil
}
