package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	"github.com/m04kA/SMC-LaundryService/internal/integrations/paymentgateway"
	"github.com/m04kA/SMC-LaundryService/pkg/ptr"
)

// UseCase use case для создания заказа
type UseCase struct {
	bookingRepo   BookingRepository
	recommender   Recommender
	paymentClient PaymentGatewayClient // nil - интеграция с платежным шлюзом выключена
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	recommender Recommender,
	paymentClient PaymentGatewayClient,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		recommender:   recommender,
		paymentClient: paymentClient,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute валидирует запрос, сохраняет заказ в статусе pending и подбирает рекомендации.
// Ошибки подбора рекомендаций и платежного шлюза не влияют на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация до любой записи
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: name=%s, phone=%s, service=%s, paymentMethod=%s",
		req.Name, req.Phone, req.Service, req.PaymentMethod)

	// 2. Собираем заказ с значениями по умолчанию
	booking := uc.buildBooking(req)

	// 3. Сохраняем
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrStorage, err)
	}

	uc.metrics.IncBookingsCreated(string(created.PaymentMethod))
	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	// 4. Рекомендации. Правило про мешок опирается на UseBagDefaulted, как и при пересчете по ID.
	recommended := uc.recommender.Recommend(ctx, created)
	if recommended == nil {
		recommended = []*domain.Product{}
	}

	resp := &Response{
		Booking:             created,
		RecommendedProducts: recommended,
	}

	// 5. Онлайн-оплата: только флаг и, если доступно, ссылка на оплату
	if created.RequiresOnlinePayment() {
		resp.PaymentRequired = true
		resp.PaymentURL = uc.requestPaymentURL(ctx, created)
	}

	return resp, nil
}

// buildBooking применяет значения по умолчанию. Нераспознанные опции заменяются значением по умолчанию,
// обязательными остаются только поля из validateRequest. Статус и статус оплаты клиент не задает.
func (uc *UseCase) buildBooking(req *Request) *domain.Booking {
	bleach, err := domain.ParseBleachOption(req.Bleach)
	if err != nil {
		uc.logger.Warn("CreateBooking: unknown bleach %q, using %q", req.Bleach, domain.BleachUse)
		bleach = domain.BleachUse
	}

	useBag, err := domain.ParseBagOption(req.UseBag)
	if err != nil {
		uc.logger.Warn("CreateBooking: unknown useBag %q, using %q", req.UseBag, domain.BagYes)
		useBag = domain.BagYes
	}
	useBagDefaulted := err != nil || strings.TrimSpace(req.UseBag) == ""

	paymentMethod, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		uc.logger.Warn("CreateBooking: unknown paymentMethod %q, using %q", req.PaymentMethod, domain.PaymentCOD)
		paymentMethod = domain.PaymentCOD
	}

	detergent := strings.TrimSpace(req.Detergent)
	if detergent == "" {
		detergent = domain.DefaultDetergent
	}

	now := uc.timeProvider.Now()

	return &domain.Booking{
		Name:             strings.TrimSpace(req.Name),
		Phone:            strings.TrimSpace(req.Phone),
		Address:          strings.TrimSpace(req.Address),
		Service:          strings.TrimSpace(req.Service),
		PickupDate:       req.PickupDate,
		DeliveryDate:     req.DeliveryDate,
		Detergent:        detergent,
		Bleach:           bleach,
		UseBag:           useBag,
		UseBagDefaulted:  useBagDefaulted,
		DryCleaningItems: req.DryCleaningItems,
		Notes:            req.Notes,
		PaymentMethod:    paymentMethod,
		Status:           domain.StatusPending,
		PaymentStatus:    domain.PaymentUnpaid,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// requestPaymentURL запрашивает ссылку на оплату, nil при выключенной интеграции или ошибке шлюза
func (uc *UseCase) requestPaymentURL(ctx context.Context, booking *domain.Booking) *string {
	if uc.paymentClient == nil {
		return nil
	}

	checkout, err := uc.paymentClient.CreateCheckoutWithGracefulDegradation(ctx, paymentgateway.CheckoutRequest{
		OrderID:     booking.ID,
		Description: fmt.Sprintf("Laundry order %s (%s)", booking.ID, booking.Service),
		CustomerTel: booking.Phone,
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: payment url unavailable for booking id=%s: %v", booking.ID, err)
		return nil
	}

	return ptr.Ptr(checkout.PaymentURL)
}
