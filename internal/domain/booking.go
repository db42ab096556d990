package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrUnknownStatus возвращается при разборе неизвестного статуса
	ErrUnknownStatus = errors.New("domain: unknown booking status")

	// ErrUnknownPaymentStatus возвращается при разборе неизвестного статуса оплаты
	ErrUnknownPaymentStatus = errors.New("domain: unknown payment status")

	// ErrUnknownPaymentMethod возвращается при разборе неизвестного способа оплаты
	ErrUnknownPaymentMethod = errors.New("domain: unknown payment method")

	// ErrUnknownOption возвращается при разборе неизвестного значения опции заказа
	ErrUnknownOption = errors.New("domain: unknown booking option")
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusProcessing BookingStatus = "processing"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// ParseBookingStatus converts a wire value into a BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range AllStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", ErrUnknownStatus
}

// CanTransitionTo reports whether next is allowed after s in the strict workflow.
// The same status is always allowed, completed and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true for completed and cancelled
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// PaymentStatus статус оплаты заказа
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentUnpaid:
		return PaymentUnpaid, nil
	case PaymentPaid:
		return PaymentPaid, nil
	}
	return "", ErrUnknownPaymentStatus
}

// PaymentMethod способ оплаты
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "cod"
	PaymentOnline PaymentMethod = "online"
)

// ParsePaymentMethod пустое значение трактуется как cod
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case "", PaymentCOD:
		return PaymentCOD, nil
	case PaymentOnline:
		return PaymentOnline, nil
	}
	return "", ErrUnknownPaymentMethod
}

// BleachOption использование отбеливателя.
// Значения хранятся в том виде, в котором их отправляет клиент.
type BleachOption string

const (
	BleachUse      BleachOption = "Sử dụng"
	BleachDoNotUse BleachOption = "Không sử dụng"
)

// ParseBleachOption пустое значение трактуется как BleachUse
func ParseBleachOption(s string) (BleachOption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "use", strings.ToLower(string(BleachUse)):
		return BleachUse, nil
	case "do-not-use", "no", strings.ToLower(string(BleachDoNotUse)):
		return BleachDoNotUse, nil
	}
	return "", ErrUnknownOption
}

// BagOption использование мешка для белья
type BagOption string

const (
	BagYes BagOption = "Có"
	BagNo  BagOption = "Không"
)

// ParseBagOption пустое значение трактуется как BagYes
func ParseBagOption(s string) (BagOption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yes", strings.ToLower(string(BagYes)):
		return BagYes, nil
	case "no", strings.ToLower(string(BagNo)):
		return BagNo, nil
	}
	return "", ErrUnknownOption
}

// Booking represents a laundry service order
type Booking struct {
	ID      string
	Name    string
	Phone   string
	Address string
	Service string // свободный текст, сопоставляется по ключевым словам

	PickupDate   *time.Time
	DeliveryDate *time.Time

	Detergent        string
	Bleach           BleachOption
	UseBag           BagOption // пустое значение = опция не указана
	// UseBagDefaulted клиент не выбрал опцию, UseBag заполнен значением по умолчанию
	UseBagDefaulted  bool
	DryCleaningItems bool
	Notes            string

	PaymentMethod PaymentMethod
	Status        BookingStatus
	PaymentStatus PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NeedsBag returns true if the customer did not choose a laundry bag or declined it
func (b *Booking) NeedsBag() bool {
	return b.UseBag == "" || b.UseBagDefaulted || b.UseBag == BagNo
}

// RequiresOnlinePayment returns true if the customer chose to pay online
func (b *Booking) RequiresOnlinePayment() bool {
	return b.PaymentMethod == PaymentOnline
}

// BookingStats количество заказов по статусам.
// Confirmed включает заказы в статусе processing.
type BookingStats struct {
	Total     int
	Pending   int
	Confirmed int
	Completed int
	Cancelled int
}
