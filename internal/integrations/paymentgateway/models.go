package paymentgateway

// CheckoutRequest запрос на создание сессии оплаты
type CheckoutRequest struct {
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount,omitempty"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	CustomerTel string  `json:"customer_phone"`
	ReturnURL   string  `json:"return_url,omitempty"`
}

// Checkout созданная сессия оплаты
type Checkout struct {
	ID         string `json:"id"`
	PaymentURL string `json:"payment_url"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
