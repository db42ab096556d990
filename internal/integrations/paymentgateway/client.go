package paymentgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultCurrency = "VND"

	// maxErrorBodySize сколько байт тела ошибки шлюза попадает в текст ошибки
	maxErrorBodySize = 1 << 10
)

// Client клиент платежного шлюза
type Client struct {
	baseURL    string
	returnURL  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
func NewClient(baseURL, returnURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		returnURL: returnURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateCheckout создает сессию оплаты для заказа и возвращает ссылку на оплату
func (c *Client) CreateCheckout(ctx context.Context, checkout CheckoutRequest) (*Checkout, error) {
	url := fmt.Sprintf("%s/internal/checkouts", c.baseURL)

	if checkout.Currency == "" {
		checkout.Currency = defaultCurrency
	}
	if checkout.ReturnURL == "" {
		checkout.ReturnURL = c.returnURL
	}

	body, err := json.Marshal(checkout)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		var errResp ErrorResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&errResp)
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, errResp.Message)
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var created Checkout
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if created.PaymentURL == "" {
		return nil, fmt.Errorf("%w: empty payment_url", ErrInvalidResponse)
	}

	return &created, nil
}

// CreateCheckoutWithGracefulDegradation создает сессию оплаты с graceful degradation.
// Любая ошибка шлюза превращается в ErrServiceDegraded: заказ уже сохранен и оплату можно провести позже.
func (c *Client) CreateCheckoutWithGracefulDegradation(ctx context.Context, checkout CheckoutRequest) (*Checkout, error) {
	c.log.Info("Creating checkout for order_id=%s", checkout.OrderID)

	created, err := c.CreateCheckout(ctx, checkout)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			c.log.Warn("Payment gateway rejected checkout for order_id=%s: %v", checkout.OrderID, err)
		} else {
			c.log.Error("Payment gateway unavailable, applying graceful degradation for order_id=%s: %v", checkout.OrderID, err)
		}
		return nil, fmt.Errorf("%w: order_id=%s, error=%v", ErrServiceDegraded, checkout.OrderID, err)
	}

	c.log.Info("Successfully created checkout id=%s for order_id=%s", created.ID, checkout.OrderID)
	return created, nil
}
