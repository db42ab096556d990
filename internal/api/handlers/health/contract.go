package health

import "context"

// Pinger проверка соединения с БД (*sql.DB)
type Pinger interface {
	PingContext(ctx context.Context) error
}
