package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
)

const (
	msgRunning = "Server is running!"

	databaseConnected    = "Connected"
	databaseDisconnected = "Disconnected"

	pingTimeout = 2 * time.Second
)

// Response {success, message, timestamp, database}
type Response struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

type Handler struct {
	db  Pinger
	now func() time.Time
}

func NewHandler(db Pinger) *Handler {
	return &Handler{
		db:  db,
		now: time.Now,
	}
}

// Handle GET /api/health. Сервер отвечает 200 и при недоступной БД.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	database := databaseConnected

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		database = databaseDisconnected
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Success:   true,
		Message:   msgRunning,
		Timestamp: h.now().UTC(),
		Database:  database,
	})
}
