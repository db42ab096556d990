package get_stats

import (
	"net/http"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
	"github.com/m04kA/SMC-LaundryService/internal/service/bookings/models"
)

const msgLoadFailed = "Lỗi khi tải thống kê"

// Response {success, stats}
type Response struct {
	Success bool                  `json:"success"`
	Stats   *models.StatsResponse `json:"stats"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /stats - Failed to get stats: %v", err)
		handlers.RespondInternalError(w, msgLoadFailed)
		return
	}

	h.logger.Info("GET /stats - Stats retrieved: total=%d", stats.Total)
	handlers.RespondJSON(w, http.StatusOK, Response{Success: true, Stats: stats})
}
