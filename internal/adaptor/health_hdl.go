package adaptor

import (
	"context"
	"net/http"
	"time"

	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	log *zap.Logger
}

func NewHealthHandler(db Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log.With(zap.String("handler", "health")),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			h.log.Error("Health check failed", zap.Error(err))
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "Database unavailable", nil, nil)
			return
		}
	}

	utils.ResponseSuccess(w, "OK", map[string]string{"status": "ok"})
}
