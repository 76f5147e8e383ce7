package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/broker"
	"hotel-booking/pkg/cache"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Infra carries the process-lifetime clients. Every field may be nil: a nil
// Redis disables caching and rate limiting, a nil publisher drops events.
type Infra struct {
	DB     adaptor.Pinger
	Redis  *redis.Client
	Events broker.Publisher
}

type App struct {
	Router *chi.Mux
}

func Wiring(repo *repository.Repository, infra Infra, config *utils.Config, logger *zap.Logger) *App {
	if infra.Events == nil {
		infra.Events = broker.NopPublisher{}
	}

	catalogCache := cache.NewJSONCache(infra.Redis, config.Redis.CacheTTL, logger)
	service := usecase.NewService(repo, config, catalogCache, infra.Events, logger)
	handler := adaptor.NewHandler(service, infra.DB, logger)

	router := setupRouter(handler, infra, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	infra Infra,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))

	r.NotFound(middleware.NotFound)
	r.MethodNotAllowed(middleware.MethodNotAllowed(r))

	wireAuth(r, handler.Auth, infra, config, logger)
	wireUser(r, handler.User, config, logger)
	wireCatalog(r, handler.Catalog)
	wireBooking(r, handler.Booking, config, logger)
	wireOrder(r, handler.Order, config, logger)
	wirePayment(r, handler.Payment, config, logger)
	wireFeedback(r, handler.Feedback, config, logger)

	r.Get("/health", handler.Health.Health)

	return r
}
