package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/rooms", catalogHandler.ListRooms)
	r.Get("/api/rooms/{id}", catalogHandler.GetRoom)
	r.Get("/api/services", catalogHandler.ListServices)
	r.Get("/api/offers", catalogHandler.ListOffers)
}
