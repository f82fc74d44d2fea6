package handlers

import (
	"database/sql"
	"net/http"

	"doonconnect/internal/catalog"
	"doonconnect/internal/services"

	"github.com/gin-gonic/gin"
)

// API bundles the services the HTTP layer exposes. One instance is built in
// main and shared by every handler.
type API struct {
	Catalog  *catalog.Catalog
	Seats    *catalog.Availability
	Slots    services.SlotService
	Fare     services.FareService
	Bookings *services.BookingService
	Tickets  *services.TicketService
	Auth     services.AuthService
	Admin    *services.AdminService
	Live     *services.LiveService
	DB       *sql.DB // nil when running on the in-memory store
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "empty_body", "request body required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "could not parse request body", err.Error())
		return false
	}
	return true
}
