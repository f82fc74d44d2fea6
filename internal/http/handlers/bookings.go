package handlers

import (
	"net/http"

	"doonconnect/internal/domain/models"
	"doonconnect/internal/services"
	"doonconnect/internal/utils"

	"github.com/gin-gonic/gin"
)

type openBookingPayload struct {
	RouteID string `json:"routeId"`
}

func (a *API) OpenBooking(c *gin.Context) {
	var in openBookingPayload
	if !BindJSONOrError(c, &in) {
		return
	}
	draft, err := a.Bookings.Open(in.RouteID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

func (a *API) GetBooking(c *gin.Context) {
	draft, err := a.Bookings.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (a *API) CompleteBookingAuth(c *gin.Context) {
	draft, err := a.Bookings.CompleteAuth(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (a *API) SelectStops(c *gin.Context) {
	var in services.StopSelectionInput
	if !BindJSONOrError(c, &in) {
		return
	}
	draft, err := a.Bookings.SelectStops(c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

type seatSelectionPayload struct {
	Seats []string `json:"seats"`
	// Comma separated fallback some clients send instead of an array.
	SeatList string `json:"seatList"`
}

func (a *API) SelectSeats(c *gin.Context) {
	var in seatSelectionPayload
	if !BindJSONOrError(c, &in) {
		return
	}
	seats := in.Seats
	if len(seats) == 0 && in.SeatList != "" {
		seats = utils.SplitSeatList(in.SeatList)
	}
	draft, err := a.Bookings.SelectSeats(c.Param("id"), seats)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (a *API) BookingQuote(c *gin.Context) {
	breakdown, err := a.Bookings.Quote(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

type paymentSelectionPayload struct {
	Method models.PaymentMethod `json:"method"`
}

func (a *API) SelectPayment(c *gin.Context) {
	var in paymentSelectionPayload
	if !BindJSONOrError(c, &in) {
		return
	}
	breakdown, err := a.Bookings.SelectPayment(c.Param("id"), in.Method)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// ConfirmBooking completes payment and returns the issued ticket. Replaying
// the call returns the same ticket.
func (a *API) ConfirmBooking(c *gin.Context) {
	ticket, err := a.Bookings.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (a *API) BookingBack(c *gin.Context) {
	draft, err := a.Bookings.Back(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (a *API) CancelBooking(c *gin.Context) {
	if err := a.Bookings.Cancel(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}
