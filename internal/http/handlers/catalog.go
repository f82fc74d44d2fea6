package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) Routes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"routes": a.Catalog.Routes()})
}

func (a *API) RouteByID(c *gin.Context) {
	route, err := a.Catalog.RouteByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (a *API) RouteStops(c *gin.Context) {
	stops, err := a.Catalog.StopsForRoute(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stops": stops})
}

func (a *API) Stops(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stops": a.Catalog.Stops()})
}

func (a *API) StopByID(c *gin.Context) {
	stop, err := a.Catalog.StopByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stop)
}

// RouteSlots lists the remaining departures for a route and date.
func (a *API) RouteSlots(c *gin.Context) {
	route, err := a.Catalog.RouteByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	date := c.Query("date")
	if date == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "date query parameter required", nil)
		return
	}
	slots, err := a.Slots.Generate(route, date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// RouteSeats returns the coach layout with the occupied/reserved fixtures.
func (a *API) RouteSeats(c *gin.Context) {
	if _, err := a.Catalog.RouteByID(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"layout":   a.Seats.Layout(),
		"occupied": a.Seats.OccupiedSeats(),
		"reserved": a.Seats.ReservedSeats(),
	})
}
