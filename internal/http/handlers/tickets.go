package handlers

import (
	"net/http"

	"doonconnect/internal/http/middleware"
	"doonconnect/internal/services"

	"github.com/gin-gonic/gin"
)

func (a *API) ListTickets(c *gin.Context) {
	tickets, err := a.Tickets.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

func (a *API) GetTicket(c *gin.Context) {
	ticket, err := a.Tickets.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (a *API) DeleteTicket(c *gin.Context) {
	if err := a.Tickets.Remove(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ticket removed"})
}

// TicketPDF returns the printable e-ticket (inline).
func (a *API) TicketPDF(c *gin.Context) {
	ticket, err := a.Tickets.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	svc := services.DocsService{
		Catalog:   a.Catalog,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateTicketPDF(ticket)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// TicketQR returns the boarding QR as a PNG.
func (a *API) TicketQR(c *gin.Context) {
	ticket, err := a.Tickets.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	svc := services.DocsService{
		Catalog:   a.Catalog,
		RequestID: middleware.GetRequestID(c),
	}
	png, err := svc.QRPNG(ticket)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
