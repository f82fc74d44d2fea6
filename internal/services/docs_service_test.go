package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"doonconnect/internal/catalog"
	"doonconnect/internal/domain/models"
)

func docsFixtureTicket() models.Ticket {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	return models.Ticket{
		ID:             "AB12CD34E",
		RouteID:        "R2A",
		FromStop:       "isbt",
		ToStop:         "clocktower",
		Fare:           20,
		PurchaseTime:   now,
		ValidUntil:     now.Add(24 * time.Hour),
		Status:         models.TicketActive,
		QRCode:         `{"ticketId":"AB12CD34E","route":"R2A","from":"isbt","to":"clocktower","seats":["4B","4C"],"date":"2026-09-01","time":"10:00","passenger":"9876543210"}`,
		Seats:          []string{"4B", "4C"},
		PassengerName:  "Asha",
		PassengerPhone: "9876543210",
	}
}

func TestGenerateTicketPDF(t *testing.T) {
	svc := DocsService{Catalog: catalog.NewDefault()}

	pdf, filename, err := svc.GenerateTicketPDF(docsFixtureTicket())
	if err != nil {
		t.Fatalf("GenerateTicketPDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output does not look like a PDF document")
	}
	if !strings.HasPrefix(filename, "DoonConnect_Ticket_AB12CD34E_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("filename = %q", filename)
	}
}

func TestQRPNG(t *testing.T) {
	svc := DocsService{Catalog: catalog.NewDefault()}

	png, err := svc.QRPNG(docsFixtureTicket())
	if err != nil {
		t.Fatalf("QRPNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatal("output does not look like a PNG image")
	}
}
