package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"doonconnect/internal/catalog"
	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
	"doonconnect/internal/utils"
)

// Ticket stock: 80x240mm thermal-style stub.
var ticketPageSize = gofpdf.SizeType{Wd: 80, Ht: 240}

// DocsService renders the downloadable e-ticket. Failures here are
// retryable: nothing about the ticket itself changes when rendering fails.
type DocsService struct {
	Catalog   *catalog.Catalog
	RequestID string
	Now       func() time.Time
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// QRPNG renders the ticket's QR payload as a PNG.
func (s DocsService) QRPNG(t models.Ticket) ([]byte, error) {
	png, err := qrcode.Encode(t.QRCode, qrcode.Medium, 200)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to render QR code", Err: err}
	}
	return png, nil
}

// GenerateTicketPDF renders the e-ticket and returns the document plus its
// download filename.
func (s DocsService) GenerateTicketPDF(t models.Ticket) ([]byte, string, error) {
	route, err := s.Catalog.RouteByID(t.RouteID)
	if err != nil {
		return nil, "", err
	}
	qrPNG, err := s.QRPNG(t)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           ticketPageSize,
	})
	pdf.SetTitle("Bus Ticket", false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Outer and inner borders.
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)
	pdf.Rect(2, 2, 76, 236, "D")
	pdf.SetLineWidth(0.5)
	pdf.Rect(4, 4, 72, 232, "D")

	y := 15.0

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(centered(pdf, "DOONCONNECT"), y, "DOONCONNECT")
	y += 8

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(centered(pdf, "BUS TICKET"), y, "BUS TICKET")
	y += 8

	pdf.SetFont("Helvetica", "", 10)
	idLine := "Ticket ID: " + t.ID
	pdf.Text(centered(pdf, idLine), y, idLine)
	y += 12

	y = separator(pdf, y)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(centered(pdf, "SCAN QR CODE"), y, "SCAN QR CODE")
	y += 8

	pdf.RegisterImageOptionsReader("ticket-qr", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.SetLineWidth(1)
	pdf.Rect(20, y, 40, 40, "D")
	pdf.ImageOptions("ticket-qr", 22, y+2, 36, 36, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	y += 45

	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(centered(pdf, "Show this QR code to conductor"), y, "Show this QR code to conductor")
	y += 10

	y = separator(pdf, y)

	journeyDate, journeyTime := journeyLabels(t)
	y = section(pdf, y, "ROUTE", utils.Truncate(route.Name, 30))
	y = twoColumn(pdf, y, "FROM", utils.Truncate(s.Catalog.StopName(t.FromStop), 15), "TO", utils.Truncate(s.Catalog.StopName(t.ToStop), 15))
	y = twoColumn(pdf, y, "DATE", journeyDate, "TIME", journeyTime)
	y = section(pdf, y, "SEAT(S)", strings.Join(t.Seats, ", "))

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(10, y, "PASSENGER")
	y += 6
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(10, y, utils.Truncate(t.PassengerName, 25))
	y += 5
	pdf.Text(10, y, "+91 "+t.PassengerPhone)
	y += 12

	y = separator(pdf, y)

	// Inverted total band.
	pdf.SetFillColor(0, 0, 0)
	pdf.Rect(8, y-2, 64, 12, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(12, y+6, "TOTAL")
	amount := utils.RupeeLabel(t.Fare)
	pdf.Text(70-pdf.GetStringWidth(amount), y+6, amount)
	pdf.SetTextColor(0, 0, 0)
	y += 18

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(centered(pdf, "Thank you for choosing DoonConnect"), y, "Thank you for choosing DoonConnect")
	y += 6
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(centered(pdf, "Smart City Bus Service"), y, "Smart City Bus Service")
	y += 5
	pdf.Text(centered(pdf, "Keep this ticket until journey ends"), y, "Keep this ticket until journey ends")
	y += 10

	pdf.SetFont("Helvetica", "B", 7)
	pdf.Text(10, y, "Terms & Conditions:")
	y += 4
	pdf.SetFont("Helvetica", "", 7)
	for _, line := range []string{
		"- Ticket valid for single journey only",
		"- No refund after journey starts",
		"- Subject to bus availability",
		"- Keep ticket safe during travel",
	} {
		pdf.Text(10, y, line)
		y += 3
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render ticket PDF", Err: err}
	}

	stamp := s.now().Format("2006-01-02T15-04-05")
	filename := fmt.Sprintf("DoonConnect_Ticket_%s_%s.pdf", t.ID, stamp)
	utils.LogEvent(s.RequestID, "docs", "generate_ticket_pdf", "ticket_id="+t.ID)
	return buf.Bytes(), filename, nil
}

func centered(pdf *gofpdf.Fpdf, text string) float64 {
	return (ticketPageSize.Wd - pdf.GetStringWidth(text)) / 2
}

func separator(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetLineWidth(1)
	pdf.Line(8, y, 72, y)
	return y + 10
}

func section(pdf *gofpdf.Fpdf, y float64, title, value string) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(10, y, title)
	y += 6
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(10, y, value)
	return y + 12
}

func twoColumn(pdf *gofpdf.Fpdf, y float64, leftTitle, leftValue, rightTitle, rightValue string) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(10, y, leftTitle)
	pdf.Text(45, y, rightTitle)
	y += 6
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(10, y, leftValue)
	pdf.Text(45, y, rightValue)
	return y + 12
}

// journeyLabels reads the travel date and time out of the QR payload,
// falling back to the purchase instant for legacy tickets.
func journeyLabels(t models.Ticket) (string, string) {
	var payload models.QRPayload
	if err := json.Unmarshal([]byte(t.QRCode), &payload); err == nil && payload.Date != "" {
		return utils.DisplayDate(payload.Date), utils.DisplayTime(payload.Time)
	}
	return utils.DisplayDate(utils.FormatDate(t.PurchaseTime)), t.PurchaseTime.Format("03:04 PM")
}
