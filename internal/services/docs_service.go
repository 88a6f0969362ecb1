package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders PDF receipts for stored bookings.
type DocsService struct {
	Bookings  BookingService
	RequestID string
	Loader    func(ctx context.Context, id string) (domain.Record, error)
}

func (s DocsService) load(ctx context.Context, id string) (domain.Record, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	return s.Bookings.Get(ctx, id)
}

// GenerateReceipt returns the PDF bytes and a download filename.
func (s DocsService) GenerateReceipt(ctx context.Context, bookingID string) ([]byte, string, error) {
	rec, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	b := bookingFromRecord(rec)
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", "booking_id="+b.ID)

	pdf, filename, err := buildReceiptPDF(b)
	if err != nil {
		return nil, "", domain.InternalError{Op: "render receipt", Err: err}
	}
	return pdf, filename, nil
}

// bookingFromRecord reads an unvalidated booking record leniently:
// numbers may arrive as JSON numbers or strings.
func bookingFromRecord(rec domain.Record) models.Booking {
	b := models.Booking{
		ID:                 rec.ID(),
		ConfirmationNumber: rec.String("confirmationNumber"),
		Status:             rec.String("status"),
		PropertyType:       rec.String("propertyType"),
		PropertyID:         rec.String("propertyId"),
		PropertyName:       rec.String("propertyName"),
		CustomerName:       rec.String("customerName"),
		Email:              rec.String("email"),
		Phone:              rec.String("phone"),
		CheckIn:            rec.String("checkIn"),
		CheckOut:           rec.String("checkOut"),
		SpecialRequests:    rec.String("specialRequests"),
		CreatedAt:          rec.String("createdAt"),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(rec.String("guests"))); err == nil {
		b.Guests = n
	} else if f, err := strconv.ParseFloat(strings.TrimSpace(rec.String("guests")), 64); err == nil {
		b.Guests = int(f)
	}
	switch v := rec["totalPrice"].(type) {
	case float64:
		b.TotalPrice = v
	case json.Number:
		if f, err := v.Float64(); err == nil {
			b.TotalPrice = f
		}
	case string:
		if f, err := utils.ParseAmount(v); err == nil {
			b.TotalPrice = f
		}
	}
	return b
}

func buildReceiptPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	guests := "-"
	if b.Guests > 0 {
		guests = strconv.Itoa(b.Guests)
	}
	lines := []string{
		fmt.Sprintf("Confirmation No : %s", utils.Fallback(b.ConfirmationNumber, "-")),
		fmt.Sprintf("Booking ID      : %s", utils.Fallback(b.ID, "-")),
		fmt.Sprintf("Status          : %s", utils.Fallback(b.Status, "-")),
		fmt.Sprintf("Booked on       : %s", utils.Fallback(utils.DateOnly(b.CreatedAt), "-")),
		"",
		fmt.Sprintf("Guest           : %s", utils.Fallback(b.CustomerName, "-")),
		fmt.Sprintf("Email           : %s", utils.Fallback(b.Email, "-")),
		fmt.Sprintf("Phone           : %s", utils.Fallback(b.Phone, "-")),
		"",
		fmt.Sprintf("Property        : %s", utils.Fallback(b.PropertyName, "-")),
		fmt.Sprintf("Type            : %s", utils.Fallback(b.PropertyType, "-")),
		fmt.Sprintf("Check-in        : %s", utils.Fallback(utils.DateOnly(b.CheckIn), "-")),
		fmt.Sprintf("Check-out       : %s", utils.Fallback(utils.DateOnly(b.CheckOut), "-")),
		fmt.Sprintf("Guests          : %s", guests),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, tr(s))
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Total: INR "+utils.FormatMoney(b.TotalPrice))
	pdf.Ln(12)

	if strings.TrimSpace(b.SpecialRequests) != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr("Special requests: "+b.SpecialRequests), "", "", false)
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt echoes the submitted booking details. Present the confirmation number at check-in.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	ref := b.ConfirmationNumber
	if strings.TrimSpace(ref) == "" {
		ref = b.ID
	}
	return buf.Bytes(), fmt.Sprintf("RECEIPT_%s.pdf", utils.SafeFilenamePart(ref)), nil
}
