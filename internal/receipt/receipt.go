// Package receipt renders a booking confirmation as a one-page PDF.
package receipt

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/kirinyoku/travelease/internal/bookingflow"
	"github.com/kirinyoku/travelease/internal/domain"
)

const issuer = "TravelEase Ltd"

func Render(w io.Writer, c bookingflow.Confirmation, customer domain.User) error {
	const op = "receipt.Render"

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking "+c.BookingID, true)
	pdf.SetCreator(issuer, true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(190, 10, "TravelEase")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(190, 8, "Booking confirmation")
	pdf.Ln(12)

	customerName := customer.Name
	if customerName == "" {
		customerName = customer.Email
	}

	rows := [][2]string{
		{"Booking ID", c.BookingID},
		{"Tour", c.TourTitle},
		{"Date", c.SelectedDate.Format("January 2, 2006")},
		{"Participants", fmt.Sprintf("%d %s", c.Participants, c.ParticipantsLabel)},
		{"Customer", customerName},
		{"Total", fmt.Sprintf("$%.2f", c.Total)},
		{"Issued", c.SubmittedAt.UTC().Format(time.DateTime + " MST")},
	}

	for _, r := range rows {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(45, 8, r[0], "B", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(145, 8, tr(r[1]), "B", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(190, 5, "Please keep this receipt for your records. "+
		"Present the booking ID at the start of your tour.", "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
