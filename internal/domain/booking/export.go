package booking

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/venuehall/venue-api/internal/pkg/response"
)

var exportHeader = []string{
	"booking_id",
	"title",
	"wedding_date",
	"time_slot",
	"status",
	"total_price",
	"paid_amount",
	"client_name",
	"client_email",
	"client_phone",
	"staff",
	"payments",
}

// Export handles GET /bookings/export — all bookings flattened to CSV
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), ListFilter{})
	if err != nil {
		log.Error().Err(err).Msg("failed to export bookings")
		response.InternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.csv"`)

	if err := WriteCSV(w, items); err != nil {
		log.Error().Err(err).Msg("failed to write bookings CSV")
	}
}

// WriteCSV writes the export: a header line plus one row per booking
func WriteCSV(w io.Writer, items []*BookingResponse) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, b := range items {
		row := []string{
			b.ID.String(),
			b.Title,
			b.Date,
			b.TimeSlot,
			b.Status,
			formatAmount(b.TotalPrice),
			formatAmount(b.PaidAmount),
			"",
			"",
			"",
			b.Staff,
			flattenPayments(b.Payments),
		}
		if b.Client != nil {
			row[7] = b.Client.FullName
			row[8] = b.Client.Email
			row[9] = b.Client.PhoneNumber
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// flattenPayments renders payments as "amount (method, type); ..."
func flattenPayments(payments []PaymentInfo) string {
	parts := make([]string, len(payments))
	for i, p := range payments {
		parts[i] = fmt.Sprintf("%s (%s, %s)", formatAmount(p.Amount), p.Method, p.Type)
	}
	return strings.Join(parts, "; ")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
