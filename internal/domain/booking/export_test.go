package booking

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestWriteCSVHeaderOnlyWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("write err: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
	if lines[0] != strings.Join(exportHeader, ",") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}

func TestWriteCSVFlattensPayments(t *testing.T) {
	id := uuid.New()
	items := []*BookingResponse{
		{
			ID:         id,
			Title:      "Ali & Dana",
			Date:       "2026-09-12T00:00:00Z",
			TimeSlot:   "EVENING",
			Status:     "DEPOSIT_PAID",
			TotalPrice: 8000,
			PaidAmount: 2500.5,
			Staff:      "admin",
			Client: &ClientInfo{
				FullName:    "Dana Haddad",
				Email:       "dana@example.com",
				PhoneNumber: "+9627900000",
			},
			Payments: []PaymentInfo{
				{Amount: 1000, Method: "CASH", Type: "DEPOSIT"},
				{Amount: 1500.5, Method: "CARD", Type: "PARTIAL"},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, items); err != nil {
		t.Fatalf("write err: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read err: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}

	row := records[1]
	if len(row) != len(exportHeader) {
		t.Fatalf("expected %d columns, got %d", len(exportHeader), len(row))
	}
	if row[0] != id.String() {
		t.Fatalf("unexpected booking_id: %q", row[0])
	}
	if row[5] != "8000" || row[6] != "2500.5" {
		t.Fatalf("unexpected amounts: %q %q", row[5], row[6])
	}
	if row[7] != "Dana Haddad" || row[9] != "+9627900000" {
		t.Fatalf("unexpected client columns: %q %q", row[7], row[9])
	}
	if row[11] != "1000 (CASH, DEPOSIT); 1500.5 (CARD, PARTIAL)" {
		t.Fatalf("unexpected payments column: %q", row[11])
	}
}

func TestWriteCSVEmptyClientColumns(t *testing.T) {
	items := []*BookingResponse{
		{ID: uuid.New(), Date: "2026-01-01T00:00:00Z", TimeSlot: "MORNING", Status: "INQUIRY"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, items); err != nil {
		t.Fatalf("write err: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read err: %v", err)
	}
	row := records[1]
	if row[7] != "" || row[8] != "" || row[9] != "" {
		t.Fatalf("expected empty client columns, got %q %q %q", row[7], row[8], row[9])
	}
}
