package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/models"
)

var exportHeader = []string{"ID", "Date & Time", "Type", "Total Amount", "Amount Received", "Amount Left", "Note"}

// ExportCSV writes the header and one row per transaction, keeping the
// order of the slice.
func ExportCSV(w io.Writer, transactions []models.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, tx := range transactions {
		row := []string{
			strconv.FormatInt(tx.ID, 10),
			tx.DateTime.String(),
			string(tx.Kind),
			formatAmount(tx.TotalAmount),
			formatAmount(tx.AmountReceived),
			formatAmount(tx.AmountLeft),
			tx.Note,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatAmount pads to two decimal places and never rounds away digits.
func formatAmount(d decimal.Decimal) string {
	places := int32(2)
	if exp := -d.Exponent(); exp > places {
		places = exp
	}
	return d.StringFixed(places)
}

// ExportFilename names a download for the customer at the given time.
// Characters that cannot appear in a Content-Disposition filename become '_'.
func ExportFilename(customerName string, now time.Time) string {
	safe := strings.Map(func(r rune) rune {
		if r < 0x20 || r == '"' || r == '/' || r == '\\' || r == 0x7f {
			return '_'
		}
		return r
	}, customerName)
	return fmt.Sprintf("%s_records_%s.csv", safe, now.Format("20060102_150405"))
}
