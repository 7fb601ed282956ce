package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is how ledger timestamps are stored and rendered. Month and
// day filters are prefix matches on this text.
const TimestampLayout = "2006-01-02 15:04:05"

// Kind is the direction of a ledger entry.
type Kind string

const (
	KindReceived Kind = "Received"
	KindGiven    Kind = "Given"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindReceived || k == KindGiven
}

// Timestamp is a second-precision local time persisted as TimestampLayout text.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to whole seconds.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Second)}
}

// ParseTimestamp parses TimestampLayout text in the local zone.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{Time: t}, nil
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

// Month returns the YYYY-MM portion.
func (t Timestamp) Month() string {
	return t.String()[:7]
}

// Value implements driver.Valuer for Timestamp
func (t Timestamp) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner for Timestamp
func (t *Timestamp) Scan(value any) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		*t = parsed
	case []byte:
		parsed, err := ParseTimestamp(string(v))
		if err != nil {
			return err
		}
		*t = parsed
	case time.Time:
		*t = NewTimestamp(v)
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Transaction is one ledger entry for a customer. AmountLeft is stored, not
// derived, and is always TotalAmount - AmountReceived at write time; it may be
// negative.
type Transaction struct {
	ID             int64           `json:"id" example:"42"`
	CustomerID     int64           `json:"customer_id" example:"3"`
	DateTime       Timestamp       `json:"date_time" swaggertype:"string" example:"2024-03-05 14:02:11"`
	Kind           Kind            `json:"type" example:"Received"`
	TotalAmount    decimal.Decimal `json:"total_amount" swaggertype:"string" example:"500.00"`
	AmountReceived decimal.Decimal `json:"amount_received" swaggertype:"string" example:"450.00"`
	AmountLeft     decimal.Decimal `json:"amount_left" swaggertype:"string" example:"50.00"`
	Note           string          `json:"note"`
}

// TodayEntry is the condensed view used for a customer's activity today.
type TodayEntry struct {
	DateTime    Timestamp       `json:"date_time" swaggertype:"string"`
	Kind        Kind            `json:"type"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"string"`
}

// Summary aggregates a set of transactions.
type Summary struct {
	TotalReceived decimal.Decimal `json:"total_received" swaggertype:"string"`
	TotalGiven    decimal.Decimal `json:"total_given" swaggertype:"string"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string"`
}
