// internal/models/transaction.go
package models

import "time"

// Transaction is a milestone flattened for the timeline view: the milestone's
// own fields plus denormalized company identity. Building one is a read-only
// join; the source milestone is never mutated.
type Transaction struct {
	CompanyID   string      `json:"company_id"`
	CompanyName string      `json:"company_name"`
	CompanyType CompanyType `json:"company_type"`
	Industry    string      `json:"industry"`

	Type      string    `json:"type"`
	TypeLabel string    `json:"type_label"`
	Color     string    `json:"color"`
	Date      time.Time `json:"date"`
	Amount    float64   `json:"amount,omitempty"`
	Valuation float64   `json:"valuation,omitempty"`
	Advisors  string    `json:"advisors,omitempty"`
	Investors string    `json:"investors,omitempty"`

	// Pre-rendered dollar strings for the timeline rows; "N/A" when the
	// underlying value is absent.
	AmountDisplay    string `json:"amount_display"`
	ValuationDisplay string `json:"valuation_display"`
}
