// internal/models/milestone.go
package models

import "time"

// NeutralColor is the display color for milestone types missing from the
// metadata table.
const NeutralColor = "#9e9e9e"

// Milestone is a dated event in a company's history (funding round, IPO
// stage, debt, follow-on). It belongs to exactly one company.
//
// Milestones are kept in document order, which callers must provide sorted
// ascending by date for stage derivation to mean "most recent".
type Milestone struct {
	Type string    `json:"type"`
	Date time.Time `json:"date"`
	// DateValid is false when the source date string could not be parsed.
	// Such milestones never match a date-range filter.
	DateValid bool    `json:"-"`
	Amount    float64 `json:"amount,omitempty"`
	Valuation float64 `json:"valuation,omitempty"`
	Advisors  string  `json:"advisors,omitempty"`
	Investors string  `json:"investors,omitempty"`
}

// MilestoneTypeInfo carries the display metadata for one milestone type key.
type MilestoneTypeInfo struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Stage is the single current lifecycle label derived for a company from its
// most recent status milestone.
type Stage struct {
	Label string     `json:"label"`
	Type  string     `json:"type,omitempty"`
	Color string     `json:"color"`
	Date  *time.Time `json:"date,omitempty"`
}
