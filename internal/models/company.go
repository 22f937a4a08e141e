// internal/models/company.go
package models

// CompanyType distinguishes privately held companies from listed ones.
type CompanyType string

const (
	CompanyPrivate CompanyType = "private"
	CompanyPublic  CompanyType = "public"
)

// Company is a single dashboard entry. All monetary fields are millions of
// USD. A Company is immutable once loaded; only milestone dates are
// normalized at load time.
type Company struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Ticker      string      `json:"ticker,omitempty"`
	Type        CompanyType `json:"type"`
	Industry    string      `json:"industry"`
	Revenue     float64     `json:"revenue,omitempty"`
	GrossProfit float64     `json:"gross_profit,omitempty"`
	NetProfit   float64     `json:"net_profit,omitempty"`
	// Valuation for private companies, market cap for public ones.
	Valuation  float64     `json:"valuation,omitempty"`
	Milestones []Milestone `json:"milestones"`
}

// IsPublic reports whether the company trades under a ticker.
func (c *Company) IsPublic() bool {
	return c.Type == CompanyPublic && c.Ticker != ""
}

// CompanyView is a company decorated with its derived lifecycle stage.
// The stage is recomputed on every query, never persisted.
type CompanyView struct {
	Company
	Stage Stage `json:"stage"`

	// Pre-rendered dollar strings for the company table.
	RevenueDisplay   string `json:"revenue_display"`
	ValuationDisplay string `json:"valuation_display"`
}
