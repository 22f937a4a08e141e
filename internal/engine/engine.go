// internal/engine/engine.go

// Package engine implements the filter and status derivation pipeline: given
// a loaded dataset and filter criteria it produces the company view (with
// derived stages) and the flattened, sorted transaction view. All operations
// are pure, synchronous, and idempotent; every query re-runs the full
// pipeline from scratch.
package engine

import (
	"sort"

	"fundscope/internal/dataset"
	"fundscope/internal/format"
	"fundscope/internal/models"
)

type Engine struct {
	ds *dataset.Dataset
}

func New(ds *dataset.Dataset) *Engine {
	return &Engine{ds: ds}
}

// Dataset exposes the engine's backing dataset to callers that need the
// snapshot ID or type table.
func (e *Engine) Dataset() *dataset.Dataset {
	return e.ds
}

// Companies returns the companies passing the criteria, each with its
// derived stage. Output order preserves input order; no sorting is applied.
func (e *Engine) Companies(c models.CompanyCriteria) []models.CompanyView {
	out := make([]models.CompanyView, 0, len(e.ds.Companies))
	for i := range e.ds.Companies {
		co := &e.ds.Companies[i]
		if !c.Matches(co) {
			continue
		}
		out = append(out, models.CompanyView{
			Company:          *co,
			Stage:            e.DeriveStage(co),
			RevenueDisplay:   format.Currency(co.Revenue),
			ValuationDisplay: format.Currency(co.Valuation),
		})
	}
	return out
}

// Transactions flattens the milestones of all companies passing the
// company-level criteria into transaction records, keeping only milestones
// matching the milestone-type selection and the inclusive date range, and
// sorts the result by date descending. Ties keep input scan order: company
// iteration order across companies, milestone order within one.
func (e *Engine) Transactions(c models.TransactionCriteria) []models.Transaction {
	var out []models.Transaction
	for i := range e.ds.Companies {
		co := &e.ds.Companies[i]
		if !c.CompanyCriteria.Matches(co) {
			continue
		}
		for _, m := range co.Milestones {
			if !c.MilestoneTypes.Matches(m.Type) {
				continue
			}
			// A milestone with an unparseable date never matches a
			// bounded range.
			if !m.DateValid && c.Bounded() {
				continue
			}
			if m.DateValid && !c.InRange(m.Date) {
				continue
			}
			out = append(out, e.flatten(co, m))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ApplyFilters runs both views in one call, the shape the interface layer
// consumes after each filter change.
func (e *Engine) ApplyFilters(cc models.CompanyCriteria, tc models.TransactionCriteria) ([]models.CompanyView, []models.Transaction) {
	return e.Companies(cc), e.Transactions(tc)
}

func (e *Engine) flatten(co *models.Company, m models.Milestone) models.Transaction {
	info := e.ds.TypeInfo(m.Type)
	return models.Transaction{
		CompanyID:   co.ID,
		CompanyName: co.Name,
		CompanyType: co.Type,
		Industry:    co.Industry,
		Type:        m.Type,
		TypeLabel:   info.Label,
		Color:       info.Color,
		Date:        m.Date,
		Amount:      m.Amount,
		Valuation:   m.Valuation,
		Advisors:    m.Advisors,
		Investors:   m.Investors,

		AmountDisplay:    format.Currency(m.Amount),
		ValuationDisplay: format.Currency(m.Valuation),
	}
}
