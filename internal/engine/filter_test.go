// internal/engine/filter_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundscope/internal/models"
)

func companyIDs(views []models.CompanyView) []string {
	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}

func TestCompanies_Filtering(t *testing.T) {
	eng := testEngine()

	tests := []struct {
		name        string
		criteria    models.CompanyCriteria
		expectedIDs []string
	}{
		{
			name:        "unrestricted criteria returns everything in input order",
			criteria:    allCompanies(),
			expectedIDs: []string{"alpha", "beta", "gamma", "delta"},
		},
		{
			name: "type set only, empty industry and id selections mean all",
			criteria: models.CompanyCriteria{
				Types:      models.SelectionOf("private"),
				Industries: models.SelectAll(),
				CompanyIDs: models.SelectAll(),
			},
			expectedIDs: []string{"alpha", "delta"},
		},
		{
			name: "industry subset",
			criteria: models.CompanyCriteria{
				Types:      models.SelectAll(),
				Industries: models.SelectionOf("Energy", "Healthcare"),
				CompanyIDs: models.SelectAll(),
			},
			expectedIDs: []string{"beta", "gamma"},
		},
		{
			name: "company id subset",
			criteria: models.CompanyCriteria{
				Types:      models.SelectAll(),
				Industries: models.SelectAll(),
				CompanyIDs: models.SelectionOf("delta", "alpha"),
			},
			expectedIDs: []string{"alpha", "delta"},
		},
		{
			name: "conjunction of dimensions",
			criteria: models.CompanyCriteria{
				Types:      models.SelectionOf("public"),
				Industries: models.SelectionOf("Energy"),
				CompanyIDs: models.SelectAll(),
			},
			expectedIDs: []string{"beta"},
		},
		{
			name: "type mismatch excludes despite id match",
			criteria: models.CompanyCriteria{
				Types:      models.SelectionOf("public"),
				Industries: models.SelectAll(),
				CompanyIDs: models.SelectionOf("alpha"),
			},
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views := eng.Companies(tt.criteria)
			assert.Equal(t, tt.expectedIDs, companyIDs(views))
		})
	}
}

func TestCompanies_AttachesDerivedStage(t *testing.T) {
	eng := testEngine()

	views := eng.Companies(allCompanies())
	require.Len(t, views, 4)

	byID := map[string]models.CompanyView{}
	for _, v := range views {
		byID[v.ID] = v
	}

	assert.Equal(t, "Series A", byID["alpha"].Stage.Label)
	assert.Equal(t, "IPO", byID["beta"].Stage.Label)
	// gamma is public with a ticker but has no milestones at all, so it
	// stays Pre-Seed rather than falling through to IPO Process.
	assert.Equal(t, "Pre-Seed", byID["gamma"].Stage.Label)
	assert.Equal(t, "Pre-Seed", byID["delta"].Stage.Label)

	assert.Equal(t, "$18M", byID["alpha"].RevenueDisplay)
	assert.Equal(t, "$4.1B", byID["beta"].ValuationDisplay)
	assert.Equal(t, "N/A", byID["delta"].RevenueDisplay)
}

func TestApplyFilters_Idempotent(t *testing.T) {
	eng := testEngine()
	cc := models.CompanyCriteria{
		Types:      models.SelectionOf("private", "public"),
		Industries: models.SelectAll(),
		CompanyIDs: models.SelectAll(),
	}
	tc := allTransactions()
	tc.From = day("2016-01-01")
	tc.To = day("2023-12-31")

	companies1, txs1 := eng.ApplyFilters(cc, tc)
	companies2, txs2 := eng.ApplyFilters(cc, tc)

	assert.Equal(t, companies1, companies2)
	assert.Equal(t, txs1, txs2)
}
