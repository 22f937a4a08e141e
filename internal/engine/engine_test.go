// internal/engine/engine_test.go
package engine

import (
	"time"

	"fundscope/internal/dataset"
	"fundscope/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func milestone(typeKey, date string) models.Milestone {
	m := models.Milestone{Type: typeKey}
	if date != "" {
		m.Date = day(date)
		m.DateValid = true
	}
	return m
}

func testTypes() map[string]models.MilestoneTypeInfo {
	return map[string]models.MilestoneTypeInfo{
		"seed":      {Label: "Seed", Color: "#8bc34a"},
		"series_a":  {Label: "Series A", Color: "#4caf50"},
		"series_b":  {Label: "Series B", Color: "#009688"},
		"ipo":       {Label: "IPO", Color: "#3f51b5"},
		"follow_on": {Label: "Follow-On Offering", Color: "#9c27b0"},
		"debt":      {Label: "Debt Financing", Color: "#795548"},
	}
}

var testStatusTypes = []string{"seed", "series_a", "series_b", "ipo", "mezzanine"}

func testCompanies() []models.Company {
	return []models.Company{
		{
			ID: "alpha", Name: "Alpha Robotics", Type: models.CompanyPrivate, Industry: "Robotics",
			Revenue: 18, Valuation: 320,
			Milestones: []models.Milestone{
				milestone("seed", "2019-03-01"),
				milestone("series_a", "2020-07-15"),
				milestone("debt", "2022-01-10"),
			},
		},
		{
			ID: "beta", Name: "Beta Grid", Ticker: "BGRD", Type: models.CompanyPublic, Industry: "Energy",
			Revenue: 900, Valuation: 4100,
			Milestones: []models.Milestone{
				milestone("series_a", "2015-05-20"),
				milestone("ipo", "2018-10-02"),
				milestone("follow_on", "2021-06-30"),
			},
		},
		{
			ID: "gamma", Name: "Gamma Health", Ticker: "GMH", Type: models.CompanyPublic, Industry: "Healthcare",
			Revenue:    210,
			Milestones: nil,
		},
		{
			ID: "delta", Name: "Delta Freight", Type: models.CompanyPrivate, Industry: "Logistics",
			Milestones: []models.Milestone{
				milestone("debt", "2023-02-14"),
			},
		},
	}
}

func testEngine() *Engine {
	return New(dataset.New(testTypes(), testStatusTypes, testCompanies()))
}

func allTransactions() models.TransactionCriteria {
	return models.TransactionCriteria{
		CompanyCriteria: models.CompanyCriteria{
			Types:      models.SelectAll(),
			Industries: models.SelectAll(),
			CompanyIDs: models.SelectAll(),
		},
		MilestoneTypes: models.SelectAll(),
	}
}

func allCompanies() models.CompanyCriteria {
	return models.CompanyCriteria{
		Types:      models.SelectAll(),
		Industries: models.SelectAll(),
		CompanyIDs: models.SelectAll(),
	}
}
