// internal/dataset/loader_test.go
package dataset

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "fundscope/internal/common/errors"
	"fundscope/internal/common/logger"
	"fundscope/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

const validDocument = `{
  "milestone_types": {
    "seed": {"label": "Seed", "color": "#8bc34a"},
    "ipo": {"label": "IPO", "color": "#3f51b5"}
  },
  "status_milestones": ["seed", "ipo"],
  "companies": [
    {
      "id": "acme",
      "name": "Acme Corp",
      "ticker": "ACME",
      "type": "public",
      "industry": "Manufacturing",
      "revenue": 120,
      "valuation": 900,
      "milestones": [
        {"type": "seed", "date": "2018-02-01", "amount": 3},
        {"type": "ipo", "date": "2021-09-15", "amount": 200, "advisors": "Birchwall"}
      ]
    }
  ]
}`

func testLoader(t *testing.T) *Loader {
	return NewLoader(logger.NewTestLogger(t))
}

// ==========================
// Parse
// ==========================

func TestLoader_Parse_ValidDocument(t *testing.T) {
	ds, err := testLoader(t).Parse([]byte(validDocument))
	require.NoError(t, err)

	assert.NotEmpty(t, ds.SnapshotID)
	assert.Len(t, ds.Companies, 1)
	assert.Len(t, ds.Types, 2)
	assert.True(t, ds.IsStatusType("seed"))
	assert.False(t, ds.IsStatusType("debt"))

	co := ds.Companies[0]
	assert.Equal(t, "acme", co.ID)
	assert.Equal(t, models.CompanyPublic, co.Type)
	require.Len(t, co.Milestones, 2)

	m := co.Milestones[1]
	assert.True(t, m.DateValid)
	assert.Equal(t, time.Date(2021, 9, 15, 0, 0, 0, 0, time.UTC), m.Date)
	assert.Equal(t, "Birchwall", m.Advisors)
}

func TestLoader_Parse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{
			name:     "not json",
			document: `{"milestone_types": `,
		},
		{
			name:     "missing companies",
			document: `{"milestone_types": {}, "status_milestones": []}`,
		},
		{
			name: "company missing id",
			document: `{"milestone_types": {}, "status_milestones": [],
				"companies": [{"name": "X", "type": "private", "industry": "AI"}]}`,
		},
		{
			name: "bad company type",
			document: `{"milestone_types": {}, "status_milestones": [],
				"companies": [{"id": "x", "name": "X", "type": "listed", "industry": "AI"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testLoader(t).Parse([]byte(tt.document))
			require.Error(t, err)

			stdErr, ok := apperrors.AsStandardError(err)
			require.True(t, ok)
			assert.Contains(t, []apperrors.ErrorCode{
				apperrors.ErrCodeDataLoadFailed,
				apperrors.ErrCodeSchemaValidationFailed,
			}, stdErr.Code)
		})
	}
}

func TestLoader_Parse_InvalidDateKeptButFlagged(t *testing.T) {
	doc := `{
	  "milestone_types": {"seed": {"label": "Seed", "color": "#8bc34a"}},
	  "status_milestones": ["seed"],
	  "companies": [{
	    "id": "acme", "name": "Acme", "type": "private", "industry": "AI",
	    "milestones": [
	      {"type": "seed", "date": "not-a-date"},
	      {"type": "seed", "date": "2020-01-01"}
	    ]
	  }]
	}`

	ds, err := testLoader(t).Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, ds.Companies[0].Milestones, 2)

	assert.False(t, ds.Companies[0].Milestones[0].DateValid)
	assert.True(t, ds.Companies[0].Milestones[1].DateValid)
	assert.Equal(t, 1, ds.Stats().InvalidDates)
}

func TestLoader_Parse_AcceptsRFC3339Dates(t *testing.T) {
	doc := `{
	  "milestone_types": {},
	  "status_milestones": [],
	  "companies": [{
	    "id": "acme", "name": "Acme", "type": "private", "industry": "AI",
	    "milestones": [{"type": "seed", "date": "2020-03-04T12:30:00Z"}]
	  }]
	}`

	ds, err := testLoader(t).Parse([]byte(doc))
	require.NoError(t, err)
	m := ds.Companies[0].Milestones[0]
	assert.True(t, m.DateValid)
	assert.Equal(t, 2020, m.Date.Year())
}

// ==========================
// TypeInfo fallback
// ==========================

func TestDataset_TypeInfoFallback(t *testing.T) {
	ds, err := testLoader(t).Parse([]byte(validDocument))
	require.NoError(t, err)

	known := ds.TypeInfo("seed")
	assert.Equal(t, "Seed", known.Label)

	unknown := ds.TypeInfo("bridge_round")
	assert.Equal(t, "bridge_round", unknown.Label)
	assert.Equal(t, models.NeutralColor, unknown.Color)
}

// ==========================
// Load / Fetch
// ==========================

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := testLoader(t).Load("testdata/does-not-exist.json")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDataLoadFailed))
}

func TestLoader_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(validDocument))
	}))
	defer srv.Close()

	ds, err := testLoader(t).Fetch(t.Context(), srv.URL, 5*time.Second)
	require.NoError(t, err)
	assert.Len(t, ds.Companies, 1)
}

func TestLoader_Fetch_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testLoader(t).Fetch(t.Context(), srv.URL, 5*time.Second)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDatasetFetchFailed))
}
