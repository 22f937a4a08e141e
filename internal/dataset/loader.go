// internal/dataset/loader.go
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	apperrors "fundscope/internal/common/errors"
	httpclient "fundscope/internal/common/http"
	"fundscope/internal/common/logger"
	"fundscope/internal/models"
)

// Milestone dates arrive as ISO date strings, occasionally with a time part.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// document mirrors the input JSON before normalization.
type document struct {
	MilestoneTypes   map[string]typeInfoDoc `json:"milestone_types"`
	StatusMilestones []string               `json:"status_milestones"`
	Companies        []companyDoc           `json:"companies"`
}

type typeInfoDoc struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type companyDoc struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Ticker      string         `json:"ticker"`
	Type        string         `json:"type"`
	Industry    string         `json:"industry"`
	Revenue     float64        `json:"revenue"`
	GrossProfit float64        `json:"gross_profit"`
	NetProfit   float64        `json:"net_profit"`
	Valuation   float64        `json:"valuation"`
	Milestones  []milestoneDoc `json:"milestones"`
}

type milestoneDoc struct {
	Type      string  `json:"type"`
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
	Valuation float64 `json:"valuation"`
	Advisors  string  `json:"advisors"`
	Investors string  `json:"investors"`
}

// Loader turns input documents into Dataset values.
type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	return &Loader{
		logger: log.WithFields(map[string]interface{}{"component": "dataset"}),
	}
}

// Load reads and parses a document from a local file.
func (l *Loader) Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewDataLoadFailedError(fmt.Sprintf("read %s: %v", path, err))
	}
	return l.Parse(data)
}

// Fetch retrieves and parses a document over HTTP. The fetch is one-shot and
// never retried.
func (l *Loader) Fetch(ctx context.Context, url string, timeout time.Duration) (*Dataset, error) {
	client := httpclient.NewClient(timeout)
	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, apperrors.NewDatasetFetchFailedError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, apperrors.NewDatasetFetchFailedError(url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewDatasetFetchFailedError(url, err)
	}

	return l.Parse(data)
}

// Parse validates the raw document against the schema and converts it into
// an owned Dataset, normalizing milestone dates as it goes.
func (l *Loader) Parse(data []byte) (*Dataset, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.NewDataLoadFailedError(err.Error())
	}

	types := make(map[string]models.MilestoneTypeInfo, len(doc.MilestoneTypes))
	for key, info := range doc.MilestoneTypes {
		types[key] = models.MilestoneTypeInfo{Label: info.Label, Color: info.Color}
	}

	companies := make([]models.Company, 0, len(doc.Companies))
	for _, cd := range doc.Companies {
		co := models.Company{
			ID:          cd.ID,
			Name:        cd.Name,
			Ticker:      cd.Ticker,
			Type:        models.CompanyType(cd.Type),
			Industry:    cd.Industry,
			Revenue:     cd.Revenue,
			GrossProfit: cd.GrossProfit,
			NetProfit:   cd.NetProfit,
			Valuation:   cd.Valuation,
			Milestones:  make([]models.Milestone, 0, len(cd.Milestones)),
		}

		for _, md := range cd.Milestones {
			m := models.Milestone{
				Type:      md.Type,
				Amount:    md.Amount,
				Valuation: md.Valuation,
				Advisors:  md.Advisors,
				Investors: md.Investors,
			}
			if parsed, ok := parseDate(md.Date); ok {
				m.Date = parsed
				m.DateValid = true
			} else {
				// Kept, but excluded from any date-range match.
				l.logger.Warn("milestone has unparseable date", map[string]interface{}{
					"companyId": cd.ID,
					"type":      md.Type,
					"date":      md.Date,
				})
			}
			co.Milestones = append(co.Milestones, m)
		}

		companies = append(companies, co)
	}

	ds := New(types, doc.StatusMilestones, companies)

	stats := ds.Stats()
	l.logger.Info("dataset loaded", map[string]interface{}{
		"snapshotId":   ds.SnapshotID,
		"companies":    stats.Companies,
		"milestones":   stats.Milestones,
		"invalidDates": stats.InvalidDates,
		"unknownTypes": stats.UnknownTypes,
	})

	return ds, nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
