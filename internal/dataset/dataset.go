// internal/dataset/dataset.go

// Package dataset loads the dashboard input document and owns the resulting
// in-memory data. A Dataset is read-only after load and is passed explicitly
// to the engine; there is no ambient global state.
package dataset

import (
	"github.com/google/uuid"

	"fundscope/internal/models"
)

// Dataset is one loaded input document. Each load gets a fresh snapshot ID
// so downstream caches key results against a specific document generation.
type Dataset struct {
	SnapshotID string

	Types       map[string]models.MilestoneTypeInfo
	statusTypes map[string]struct{}
	Companies   []models.Company
}

// New assembles a Dataset from already-normalized parts. The loader is the
// usual producer; tests build small datasets directly.
func New(types map[string]models.MilestoneTypeInfo, statusTypes []string, companies []models.Company) *Dataset {
	ds := &Dataset{
		SnapshotID:  uuid.NewString(),
		Types:       types,
		statusTypes: make(map[string]struct{}, len(statusTypes)),
		Companies:   companies,
	}
	if ds.Types == nil {
		ds.Types = map[string]models.MilestoneTypeInfo{}
	}
	for _, key := range statusTypes {
		ds.statusTypes[key] = struct{}{}
	}
	return ds
}

// TypeInfo resolves display metadata for a milestone type key. Unknown keys
// fall back to the raw key with a neutral gray color; filtering and stage
// derivation tolerate keys missing from the metadata table.
func (d *Dataset) TypeInfo(key string) models.MilestoneTypeInfo {
	if info, ok := d.Types[key]; ok {
		return info
	}
	return models.MilestoneTypeInfo{Label: key, Color: models.NeutralColor}
}

// IsStatusType reports whether the milestone type key represents a lifecycle
// stage rather than a purely transactional event.
func (d *Dataset) IsStatusType(key string) bool {
	_, ok := d.statusTypes[key]
	return ok
}

// Stats summarizes a loaded dataset for logging and the check command.
type Stats struct {
	Companies    int
	Milestones   int
	InvalidDates int
	UnknownTypes []string
}

// Stats walks the dataset and tallies counts plus data-quality findings.
func (d *Dataset) Stats() Stats {
	st := Stats{Companies: len(d.Companies)}
	seenUnknown := map[string]struct{}{}

	for _, co := range d.Companies {
		st.Milestones += len(co.Milestones)
		for _, m := range co.Milestones {
			if !m.DateValid {
				st.InvalidDates++
			}
			if _, ok := d.Types[m.Type]; !ok {
				if _, dup := seenUnknown[m.Type]; !dup {
					seenUnknown[m.Type] = struct{}{}
					st.UnknownTypes = append(st.UnknownTypes, m.Type)
				}
			}
		}
	}
	return st
}
