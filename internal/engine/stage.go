// internal/engine/stage.go
package engine

import "fundscope/internal/models"

// Fallback stage type keys used when a company has no status milestone.
const (
	stagePreSeed    = "pre_seed"
	stageIPOProcess = "ipo_process"
)

// DeriveStage determines a company's current lifecycle stage from its
// milestone history. The milestone slice is scanned from the end toward the
// beginning and the first status-type milestone wins.
//
// Precondition: milestones must be sorted ascending by date. The loader
// preserves document order and does not re-sort, so an unsorted document
// yields a scan-order artifact rather than a true "latest".
func (e *Engine) DeriveStage(co *models.Company) models.Stage {
	// Zero milestones short-circuit to Pre-Seed before any scanning; the
	// public-with-ticker rule only applies to companies whose history
	// simply lacks a status-type entry.
	if len(co.Milestones) == 0 {
		return e.stageFor(stagePreSeed, "Pre-Seed")
	}

	for i := len(co.Milestones) - 1; i >= 0; i-- {
		m := co.Milestones[i]
		if !e.ds.IsStatusType(m.Type) {
			continue
		}
		info := e.ds.TypeInfo(m.Type)
		stage := models.Stage{
			Label: info.Label,
			Type:  m.Type,
			Color: info.Color,
		}
		if m.DateValid {
			d := m.Date
			stage.Date = &d
		}
		return stage
	}

	if co.IsPublic() {
		return e.stageFor(stageIPOProcess, "IPO Process")
	}
	return e.stageFor(stagePreSeed, "Pre-Seed")
}

// stageFor builds a fallback stage, preferring metadata colors when the
// fallback key is in the type table.
func (e *Engine) stageFor(key, label string) models.Stage {
	if info, ok := e.ds.Types[key]; ok {
		return models.Stage{Label: info.Label, Type: key, Color: info.Color}
	}
	return models.Stage{Label: label, Type: key, Color: models.NeutralColor}
}
