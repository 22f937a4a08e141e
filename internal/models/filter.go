// internal/models/filter.go
package models

import (
	"sort"
	"strings"
	"time"
)

// Selection is an explicit "all or subset" filter dimension. The dashboard's
// convention is that an empty selection means "no restriction"; encoding that
// as a tagged value instead of empty-slice truthiness keeps the two cases
// impossible to confuse.
type Selection struct {
	all bool
	set map[string]struct{}
}

// SelectAll matches every value.
func SelectAll() Selection {
	return Selection{all: true}
}

// SelectionOf builds a subset selection. Zero values collapse to SelectAll,
// preserving the "empty means all" convention at the construction boundary.
func SelectionOf(values ...string) Selection {
	if len(values) == 0 {
		return SelectAll()
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return Selection{set: set}
}

// Matches reports whether v passes the selection.
func (s Selection) Matches(v string) bool {
	if s.all {
		return true
	}
	_, ok := s.set[v]
	return ok
}

// IsAll reports whether the selection is unrestricted.
func (s Selection) IsAll() bool {
	return s.all
}

// Key returns a canonical representation used in cache keys: "*" for
// unrestricted, otherwise the sorted members joined by commas.
func (s Selection) Key() string {
	if s.all {
		return "*"
	}
	values := make([]string, 0, len(s.set))
	for v := range s.set {
		values = append(values, v)
	}
	sort.Strings(values)
	return strings.Join(values, ",")
}

// CompanyCriteria filters the company view.
type CompanyCriteria struct {
	Types      Selection
	Industries Selection
	CompanyIDs Selection
}

// Matches applies the company-level filter rules.
func (c CompanyCriteria) Matches(co *Company) bool {
	return c.Types.Matches(string(co.Type)) &&
		c.Industries.Matches(co.Industry) &&
		c.CompanyIDs.Matches(co.ID)
}

// Key returns a canonical cache-key fragment for the criteria.
func (c CompanyCriteria) Key() string {
	return c.Types.Key() + "|" + c.Industries.Key() + "|" + c.CompanyIDs.Key()
}

// TransactionCriteria filters the timeline view: the company-level rules plus
// a milestone-type selection and an inclusive [From, To] date range at day
// granularity. A zero From or To leaves that end of the range open.
type TransactionCriteria struct {
	CompanyCriteria
	MilestoneTypes Selection
	From           time.Time
	To             time.Time
}

// Bounded reports whether either end of the date range is set.
func (c TransactionCriteria) Bounded() bool {
	return !c.From.IsZero() || !c.To.IsZero()
}

// InRange reports whether d falls within the criteria's date range,
// inclusive at both boundaries. Comparison is at day granularity: the start
// boundary is normalized to start-of-day and the end boundary to end-of-day.
func (c TransactionCriteria) InRange(d time.Time) bool {
	if !c.From.IsZero() && d.Before(StartOfDay(c.From)) {
		return false
	}
	if !c.To.IsZero() && d.After(EndOfDay(c.To)) {
		return false
	}
	return true
}

// Key returns a canonical cache-key fragment for the criteria.
func (c TransactionCriteria) Key() string {
	from, to := "", ""
	if !c.From.IsZero() {
		from = c.From.Format("2006-01-02")
	}
	if !c.To.IsZero() {
		to = c.To.Format("2006-01-02")
	}
	return c.CompanyCriteria.Key() + "|" + c.MilestoneTypes.Key() + "|" + from + "|" + to
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
