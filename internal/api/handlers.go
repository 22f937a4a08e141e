// internal/api/handlers.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fundscope/internal/cache"
	apperrors "fundscope/internal/common/errors"
	"fundscope/internal/models"
)

type companiesResponse struct {
	SnapshotID string               `json:"snapshot_id"`
	Count      int                  `json:"count"`
	Companies  []models.CompanyView `json:"companies"`
}

type transactionsResponse struct {
	SnapshotID   string               `json:"snapshot_id"`
	Count        int                  `json:"count"`
	Transactions []models.Transaction `json:"transactions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"snapshot": s.engine.Dataset().SnapshotID,
	})
}

func (s *Server) handleMilestoneTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Dataset().Types)
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	criteria := parseCompanyCriteria(r.URL.Query())

	key := cache.Key(s.engine.Dataset().SnapshotID, "companies", criteria.Key())
	if s.serveCached(w, r, "companies", key) {
		return
	}

	start := time.Now()
	views := s.engine.Companies(criteria)
	s.recordEvaluation(r, "companies", start)

	s.respondCached(w, r, key, companiesResponse{
		SnapshotID: s.engine.Dataset().SnapshotID,
		Count:      len(views),
		Companies:  views,
	})
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseTransactionCriteria(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	key := cache.Key(s.engine.Dataset().SnapshotID, "transactions", criteria.Key())
	if s.serveCached(w, r, "transactions", key) {
		return
	}

	start := time.Now()
	txs := s.engine.Transactions(criteria)
	s.recordEvaluation(r, "transactions", start)

	s.respondCached(w, r, key, transactionsResponse{
		SnapshotID:   s.engine.Dataset().SnapshotID,
		Count:        len(txs),
		Transactions: txs,
	})
}

func (s *Server) recordEvaluation(r *http.Request, view string, start time.Time) {
	if s.obs == nil {
		return
	}
	s.obs.RecordFilterEvaluated(r.Context(), view)
	s.obs.RecordFilterDuration(r.Context(), time.Since(start), view)
}

// serveCached writes a cached payload when one exists.
func (s *Server) serveCached(w http.ResponseWriter, r *http.Request, view, key string) bool {
	if s.cache == nil {
		return false
	}
	payload, ok := s.cache.Get(r.Context(), view, key)
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
	return true
}

// respondCached marshals once, stores the payload, and writes it out.
func (s *Server) respondCached(w http.ResponseWriter, r *http.Request, key string, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("response marshal failed", map[string]interface{}{"error": err.Error()})
		writeError(w, http.StatusInternalServerError, fmt.Errorf("encode response: %w", err))
		return
	}
	if s.cache != nil {
		s.cache.Set(r.Context(), key, payload)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// ==========================
// Criteria parsing
// ==========================

// csvParam splits a comma-separated query parameter. An absent or empty
// parameter yields nil, which SelectionOf maps to "all".
func csvParam(q url.Values, name string) []string {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

// parseCompanyCriteria builds company criteria from query parameters. An
// absent or empty types param is deliberately treated as "all types", the
// same as the other dimensions: the query interface has no way to ask for
// an explicitly empty type set, and selecting zero types in a dashboard
// reads as "no type filter", not "match nothing".
func parseCompanyCriteria(q url.Values) models.CompanyCriteria {
	return models.CompanyCriteria{
		Types:      models.SelectionOf(csvParam(q, "types")...),
		Industries: models.SelectionOf(csvParam(q, "industries")...),
		CompanyIDs: models.SelectionOf(csvParam(q, "companies")...),
	}
}

func parseTransactionCriteria(q url.Values) (models.TransactionCriteria, error) {
	criteria := models.TransactionCriteria{
		CompanyCriteria: parseCompanyCriteria(q),
		MilestoneTypes:  models.SelectionOf(csvParam(q, "milestone_types")...),
	}

	var err error
	if criteria.From, err = dateParam(q, "from"); err != nil {
		return criteria, err
	}
	if criteria.To, err = dateParam(q, "to"); err != nil {
		return criteria, err
	}
	return criteria, nil
}

func dateParam(q url.Values, name string) (time.Time, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperrors.NewInvalidFilterFormatError(
			fmt.Sprintf("%s: %q is not an ISO date", name, raw))
	}
	return t, nil
}

// ==========================
// Response helpers
// ==========================

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	if stdErr, ok := apperrors.AsStandardError(err); ok {
		writeJSON(w, status, stdErr)
		return
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
