package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/moneystory/moneystory/internal/analytics"
	"github.com/moneystory/moneystory/internal/common"
	"github.com/moneystory/moneystory/internal/importer"
	"github.com/moneystory/moneystory/internal/model"
	"github.com/moneystory/moneystory/internal/story"
)

const maxUploadBytes = 10 << 20

type monthlyStoryResponse struct {
	Period     string                    `json:"period"`
	Stats      analytics.Stats           `json:"stats"`
	Categories []analytics.CategorySpend `json:"category_breakdown"`
	Patterns   analytics.PatternReport   `json:"patterns"`
	Story      string                    `json:"story"`
	Actions    []string                  `json:"actions"`
}

type actionsResponse struct {
	Period  string   `json:"period"`
	Actions []string `json:"actions"`
}

type trendsResponse struct {
	Period string               `json:"period"`
	Trends []analytics.TrendRow `json:"trends"`
}

type importResponse struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
}

type budgetRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) resolveUser(r *http.Request) (*model.User, error) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return s.store.FirstUser(r.Context())
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id %q", raw)
	}
	return s.store.GetUser(r.Context(), id)
}

func (s *Server) handleAddTransactions(w http.ResponseWriter, r *http.Request) {
	user, err := s.resolveUser(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var txns []model.Transaction
	if err := json.NewDecoder(r.Body).Decode(&txns); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.store.SaveTransactions(r.Context(), user.ID, txns); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]int{"saved": len(txns)})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	user, err := s.resolveUser(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
	}

	txns, err := s.store.ListTransactions(r.Context(), user.ID, limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if txns == nil {
		txns = []model.Transaction{}
	}
	s.writeJSON(w, http.StatusOK, txns)
}

func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	user, err := s.resolveUser(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer func() { _ = file.Close() }()

	txns, err := importer.ReadCSV(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.SaveTransactions(r.Context(), user.ID, txns); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusCreated, importResponse{
		BatchID:  uuid.NewString(),
		Imported: len(txns),
	})
}

func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	s.handleSummary(w, r, analytics.MonthlySummaries)
}

func (s *Server) handleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	s.handleSummary(w, r, analytics.WeeklySummaries)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request, summarize func([]model.Transaction) []analytics.PeriodSummary) {
	user, err := s.resolveUser(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txns, err := s.store.GetAllTransactions(r.Context(), user.ID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	summaries := summarize(txns)
	if summaries == nil {
		summaries = []analytics.PeriodSummary{}
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) monthQuery(r *http.Request) (int, int, error) {
	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if raw := r.URL.Query().Get("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year %q", raw)
		}
		year = v
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 12 {
			return 0, 0, fmt.Errorf("invalid month %q", raw)
		}
		month = v
	}
	return year, month, nil
}

// loadMonth fetches and category-resolves one month of transactions.
func (s *Server) loadMonth(r *http.Request, userID int64, year, month int) ([]model.Transaction, string, error) {
	start, end, err := model.MonthRange(year, month)
	if err != nil {
		return nil, "", err
	}
	txns, err := s.store.GetTransactionsByRange(r.Context(), userID, start, end)
	if err != nil {
		return nil, "", err
	}
	return s.resolver.Apply(txns), model.MonthPeriod(start), nil
}

func (s *Server) handleMonthlyStory(w http.ResponseWriter, r *http.Request) {
	user, err := s.resolveUser(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	year, month, err := s.monthQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txns, period, err := s.loadMonth(r, user.ID, year, month)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(txns) == 0 {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("no transactions for %s", period))
		return
	}

	stats := analytics.ComputeStats(txns)
	categories := analytics.CategoryBreakdown(txns)
	patterns := analytics.DetectPatterns(txns)

	text, err := s.generator.Generate(r.Context(), story.Input{
		Period:     period,
		Stats:      stats,
		Categories: categories,
		Patterns:   patterns,
	})
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, monthlyStoryResponse{
		Period:     period,
		Stats:      stats,
		Categories: categories,
		Patterns:   patterns,
		Story:      text,
		Actions:    analytics.RecommendActions(stats, categories, patterns),
	})
}

func (s *Server) handleActionsNextMonth(w http.ResponseWriter, r *http.Request) {
	user, err := s.resolveUser(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	year, month, err := s.monthQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txns, period, err := s.loadMonth(r, user.ID, year, month)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(txns) == 0 {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("no transactions for %s", period))
		return
	}

	stats := analytics.ComputeStats(txns)
	categories := analytics.CategoryBreakdown(txns)
	patterns := analytics.DetectPatterns(txns)

	s.writeJSON(w, http.StatusOK, actionsResponse{
		Period:  period,
		Actions: analytics.RecommendActions(stats, categories, patterns),
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.resolveUser(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txns, err := s.store.GetAllTransactions(r.Context(), user.ID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	profile := analytics.BuildProfiles(s.resolver.Apply(txns))
	s.writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	user, err := s.resolveUser(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = model.MonthPeriod(time.Now().UTC())
	}

	txns, err := s.store.GetAllTransactions(r.Context(), user.ID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	trends := analytics.CategoryTrends(s.resolver.Apply(txns), period)
	if trends == nil {
		trends = []analytics.TrendRow{}
	}
	s.writeJSON(w, http.StatusOK, trendsResponse{Period: period, Trends: trends})
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	user, err := s.resolveUser(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	budgets, err := s.store.ListBudgets(r.Context(), user.ID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if budgets == nil {
		budgets = []model.Budget{}
	}
	s.writeJSON(w, http.StatusOK, budgets)
}

func (s *Server) handleUpsertBudget(w http.ResponseWriter, r *http.Request) {
	user, err := s.resolveUser(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.store.UpsertBudget(r.Context(), user.ID, req.Category, req.Amount); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, common.ErrNotFound) {
			status = http.StatusNotFound
		}
		s.writeError(w, status, err.Error())
		return
	}

	budgets, err := s.store.ListBudgets(r.Context(), user.ID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, budgets)
}
