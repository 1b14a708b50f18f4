package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/smartfit/fitness-api/internal/domain"
	"github.com/smartfit/fitness-api/internal/service"
	"github.com/smartfit/fitness-api/pkg/problem"
)

type ExplorerHandler struct {
	service service.ExplorerService
}

func NewExplorerHandler(service service.ExplorerService) *ExplorerHandler {
	return &ExplorerHandler{service: service}
}

// Dataset handles GET /v1/explorer/dataset
// @Summary Generate a synthetic dataset
// @Description Generate a deterministic synthetic fitness dataset. The same seed always yields the same rows.
// @Tags explorer
// @Produce json
// @Param seed query integer false "Random seed" default(42)
// @Param samples query integer false "Number of rows to generate (1-10000)" default(1000) minimum(1) maximum(10000)
// @Param limit query integer false "Maximum rows to return; defaults to all generated rows"
// @Success 200 {object} domain.Dataset "Generated dataset"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /explorer/dataset [get]
func (h *ExplorerHandler) Dataset(w http.ResponseWriter, r *http.Request) {
	params, fieldErrors := parseExplorerParams(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	dataset, err := h.service.Dataset(r.Context(), params.seed, params.samples, params.limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid dataset parameters").Write(w)
			return
		}
		problem.InternalError("Failed to generate dataset").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, dataset)
}

// Summary handles GET /v1/explorer/summary
// @Summary Summarize the synthetic dataset
// @Description Return per-feature descriptive statistics (mean, standard deviation, min, max) of the generated dataset.
// @Tags explorer
// @Produce json
// @Param seed query integer false "Random seed" default(42)
// @Param samples query integer false "Number of rows to generate (1-10000)" default(1000) minimum(1) maximum(10000)
// @Success 200 {object} domain.DatasetSummary "Per-feature statistics"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /explorer/summary [get]
func (h *ExplorerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	params, fieldErrors := parseExplorerParams(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	summary, err := h.service.Summary(r.Context(), params.seed, params.samples)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid dataset parameters").Write(w)
			return
		}
		problem.InternalError("Failed to summarize dataset").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Correlations handles GET /v1/explorer/correlations
// @Summary Compute feature correlations
// @Description Return the Pearson correlation matrix of the dataset features.
// @Tags explorer
// @Produce json
// @Param seed query integer false "Random seed" default(42)
// @Param samples query integer false "Number of rows to generate (1-10000)" default(1000) minimum(1) maximum(10000)
// @Success 200 {object} domain.CorrelationMatrix "Correlation matrix"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /explorer/correlations [get]
func (h *ExplorerHandler) Correlations(w http.ResponseWriter, r *http.Request) {
	params, fieldErrors := parseExplorerParams(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	matrix, err := h.service.Correlations(r.Context(), params.seed, params.samples)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid dataset parameters").Write(w)
			return
		}
		problem.InternalError("Failed to compute correlations").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, matrix)
}

// Clusters handles GET /v1/explorer/clusters
// @Summary Aggregate dataset clusters
// @Description Return per-cluster sample counts and feature averages of the generated dataset.
// @Tags explorer
// @Produce json
// @Param seed query integer false "Random seed" default(42)
// @Param samples query integer false "Number of rows to generate (1-10000)" default(1000) minimum(1) maximum(10000)
// @Success 200 {object} domain.ClusterReport "Per-cluster aggregates"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /explorer/clusters [get]
func (h *ExplorerHandler) Clusters(w http.ResponseWriter, r *http.Request) {
	params, fieldErrors := parseExplorerParams(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	report, err := h.service.Clusters(r.Context(), params.seed, params.samples)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid dataset parameters").Write(w)
			return
		}
		problem.InternalError("Failed to aggregate clusters").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Overview handles GET /v1/dashboard/overview
// @Summary Dashboard overview
// @Description Return the dashboard headline figures, archetype distribution and average calories per workout type.
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardOverview "Dashboard overview"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /dashboard/overview [get]
func (h *ExplorerHandler) Overview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Overview(r.Context()))
}

type explorerParams struct {
	seed    int64
	samples int
	limit   int
}

func parseExplorerParams(r *http.Request) (explorerParams, []problem.FieldError) {
	params := explorerParams{
		seed:    service.DefaultExplorerSeed,
		samples: service.DefaultExplorerSamples,
	}
	var fieldErrors []problem.FieldError

	if seedStr := r.URL.Query().Get("seed"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "seed",
				Message: "must be an integer",
			})
		} else {
			params.seed = seed
		}
	}

	if samplesStr := r.URL.Query().Get("samples"); samplesStr != "" {
		samples, err := strconv.Atoi(samplesStr)
		if err != nil || samples < 1 || samples > service.MaxExplorerSamples {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "samples",
				Message: "must be an integer between 1 and 10000",
			})
		} else {
			params.samples = samples
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			params.limit = limit
		}
	}

	if len(fieldErrors) > 0 {
		return params, fieldErrors
	}

	return params, nil
}
