package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"policy-survey-api/internal/model"
	"policy-survey-api/internal/query"
	"policy-survey-api/pkg/router"
)

// ErrorResponse is the body of every 4xx/5xx answer
type ErrorResponse struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

// SurveyHandler serves the survey support endpoints
type SurveyHandler struct {
	service *query.Service
}

// NewSurveyHandler creates a handler backed by svc
func NewSurveyHandler(svc *query.Service) *SurveyHandler {
	return &SurveyHandler{service: svc}
}

// Support returns the overall support rate
// @Summary Overall support
// @Description Return the overall support rate and total respondent count
// @Tags support
// @Produce json
// @Success 200 {object} model.AggregateResult "Overall support"
// @Router /support [get]
func (h *SurveyHandler) Support(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.OverallSupport())
}

// SupportBy returns the support rate of respondents matching the filters
// @Summary Filtered support
// @Description Filter respondents by optional demographic attributes (case-insensitive) and return their support rate
// @Tags support
// @Produce json
// @Param gender query string false "Filter by gender"
// @Param race query string false "Filter by race"
// @Param age_group query string false "Filter by age group"
// @Param education query string false "Filter by education level"
// @Param income query string false "Filter by income category"
// @Success 200 {object} model.AggregateResult "Filtered support"
// @Failure 404 {object} ErrorResponse "No respondents match the given filters"
// @Router /support_by [get]
func (h *SurveyHandler) SupportBy(w http.ResponseWriter, r *http.Request) {
	spec := filterSpecFromQuery(r)

	result, err := h.service.SupportBy(spec)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Grouped returns support rates for each value of a categorical column
// @Summary Grouped support
// @Description Group respondents by a categorical column and return the count and support rate of each group, ordered by group value
// @Tags support
// @Produce json
// @Param group_by query string true "Column to group by" Enums(gender, race, age_group, education, income)
// @Success 200 {array} model.GroupEntry "Support per group"
// @Failure 400 {object} ErrorResponse "Invalid group_by"
// @Router /grouped [get]
func (h *SurveyHandler) Grouped(w http.ResponseWriter, r *http.Request) {
	groupBy := r.URL.Query().Get("group_by")

	groups, err := h.service.Grouped(groupBy)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// filterSpecFromQuery reads the optional filter parameters of /support_by
func filterSpecFromQuery(r *http.Request) model.FilterSpec {
	params := r.URL.Query()
	var spec model.FilterSpec
	for _, c := range model.Columns {
		spec.Set(c, params.Get(string(c)))
	}
	return spec
}

// writeQueryError maps query errors to status codes
func (h *SurveyHandler) writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := router.RequestID(r.Context())

	var colErr *query.InvalidColumnError
	switch {
	case errors.Is(err, query.ErrNoMatch):
		writeError(w, http.StatusNotFound, "No respondents match the given filters.", requestID)
	case errors.As(err, &colErr):
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid group_by '%s'. Must be one of %v.", colErr.Column, colErr.Valid), requestID)
	default:
		log.Printf("❌ Query failed for %s: %v", r.URL.String(), err)
		writeError(w, http.StatusInternalServerError, "Internal server error", requestID)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail, requestID string) {
	writeJSON(w, status, ErrorResponse{Detail: detail, RequestID: requestID})
}
