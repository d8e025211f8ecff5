package handler

import (
	"net/http"

	"moneybrief/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NarrativeHandler handles asynchronous AI narrative jobs
type NarrativeHandler struct {
	narrativeSvc *service.NarrativeService
	logger       *zap.Logger
}

// NewNarrativeHandler creates a new narrative handler
func NewNarrativeHandler(narrativeSvc *service.NarrativeService, logger *zap.Logger) *NarrativeHandler {
	return &NarrativeHandler{narrativeSvc: narrativeSvc, logger: logger}
}

// Start handles POST /v1/narratives
// @Summary Start an AI narrative job
// @Tags narratives
// @Accept json
// @Produce json
// @Param body body AnswersRequest true "Answers"
// @Success 202 {object} model.NarrativeJob
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /narratives [post]
func (h *NarrativeHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req AnswersRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	job, err := h.narrativeSvc.Start(r.Context(), req.Answers)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusAccepted, job)
}

// Get handles GET /v1/narratives/{id}
// @Summary Narrative job status
// @Tags narratives
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} model.NarrativeJob
// @Failure 404 {object} ErrorResponse
// @Router /narratives/{id} [get]
func (h *NarrativeHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.narrativeSvc.Job(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}
