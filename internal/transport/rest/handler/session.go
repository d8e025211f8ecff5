package handler

import (
	"net/http"

	"moneybrief/internal/model"
	"moneybrief/internal/service"
	"moneybrief/internal/survey"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SessionHandler handles the questionnaire and session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
	reportSvc  *service.ReportService
	logger     *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService, reportSvc *service.ReportService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionSvc: sessionSvc,
		reportSvc:  reportSvc,
		logger:     logger,
	}
}

// AnswerRequest is the request body for answering the current question
type AnswerRequest struct {
	Value string `json:"value"`
}

// Questions handles GET /v1/questions
// @Summary List the questionnaire
// @Tags sessions
// @Produce json
// @Success 200 {object} QuestionsResponse
// @Router /questions [get]
func (h *SessionHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, QuestionsResponse{Questions: survey.Questions()})
}

// Start handles POST /v1/sessions
// @Summary Start a survey session
// @Tags sessions
// @Produce json
// @Success 201 {object} model.SessionView
// @Router /sessions [post]
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionSvc.Start(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /v1/sessions/{id}
// @Summary Survey session state
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.SessionView
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionSvc.Get(r.Context(), mux.Vars(r)["id"])
	h.respond(w, view, err)
}

// Answer handles POST /v1/sessions/{id}/answer
// @Summary Answer the current question
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body AnswerRequest true "Answer"
// @Success 200 {object} model.SessionView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/answer [post]
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	view, err := h.sessionSvc.Answer(r.Context(), mux.Vars(r)["id"], req.Value)
	h.respond(w, view, err)
}

// Submit handles POST /v1/sessions/{id}/submit
// @Summary Proceed past a text question
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.SessionView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/submit [post]
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionSvc.Submit(r.Context(), mux.Vars(r)["id"])
	h.respond(w, view, err)
}

// Back handles POST /v1/sessions/{id}/back
// @Summary Go back one question
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.SessionView
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/back [post]
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionSvc.Back(r.Context(), mux.Vars(r)["id"])
	h.respond(w, view, err)
}

// Reset handles POST /v1/sessions/{id}/reset
// @Summary Start the survey over
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.SessionView
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/reset [post]
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionSvc.Reset(r.Context(), mux.Vars(r)["id"])
	h.respond(w, view, err)
}

// Report handles GET /v1/sessions/{id}/report
// @Summary Report for a completed session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.Report
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/report [get]
func (h *SessionHandler) Report(w http.ResponseWriter, r *http.Request) {
	answers, err := h.sessionSvc.Answers(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	report, err := h.reportSvc.Build(answers)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *SessionHandler) respond(w http.ResponseWriter, view *model.SessionView, err error) {
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
