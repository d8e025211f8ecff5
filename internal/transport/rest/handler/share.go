package handler

import (
	"net/http"

	"moneybrief/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ShareHandler handles shareable result links
type ShareHandler struct {
	shareSvc  *service.ShareService
	reportSvc *service.ReportService
	logger    *zap.Logger
}

// NewShareHandler creates a new share handler
func NewShareHandler(shareSvc *service.ShareService, reportSvc *service.ReportService, logger *zap.Logger) *ShareHandler {
	return &ShareHandler{shareSvc: shareSvc, reportSvc: reportSvc, logger: logger}
}

// Create handles POST /v1/share
// @Summary Create a share link
// @Tags share
// @Accept json
// @Produce json
// @Param body body AnswersRequest true "Answers"
// @Success 201 {object} model.ShareLink
// @Failure 400 {object} ErrorResponse
// @Router /share [post]
func (h *ShareHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AnswersRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	link, err := h.shareSvc.Create(req.Answers)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

// Resolve handles GET /v1/share/{token}
// @Summary Report for a shared link
// @Tags share
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} model.Report
// @Failure 400 {object} ErrorResponse
// @Router /share/{token} [get]
func (h *ShareHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	answers, err := h.shareSvc.Resolve(mux.Vars(r)["token"])
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
