package handler

import (
	"net/http"
	"strconv"

	"moneybrief/internal/service"

	"go.uber.org/zap"
)

// ReportHandler handles report rendering and delivery endpoints
type ReportHandler struct {
	reportSvc    *service.ReportService
	narrativeSvc *service.NarrativeService
	deliverySvc  *service.DeliveryService
	logger       *zap.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService, narrativeSvc *service.NarrativeService, deliverySvc *service.DeliveryService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportSvc:    reportSvc,
		narrativeSvc: narrativeSvc,
		deliverySvc:  deliverySvc,
		logger:       logger,
	}
}

// Build handles POST /v1/reports
// @Summary Build a report from answers
// @Tags reports
// @Accept json
// @Produce json
// @Param body body AnswersRequest true "Answers"
// @Success 200 {object} model.Report
// @Failure 400 {object} ErrorResponse
// @Router /reports [post]
func (h *ReportHandler) Build(w http.ResponseWriter, r *http.Request) {
	var req AnswersRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	report, err := h.reportSvc.Build(req.Answers)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HTML handles POST /v1/reports/html
// @Summary Render the report page
// @Tags reports
// @Accept json
// @Produce html
// @Param body body AnswersRequest true "Answers"
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Router /reports/html [post]
func (h *ReportHandler) HTML(w http.ResponseWriter, r *http.Request) {
	var req AnswersRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	page, err := h.reportSvc.HTML(req.Answers)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page))
}

// PDF handles POST /v1/reports/pdf
// @Summary Download the report as PDF
// @Tags reports
// @Accept json
// @Produce application/pdf
// @Param body body AnswersRequest true "Answers"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Router /reports/pdf [post]
func (h *ReportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	var req AnswersRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	data, filename, err := h.reportSvc.PDF(req.Answers)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Email handles POST /v1/reports/email
// @Summary Email the report
// @Tags reports
// @Accept json
// @Produce json
// @Param body body service.EmailRequest true "Email request"
// @Success 200 {object} EmailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /reports/email [post]
func (h *ReportHandler) Email(w http.ResponseWriter, r *http.Request) {
	var req service.EmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.deliverySvc.Email(r.Context(), req); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, EmailResponse{Success: true, Message: "Email sent successfully."})
}

// Narrative handles POST /v1/reports/narrative
// @Summary Generate the AI narrative synchronously
// @Tags reports
// @Accept json
// @Produce json
// @Param body body AnswersRequest true "Answers"
// @Success 200 {object} NarrativeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /reports/narrative [post]
func (h *ReportHandler) Narrative(w http.ResponseWriter, r *http.Request) {
	var req AnswersRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	text, err := h.narrativeSvc.Generate(r.Context(), req.Answers)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, NarrativeResponse{Report: text})
}
