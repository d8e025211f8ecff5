package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"moneybrief/internal/model"
	"moneybrief/internal/service"
	"moneybrief/internal/survey"

	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies, which may carry a base64 PDF
const maxBodyBytes = 10 << 20

// AnswersRequest is the request body of every answers-based endpoint
type AnswersRequest struct {
	Answers model.Answers `json:"answers"`
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error string `json:"error"`
}

// EmailResponse acknowledges a delivered report email
type EmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NarrativeResponse carries a synchronously generated narrative
type NarrativeResponse struct {
	Report string `json:"report"`
}

// QuestionsResponse lists the questionnaire in order
type QuestionsResponse struct {
	Questions []model.Question `json:"questions"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// errorStatus maps service errors to a status code and client message
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, survey.ErrNoAnswers),
		errors.Is(err, survey.ErrUnknownQuestion),
		errors.Is(err, survey.ErrInvalidOption),
		errors.Is(err, survey.ErrEmptyAnswer),
		errors.Is(err, survey.ErrNotText),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidAttachment),
		errors.Is(err, service.ErrInvalidShareToken):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrJobNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, survey.ErrCompleted),
		errors.Is(err, survey.ErrNotCompleted):
		return http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrNarrativeDisabled):
		return http.StatusServiceUnavailable, "Missing OpenAI API key."
	case errors.Is(err, service.ErrNarrativeFailed):
		return http.StatusBadGateway, service.FailedNarrative
	case errors.Is(err, service.ErrEmailDisabled):
		return http.StatusServiceUnavailable, "Email delivery is not configured."
	case errors.Is(err, service.ErrEmailFailed):
		return http.StatusInternalServerError, "Failed to send email."
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status, msg := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}
	writeError(w, status, msg)
}
