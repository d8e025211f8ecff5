package service

import (
	"bytes"

	"moneybrief/internal/model"
	"moneybrief/internal/report"
	"moneybrief/internal/survey"
)

// ReportService validates client answers and produces reports
type ReportService struct {
	builder   *report.Builder
	questions []model.Question
}

// NewReportService creates a new report service
func NewReportService(builder *report.Builder) *ReportService {
	return &ReportService{
		builder:   builder,
		questions: survey.Questions(),
	}
}

// Build validates answers and assembles the report
func (s *ReportService) Build(answers model.Answers) (*model.Report, error) {
	if err := survey.Validate(s.questions, answers); err != nil {
		return nil, err
	}
	return s.builder.Build(answers), nil
}

// HTML renders the on-screen report page
func (s *ReportService) HTML(answers model.Answers) (string, error) {
	r, err := s.Build(answers)
	if err != nil {
		return "", err
	}
	return report.RenderHTML(r)
}

// PDF renders the report document and its download filename
func (s *ReportService) PDF(answers model.Answers) ([]byte, string, error) {
	r, err := s.Build(answers)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := report.RenderPDF(&buf, r); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), report.PDFFilename(r.Profile), nil
}
