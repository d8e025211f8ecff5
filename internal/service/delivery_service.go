package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"moneybrief/internal/mailer"
	"moneybrief/internal/model"
	"moneybrief/internal/report"

	"go.uber.org/zap"
)

var (
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrInvalidAttachment = errors.New("invalid pdf attachment")
	ErrEmailDisabled     = errors.New("email delivery not configured")
	ErrEmailFailed       = errors.New("failed to send email")
)

const (
	EmailSubject       = "Your Personalized Investment Report"
	AttachmentFilename = "Investor_Profile.pdf"
)

// EmailRequest asks for a report to be mailed to Email
type EmailRequest struct {
	Email     string        `json:"email"`
	Answers   model.Answers `json:"answers"`
	PDFBase64 string        `json:"pdfBase64,omitempty"` // Data URL or raw base64
	AttachPDF bool          `json:"attachPdf,omitempty"` // Render the PDF server-side
}

// DeliveryService emails reports
type DeliveryService struct {
	sender  mailer.Sender
	reports *ReportService
	logger  *zap.Logger
}

// NewDeliveryService creates a new delivery service
func NewDeliveryService(sender mailer.Sender, reports *ReportService, logger *zap.Logger) *DeliveryService {
	return &DeliveryService{
		sender:  sender,
		reports: reports,
		logger:  logger,
	}
}

// Email renders the report for req.Answers and sends it
func (s *DeliveryService) Email(ctx context.Context, req EmailRequest) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return ErrInvalidEmail
	}
	r, err := s.reports.Build(req.Answers)
	if err != nil {
		return err
	}
	html, err := report.RenderEmailHTML(r)
	if err != nil {
		return err
	}

	msg := mailer.Message{
		To:      addr.Address,
		Subject: EmailSubject,
		HTML:    html,
	}
	switch {
	case req.PDFBase64 != "":
		data, err := DecodePDF(req.PDFBase64)
		if err != nil {
			return err
		}
		msg.Attachments = append(msg.Attachments, mailer.Attachment{Name: AttachmentFilename, Data: data})
	case req.AttachPDF:
		data, _, err := s.reports.PDF(req.Answers)
		if err != nil {
			return err
		}
		msg.Attachments = append(msg.Attachments, mailer.Attachment{Name: AttachmentFilename, Data: data})
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			return ErrEmailDisabled
		}
		s.logger.Error("send report email", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrEmailFailed, err)
	}
	s.logger.Info("report emailed", zap.String("profile", string(r.Profile)), zap.Int("attachments", len(msg.Attachments)))
	return nil
}

// DecodePDF accepts a data URL ("data:application/pdf;base64,...") or raw base64
func DecodePDF(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		i := strings.IndexByte(s, ',')
		if i < 0 {
			return nil, ErrInvalidAttachment
		}
		s = s[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil || len(data) == 0 {
		return nil, ErrInvalidAttachment
	}
	return data, nil
}
