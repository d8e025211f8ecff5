package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"moneybrief/internal/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmailWithClientPDF(t *testing.T) {
	sender := &fakeSender{}
	svc := NewDeliveryService(sender, testReports(), zap.NewNop())

	pdf := []byte("%PDF-1.4 client")
	err := svc.Email(context.Background(), EmailRequest{
		Email:     " Investor <investor@example.com> ",
		Answers:   testAnswers(),
		PDFBase64: "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(pdf),
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "investor@example.com", msg.To)
	assert.Equal(t, EmailSubject, msg.Subject)
	assert.Contains(t, msg.HTML, "Your Investment Profile: Moderate")
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, AttachmentFilename, msg.Attachments[0].Name)
	assert.Equal(t, pdf, msg.Attachments[0].Data)
}

func TestEmailWithServerPDF(t *testing.T) {
	sender := &fakeSender{}
	svc := NewDeliveryService(sender, testReports(), zap.NewNop())

	require.NoError(t, svc.Email(context.Background(), EmailRequest{
		Email:     "investor@example.com",
		Answers:   testAnswers(),
		AttachPDF: true,
	}))
	require.Len(t, sender.sent[0].Attachments, 1)
	assert.True(t, bytes.HasPrefix(sender.sent[0].Attachments[0].Data, []byte("%PDF-")))
}

func TestEmailWithoutAttachment(t *testing.T) {
	sender := &fakeSender{}
	svc := NewDeliveryService(sender, testReports(), zap.NewNop())

	require.NoError(t, svc.Email(context.Background(), EmailRequest{Email: "investor@example.com", Answers: testAnswers()}))
	assert.Empty(t, sender.sent[0].Attachments)
}

func TestEmailErrors(t *testing.T) {
	ctx := context.Background()
	ok := NewDeliveryService(&fakeSender{}, testReports(), zap.NewNop())

	err := ok.Email(ctx, EmailRequest{Email: "nobody", Answers: testAnswers()})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	err = ok.Email(ctx, EmailRequest{Email: "a@example.com", Answers: testAnswers(), PDFBase64: "%%%"})
	assert.ErrorIs(t, err, ErrInvalidAttachment)

	disabled := NewDeliveryService(&fakeSender{err: mailer.ErrNotConfigured}, testReports(), zap.NewNop())
	err = disabled.Email(ctx, EmailRequest{Email: "a@example.com", Answers: testAnswers()})
	assert.ErrorIs(t, err, ErrEmailDisabled)

	failing := NewDeliveryService(&fakeSender{err: errors.New("535 auth failed")}, testReports(), zap.NewNop())
	err = failing.Email(ctx, EmailRequest{Email: "a@example.com", Answers: testAnswers()})
	assert.ErrorIs(t, err, ErrEmailFailed)
}

func TestDecodePDF(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte("pdf"))

	got, err := DecodePDF(raw)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf"), got)

	got, err = DecodePDF("data:application/pdf;filename=generated.pdf;base64," + raw)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf"), got)

	_, err = DecodePDF("data:application/pdf;base64")
	assert.ErrorIs(t, err, ErrInvalidAttachment)
	_, err = DecodePDF("")
	assert.ErrorIs(t, err, ErrInvalidAttachment)
}
