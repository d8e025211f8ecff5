package service

import (
	"context"
	"sync"
	"testing"

	"moneybrief/internal/advice"
	"moneybrief/internal/mailer"
	"moneybrief/internal/model"
	"moneybrief/internal/report"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testAnswers() model.Answers {
	return model.Answers{
		"age":               "35-44",
		"investmentGoal":    "balanced",
		"knowledge":         "basic",
		"riskTolerance":     "wait",
		"timeHorizon":       "3-5",
		"investmentPortion": "10-25",
		"hasInvestments":    "yes",
		"investmentTypes":   "index funds",
	}
}

func testReports() *ReportService {
	return NewReportService(report.NewBuilder(advice.Default()))
}

type fakeCompleter struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
	block   chan struct{} // when set, Complete waits for it or ctx
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

func (f *fakeCompleter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type fakeSender struct {
	sent []mailer.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type broadcast struct {
	jobID   string
	msgType string
	payload interface{}
}

type fakeBroadcaster struct {
	mu   sync.Mutex
	msgs []broadcast
}

func (f *fakeBroadcaster) BroadcastNarrative(jobID, msgType string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, broadcast{jobID, msgType, payload})
}

func (f *fakeBroadcaster) messages() []broadcast {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]broadcast(nil), f.msgs...)
}
