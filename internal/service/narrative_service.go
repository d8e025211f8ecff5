package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"moneybrief/internal/cache"
	"moneybrief/internal/llm"
	"moneybrief/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNarrativeDisabled = errors.New("narrative: missing OpenAI API key")
	ErrNarrativeFailed   = errors.New("narrative: generation failed")
	ErrJobNotFound       = errors.New("narrative job not found")
)

// Client-facing narrative messages
const (
	EmptyNarrative  = "Could not generate the report."
	FailedNarrative = "Error generating the report."
)

// NarrativeService produces AI-written report prose, synchronously or as a
// background job pushed to WebSocket subscribers
type NarrativeService struct {
	completer   llm.Completer // nil when no API key is configured
	reports     *ReportService
	jobs        cache.NarrativeCache
	broadcaster Broadcaster
	timeout     time.Duration
	logger      *zap.Logger
	wg          sync.WaitGroup
}

// NewNarrativeService creates a narrative service. A nil completer disables it.
func NewNarrativeService(completer llm.Completer, reports *ReportService, jobs cache.NarrativeCache, timeout time.Duration, logger *zap.Logger) *NarrativeService {
	return &NarrativeService{
		completer: completer,
		reports:   reports,
		jobs:      jobs,
		timeout:   timeout,
		logger:    logger,
	}
}

// SetBroadcaster sets the WebSocket broadcaster
func (s *NarrativeService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Enabled reports whether an AI endpoint is configured
func (s *NarrativeService) Enabled() bool {
	return s.completer != nil
}

// Generate writes the narrative for answers in the caller's request
func (s *NarrativeService) Generate(ctx context.Context, answers model.Answers) (string, error) {
	if !s.Enabled() {
		return "", ErrNarrativeDisabled
	}
	r, err := s.reports.Build(answers)
	if err != nil {
		return "", err
	}
	return s.complete(ctx, r)
}

// Start queues a narrative job and returns it in the pending state
func (s *NarrativeService) Start(ctx context.Context, answers model.Answers) (*model.NarrativeJob, error) {
	if !s.Enabled() {
		return nil, ErrNarrativeDisabled
	}
	r, err := s.reports.Build(answers)
	if err != nil {
		return nil, err
	}

	job := &model.NarrativeJob{
		ID:        uuid.New().String(),
		Status:    model.NarrativePending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.jobs.Set(ctx, job); err != nil {
		return nil, err
	}

	s.wg.Add(1)
	go s.run(context.WithoutCancel(ctx), *job, r)

	return job, nil
}

// Job returns the current state of a narrative job
func (s *NarrativeService) Job(ctx context.Context, id string) (*model.NarrativeJob, error) {
	job, err := s.jobs.Get(ctx, id)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, ErrJobNotFound
	}
	return job, err
}

// Wait blocks until every background job has finished
func (s *NarrativeService) Wait() {
	s.wg.Wait()
}

func (s *NarrativeService) run(ctx context.Context, job model.NarrativeJob, r *model.Report) {
	defer s.wg.Done()

	genCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.complete(genCtx, r)
	now := time.Now().UTC()
	job.ReadyAt = &now
	msgType := MsgNarrativeReady
	if err != nil {
		job.Status = model.NarrativeFailed
		job.Error = FailedNarrative
		msgType = MsgNarrativeFailed
	} else {
		job.Status = model.NarrativeReady
		job.Report = text
	}

	if err := s.jobs.Set(ctx, &job); err != nil {
		s.logger.Error("store narrative job", zap.String("job", job.ID), zap.Error(err))
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastNarrative(job.ID, msgType, job)
	}
	s.logger.Info("narrative job finished",
		zap.String("job", job.ID),
		zap.String("status", string(job.Status)),
		zap.Duration("elapsed", now.Sub(job.CreatedAt)))
}

func (s *NarrativeService) complete(ctx context.Context, r *model.Report) (string, error) {
	text, err := s.completer.Complete(ctx, BuildNarrativePrompt(r))
	if errors.Is(err, llm.ErrEmptyCompletion) {
		return EmptyNarrative, nil
	}
	if err != nil {
		s.logger.Warn("narrative generation failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrNarrativeFailed, err)
	}
	return text, nil
}

// BuildNarrativePrompt renders the user prompt sent to the model
func BuildNarrativePrompt(r *model.Report) string {
	var responses strings.Builder
	for _, resp := range r.Responses {
		fmt.Fprintf(&responses, "\n- %s: %s", resp.Question, resp.Answer)
	}

	return fmt.Sprintf(`Write a personalized investment report for an investor who just completed a risk tolerance questionnaire.

Investor Profile: %s
Risk Tolerance Score: %d out of 100

Profile Summary:
%s

Questionnaire Responses:%s

Baseline Recommendations:
- %s

Instructions:
1. Explain what this profile means for the investor in plain language.
2. Refer to their specific answers, especially time horizon and reaction to market drops.
3. Suggest a broad asset allocation consistent with the profile.
4. Do not promise returns or name individual securities.
5. Close by noting that the report is educational and not personalized financial advice.`,
		r.Profile, r.RiskScore, r.Description, responses.String(), strings.Join(r.Recommendations, "\n- "))
}
