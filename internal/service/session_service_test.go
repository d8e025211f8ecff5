package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"moneybrief/internal/cache"
	"moneybrief/internal/model"
	"moneybrief/internal/survey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSessionService() *SessionService {
	return NewSessionService(cache.NewMemory().Sessions(time.Minute), zap.NewNop())
}

func TestSessionWalkthrough(t *testing.T) {
	svc := newSessionService()
	ctx := context.Background()

	view, err := svc.Start(ctx)
	require.NoError(t, err)
	require.NotNil(t, view.Question)
	assert.Equal(t, survey.QAge, view.Question.ID)
	assert.Equal(t, 7, view.Total)
	id := view.ID

	answers := testAnswers()
	for _, qid := range []string{"age", "investmentGoal", "knowledge", "riskTolerance", "timeHorizon", "investmentPortion", "hasInvestments"} {
		view, err = svc.Answer(ctx, id, answers[qid])
		require.NoError(t, err, qid)
	}
	require.NotNil(t, view.Question)
	assert.Equal(t, survey.QInvestmentTypes, view.Question.ID)
	assert.Equal(t, 8, view.Total)

	_, err = svc.Answers(ctx, id)
	assert.ErrorIs(t, err, survey.ErrNotCompleted)

	view, err = svc.Answer(ctx, id, "index funds")
	require.NoError(t, err)
	assert.True(t, view.CanSubmit)

	view, err = svc.Submit(ctx, id)
	require.NoError(t, err)
	assert.True(t, view.Completed)

	got, err := svc.Answers(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, answers, got)
}

func TestSessionBackAndReset(t *testing.T) {
	svc := newSessionService()
	ctx := context.Background()

	view, err := svc.Start(ctx)
	require.NoError(t, err)
	id := view.ID

	_, err = svc.Answer(ctx, id, "under25")
	require.NoError(t, err)

	view, err = svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, survey.QAge, view.Question.ID)
	assert.Equal(t, "under25", view.Answers["age"])

	view, err = svc.Reset(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, view.Answers)
	assert.Equal(t, 1, view.Number)
}

func TestSessionErrors(t *testing.T) {
	svc := newSessionService()
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	view, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.Answer(ctx, view.ID, "ancient")
	assert.ErrorIs(t, err, survey.ErrInvalidOption)

	_, err = svc.Submit(ctx, view.ID)
	assert.ErrorIs(t, err, survey.ErrNotText)

	got, err := svc.Get(ctx, view.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Answers, "failed steps are not stored")
}

// slowSessions widens the window between reading and writing a session
type slowSessions struct {
	cache.SessionCache
	delay time.Duration
}

func (s slowSessions) Get(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.SessionCache.Get(ctx, id)
	time.Sleep(s.delay)
	return session, err
}

func TestSessionConcurrentStepsAreSerialized(t *testing.T) {
	sessions := slowSessions{SessionCache: cache.NewMemory().Sessions(time.Minute), delay: 10 * time.Millisecond}
	svc := NewSessionService(sessions, zap.NewNop())
	ctx := context.Background()

	view, err := svc.Start(ctx)
	require.NoError(t, err)
	id := view.ID

	answers := testAnswers()
	for _, qid := range []string{"age", "investmentGoal", "knowledge", "riskTolerance", "timeHorizon"} {
		_, err = svc.Answer(ctx, id, answers[qid])
		require.NoError(t, err, qid)
	}
	view, err = svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 6, view.Number)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Back(ctx, id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	view, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Number)
	assert.Equal(t, survey.QKnowledge, view.Question.ID)
}
