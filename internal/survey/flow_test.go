package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneybrief/internal/model"
)

func newFlow() *Flow {
	return NewFlow(Questions(), &model.Session{ID: "s1"})
}

func answerAll(t *testing.T, f *Flow, values ...string) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, f.Answer(v))
	}
}

func TestFlowChoiceAnswersAdvance(t *testing.T) {
	f := newFlow()
	assert.Equal(t, QAge, f.Current().ID)
	assert.Equal(t, 7, len(f.Visible()))

	require.NoError(t, f.Answer("under25"))
	assert.Equal(t, QInvestmentGoal, f.Current().ID)
	assert.InDelta(t, 100.0/7, f.Progress(), 0.001)
}

func TestFlowCompletesWithoutConditionalQuestion(t *testing.T) {
	f := newFlow()
	answerAll(t, f, "35-44", "balanced", "intermediate", "wait", "3-5", "10-25", "no")

	assert.True(t, f.Completed())
	assert.Equal(t, 100.0, f.Progress())
	assert.Len(t, f.Answers(), 7)
	assert.ErrorIs(t, f.Answer("no"), ErrCompleted)
}

func TestFlowConditionalTextQuestion(t *testing.T) {
	f := newFlow()
	answerAll(t, f, "35-44", "balanced", "intermediate", "wait", "3-5", "10-25", "yes")

	require.False(t, f.Completed())
	assert.Equal(t, QInvestmentTypes, f.Current().ID)
	assert.Len(t, f.Visible(), 8)
	assert.False(t, f.CanSubmit())
	assert.ErrorIs(t, f.Submit(), ErrEmptyAnswer)

	require.NoError(t, f.Answer("stocks, bonds"))
	assert.False(t, f.Completed(), "text answers do not auto-advance")
	assert.True(t, f.CanSubmit())

	require.NoError(t, f.Submit())
	assert.True(t, f.Completed())
	assert.Equal(t, "stocks, bonds", f.Answers()[QInvestmentTypes])
}

func TestFlowRejectsUnknownOption(t *testing.T) {
	f := newFlow()
	err := f.Answer("ancient")
	require.ErrorIs(t, err, ErrInvalidOption)
	assert.Equal(t, QAge, f.Current().ID)
	assert.Empty(t, f.Session().Answers)
}

func TestFlowSubmitOnChoiceQuestion(t *testing.T) {
	assert.ErrorIs(t, newFlow().Submit(), ErrNotText)
}

func TestFlowPrevious(t *testing.T) {
	f := newFlow()
	assert.False(t, f.Previous(), "no-op on the first question")

	answerAll(t, f, "under25", "income")
	require.True(t, f.Previous())
	assert.Equal(t, QInvestmentGoal, f.Current().ID)
	assert.Equal(t, "income", f.Session().Answers[QInvestmentGoal], "answers survive going back")
}

func TestFlowDropsStaleConditionalAnswer(t *testing.T) {
	f := newFlow()
	answerAll(t, f, "35-44", "balanced", "intermediate", "wait", "3-5", "10-25", "yes", "crypto")
	require.True(t, f.Previous())
	require.Equal(t, QHasInvestments, f.Current().ID)

	require.NoError(t, f.Answer("no"))
	assert.True(t, f.Completed())
	_, ok := f.Answers()[QInvestmentTypes]
	assert.False(t, ok)
}

func TestFlowClampsIndexWhenVisibleListShrinks(t *testing.T) {
	s := &model.Session{
		Index:   7,
		Answers: model.Answers{QHasInvestments: "no"},
	}
	f := NewFlow(Questions(), s)
	assert.Equal(t, 6, f.Index())
	assert.Equal(t, QHasInvestments, f.Current().ID)
}

func TestFlowReset(t *testing.T) {
	f := newFlow()
	answerAll(t, f, "35-44", "balanced", "intermediate", "wait", "3-5", "10-25", "no")
	f.Reset()

	assert.False(t, f.Completed())
	assert.Equal(t, QAge, f.Current().ID)
	assert.Empty(t, f.Answers())
}

func TestFlowView(t *testing.T) {
	f := newFlow()
	answerAll(t, f, "under25")

	v := f.View()
	require.NotNil(t, v.Question)
	assert.Equal(t, "s1", v.ID)
	assert.Equal(t, QInvestmentGoal, v.Question.ID)
	assert.Equal(t, 2, v.Number)
	assert.Equal(t, 7, v.Total)
	assert.True(t, v.CanGoBack)
	assert.False(t, v.Completed)
}

func TestPrune(t *testing.T) {
	answers := model.Answers{
		QAge:             "under25",
		QInvestmentTypes: "gold",
		"favoriteColor":  "green",
	}
	assert.Equal(t, model.Answers{QAge: "under25"}, Prune(Questions(), answers))
}

func TestLookup(t *testing.T) {
	q, ok := Lookup(QRiskTolerance)
	require.True(t, ok)
	assert.Equal(t, "Buy more while prices are low", q.OptionLabel("buy"))
	assert.Equal(t, "unknown", q.OptionLabel("unknown"))

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	qs := Questions()

	assert.NoError(t, Validate(qs, model.Answers{QAge: "35-44", QInvestmentTypes: "index funds"}))
	assert.ErrorIs(t, Validate(qs, model.Answers{}), ErrNoAnswers)
	assert.ErrorIs(t, Validate(qs, model.Answers{"favoriteColor": "green"}), ErrUnknownQuestion)
	assert.ErrorIs(t, Validate(qs, model.Answers{QRiskTolerance: "panic"}), ErrInvalidOption)
}
