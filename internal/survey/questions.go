package survey

import (
	"fmt"

	"moneybrief/internal/model"
)

// Question IDs
const (
	QAge               = "age"
	QInvestmentGoal    = "investmentGoal"
	QKnowledge         = "knowledge"
	QRiskTolerance     = "riskTolerance"
	QTimeHorizon       = "timeHorizon"
	QInvestmentPortion = "investmentPortion"
	QHasInvestments    = "hasInvestments"
	QInvestmentTypes   = "investmentTypes"
)

// Questions returns the questionnaire in presentation order.
// The slice is freshly allocated on every call.
func Questions() []model.Question {
	return []model.Question{
		{
			ID:     QAge,
			Title:  "Age Range",
			Prompt: "What is your age range?",
			Type:   model.QuestionTypeChoice,
			Options: []model.Option{
				{Value: "under25", Label: "Under 25"},
				{Value: "25-34", Label: "25–34"},
				{Value: "35-44", Label: "35–44"},
				{Value: "45-54", Label: "45–54"},
				{Value: "55+", Label: "55 or older"},
			},
		},
		{
			ID:     QInvestmentGoal,
			Title:  "Investment Goal",
			Prompt: "What is your primary investment goal?",
			Type:   model.QuestionTypeChoice,
			Options: []model.Option{
				{Value: "preservation", Label: "Capital preservation"},
				{Value: "income", Label: "Generating income"},
				{Value: "balanced", Label: "Balanced growth and income"},
				{Value: "aggressive", Label: "Aggressive long-term growth"},
			},
		},
		{
			ID:     QKnowledge,
			Title:  "Financial Knowledge",
			Prompt: "How would you describe your knowledge of financial markets?",
			Type:   model.QuestionTypeChoice,
			Options: []model.Option{
				{Value: "none", Label: "None"},
				{Value: "basic", Label: "Basic"},
				{Value: "intermediate", Label: "Intermediate"},
				{Value: "advanced", Label: "Advanced"},
			},
		},
		{
			ID:     QRiskTolerance,
			Title:  "Risk Tolerance",
			Prompt: "How would you react if your investment dropped 20% in a short period?",
			Type:   model.QuestionTypeChoice,
			Options: []model.Option{
				{Value: "sell", Label: "Sell immediately to avoid further losses"},
				{Value: "wait", Label: "Wait and monitor the market"},
				{Value: "buy", Label: "Buy more while prices are low"},
			},
		},
		{
			ID:     QTimeHorizon,
			Title:  "Time Horizon",
			Prompt: "What is your investment time horizon?",
			Type:   model.QuestionTypeChoice,
			Options: []model.Option{
				{Value: "less1", Label: "Less than 1 year"},
				{Value: "1-3", Label: "1–3 years"},
				{Value: "3-5", Label: "3–5 years"},
				{Value: "more5", Label: "More than 5 years"},
			},
		},
		{
			ID:     QInvestmentPortion,
			Title:  "Investment Portion",
			Prompt: "What portion of your income can you invest regularly?",
			Type:   model.QuestionTypeChoice,
			Options: []model.Option{
				{Value: "less10", Label: "Less than 10%"},
				{Value: "10-25", Label: "10–25%"},
				{Value: "25-50", Label: "25–50%"},
				{Value: "more50", Label: "More than 50%"},
			},
		},
		{
			ID:     QHasInvestments,
			Title:  "Current Investments",
			Prompt: "Do you currently have other investments?",
			Type:   model.QuestionTypeChoice,
			Options: []model.Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
		{
			ID:          QInvestmentTypes,
			Title:       "Investment Types",
			Prompt:      "What types of assets do you hold?",
			Type:        model.QuestionTypeText,
			Placeholder: "e.g., stocks, bonds, real estate, crypto",
			Conditional: &model.Condition{QuestionID: QHasInvestments, Value: "yes"},
		},
	}
}

// Lookup finds a question by ID
func Lookup(id string) (model.Question, bool) {
	for _, q := range Questions() {
		if q.ID == id {
			return q, true
		}
	}
	return model.Question{}, false
}

// Visible filters questions down to those whose condition holds for answers
func Visible(questions []model.Question, answers model.Answers) []model.Question {
	out := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		if q.VisibleFor(answers) {
			out = append(out, q)
		}
	}
	return out
}

// Prune drops answers to unknown or currently hidden questions
func Prune(questions []model.Question, answers model.Answers) model.Answers {
	out := make(model.Answers)
	for _, q := range Visible(questions, answers) {
		if v, ok := answers[q.ID]; ok {
			out[q.ID] = v
		}
	}
	return out
}

// Validate checks a client-supplied answer set against the catalog.
// Unknown question ids and choice values outside the option list are rejected.
func Validate(questions []model.Question, answers model.Answers) error {
	if len(answers) == 0 {
		return ErrNoAnswers
	}
	byID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	for id, v := range answers {
		q, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
		}
		if q.Type == model.QuestionTypeChoice && !q.HasOption(v) {
			return fmt.Errorf("%w %q for %s", ErrInvalidOption, v, id)
		}
	}
	return nil
}
