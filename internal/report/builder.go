// Package report assembles scored results and renders them for the screen,
// email and PDF.
package report

import (
	"strings"
	"time"

	"moneybrief/internal/advice"
	"moneybrief/internal/model"
	"moneybrief/internal/scoring"
	"moneybrief/internal/survey"
)

// Builder turns answer sets into reports
type Builder struct {
	questions []model.Question
	catalog   *advice.Catalog
	now       func() time.Time
}

// NewBuilder creates a builder over the questionnaire and an advice catalog
func NewBuilder(catalog *advice.Catalog) *Builder {
	return &Builder{
		questions: survey.Questions(),
		catalog:   catalog,
		now:       time.Now,
	}
}

// Catalog returns the advice catalog in use
func (b *Builder) Catalog() *advice.Catalog {
	return b.catalog
}

// Build scores answers and selects every piece of text shown with the result
func (b *Builder) Build(answers model.Answers) *model.Report {
	answers = survey.Prune(b.questions, answers)
	result := scoring.Evaluate(answers)

	return &model.Report{
		Profile:         result.Profile,
		RiskScore:       result.RiskScore,
		Band:            scoring.BandFor(result.RiskScore),
		Description:     b.catalog.Description(result.Profile),
		Recommendations: b.catalog.Recommendations(result.Profile, answers),
		Responses:       b.responses(answers),
		Resources:       b.catalog.ResourcesFor(result.Profile, answers),
		Closing:         b.catalog.ClosingLines(),
		Answers:         answers,
		GeneratedAt:     b.now(),
	}
}

func (b *Builder) responses(answers model.Answers) []model.Response {
	out := []model.Response{}
	for _, q := range b.questions {
		v, ok := answers[q.ID]
		if !ok || q.Title == "" {
			continue
		}
		out = append(out, model.Response{
			QuestionID: q.ID,
			Question:   q.Title,
			Answer:     q.OptionLabel(v),
		})
	}
	return out
}

// PDFFilename is the download name for a profile's PDF
func PDFFilename(p model.Profile) string {
	return "Investor_Profile_" + strings.Join(strings.Fields(string(p)), "_") + ".pdf"
}
