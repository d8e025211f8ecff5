package model

// QuestionType defines how a question is answered
type QuestionType string

const (
	QuestionTypeChoice QuestionType = "choice" // Single option, auto-advances
	QuestionTypeText   QuestionType = "text"   // Free text, needs an explicit submit
)

// Option is one selectable answer of a choice question
type Option struct {
	Value string `json:"value" bson:"value"`
	Label string `json:"label" bson:"label"`
}

// Condition makes a question visible only when another question has a given answer
type Condition struct {
	QuestionID string `json:"questionId" bson:"questionId"`
	Value      string `json:"value" bson:"value"`
}

// Question is a question of the investor profile questionnaire
type Question struct {
	ID          string       `json:"id" bson:"id"`       // e.g., "age", "riskTolerance"
	Title       string       `json:"title" bson:"title"` // Short label used in reports
	Prompt      string       `json:"prompt" bson:"prompt"`
	Type        QuestionType `json:"type" bson:"type"`
	Options     []Option     `json:"options,omitempty" bson:"options,omitempty"`         // choice only
	Placeholder string       `json:"placeholder,omitempty" bson:"placeholder,omitempty"` // text only
	Conditional *Condition   `json:"conditional,omitempty" bson:"conditional,omitempty"`
}

// HasOption reports whether value is one of the question's option values
func (q *Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// OptionLabel returns the label for value, or value itself for text answers
func (q *Question) OptionLabel(value string) string {
	for _, o := range q.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// VisibleFor reports whether the question's condition holds for answers
func (q *Question) VisibleFor(answers Answers) bool {
	if q.Conditional == nil {
		return true
	}
	return answers[q.Conditional.QuestionID] == q.Conditional.Value
}
