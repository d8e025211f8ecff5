package model

// Answers maps question IDs to answer values
type Answers map[string]string

// Clone returns a copy that can be mutated independently
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Has reports whether the question has a non-empty answer
func (a Answers) Has(questionID string) bool {
	return a[questionID] != ""
}

// OneOf reports whether the answer to questionID is any of values
func (a Answers) OneOf(questionID string, values ...string) bool {
	v, ok := a[questionID]
	if !ok {
		return false
	}
	for _, want := range values {
		if v == want {
			return true
		}
	}
	return false
}
