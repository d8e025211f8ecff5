// Package advice selects the static text that accompanies a scored profile:
// descriptions, recommendations, curated resources and closing lines.
package advice

import (
	"errors"
	"fmt"

	"moneybrief/internal/model"
)

var ErrIncompleteCatalog = errors.New("advice catalog incomplete")

// Predicate matches when the answer to QuestionID is one of Values
type Predicate struct {
	QuestionID string   `json:"questionId" bson:"questionId"`
	Values     []string `json:"values" bson:"values"`
}

// Matches reports whether answers satisfy the predicate
func (p Predicate) Matches(answers model.Answers) bool {
	return answers.OneOf(p.QuestionID, p.Values...)
}

// Rule is a recommendation added when every predicate matches and,
// if Profiles is set, the profile is one of them
type Rule struct {
	Text     string          `json:"text" bson:"text"`
	When     []Predicate     `json:"when,omitempty" bson:"when,omitempty"`
	Profiles []model.Profile `json:"profiles,omitempty" bson:"profiles,omitempty"`
}

// ResourceRule is a curated resource with the same selection semantics as Rule
type ResourceRule struct {
	model.Resource `bson:",inline"`
	When           []Predicate     `json:"when,omitempty" bson:"when,omitempty"`
	Profiles       []model.Profile `json:"profiles,omitempty" bson:"profiles,omitempty"`
}

// ProfileAdvice is the profile-level text
type ProfileAdvice struct {
	Profile         model.Profile `json:"profile" bson:"profile"`
	Description     string        `json:"description" bson:"description"`
	Recommendations []string      `json:"recommendations" bson:"recommendations"`
}

// Catalog is the full set of advisory content
type Catalog struct {
	Version   string          `json:"version" bson:"version"`
	Profiles  []ProfileAdvice `json:"profiles" bson:"profiles"`
	Rules     []Rule          `json:"rules" bson:"rules"`
	Resources []ResourceRule  `json:"resources" bson:"resources"`
	Closing   []string        `json:"closing" bson:"closing"`
}

// Validate checks that every profile has text and at least one resource is unconditional
func (c *Catalog) Validate() error {
	for _, p := range model.Profiles {
		adv, ok := c.profile(p)
		if !ok || adv.Description == "" || len(adv.Recommendations) == 0 {
			return fmt.Errorf("%w: no advice for profile %q", ErrIncompleteCatalog, p)
		}
	}
	for _, r := range c.Resources {
		if len(r.When) == 0 && len(r.Profiles) == 0 {
			return nil
		}
	}
	return fmt.Errorf("%w: no unconditional resource", ErrIncompleteCatalog)
}

// Description returns the summary paragraph for a profile
func (c *Catalog) Description(p model.Profile) string {
	if adv, ok := c.profile(p); ok {
		return adv.Description
	}
	return "No profile description available."
}

// Recommendations returns the profile recommendations followed by
// every rule that applies to the answers
func (c *Catalog) Recommendations(p model.Profile, answers model.Answers) []string {
	out := []string{}
	if adv, ok := c.profile(p); ok {
		out = append(out, adv.Recommendations...)
	}
	for _, r := range c.Rules {
		if applies(r.When, r.Profiles, p, answers) {
			out = append(out, r.Text)
		}
	}
	return out
}

// ResourcesFor returns the curated resources that apply to the answers
func (c *Catalog) ResourcesFor(p model.Profile, answers model.Answers) []model.Resource {
	out := []model.Resource{}
	for _, r := range c.Resources {
		if applies(r.When, r.Profiles, p, answers) {
			out = append(out, r.Resource)
		}
	}
	return out
}

// ClosingLines returns the greeting paragraphs placed at the top of emails
func (c *Catalog) ClosingLines() []string {
	return append([]string(nil), c.Closing...)
}

func (c *Catalog) profile(p model.Profile) (ProfileAdvice, bool) {
	for _, adv := range c.Profiles {
		if adv.Profile == p {
			return adv, true
		}
	}
	return ProfileAdvice{}, false
}

func applies(when []Predicate, profiles []model.Profile, p model.Profile, answers model.Answers) bool {
	if len(profiles) > 0 {
		found := false
		for _, want := range profiles {
			if want == p {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, pred := range when {
		if !pred.Matches(answers) {
			return false
		}
	}
	return true
}
