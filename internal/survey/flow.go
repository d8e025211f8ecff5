package survey

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"moneybrief/internal/model"
)

var (
	ErrCompleted       = errors.New("questionnaire already completed")
	ErrNotCompleted    = errors.New("questionnaire not completed")
	ErrInvalidOption   = errors.New("invalid option")
	ErrEmptyAnswer     = errors.New("answer is required")
	ErrNotText         = errors.New("current question is not a text question")
	ErrNoAnswers       = errors.New("no answers given")
	ErrUnknownQuestion = errors.New("unknown question")
)

// Flow walks a session through the visible questions linearly.
// It mutates the session it was created with.
type Flow struct {
	questions []model.Question
	session   *model.Session
	now       func() time.Time
}

// NewFlow wraps session with the given question catalog
func NewFlow(questions []model.Question, session *model.Session) *Flow {
	if session.Answers == nil {
		session.Answers = make(model.Answers)
	}
	return &Flow{questions: questions, session: session, now: time.Now}
}

// Session returns the underlying session state
func (f *Flow) Session() *model.Session {
	return f.session
}

// Visible returns the questions shown for the current answers
func (f *Flow) Visible() []model.Question {
	return Visible(f.questions, f.session.Answers)
}

// Index returns the clamped position of the current question
func (f *Flow) Index() int {
	visible := f.Visible()
	idx := f.session.Index
	if idx >= len(visible) {
		idx = len(visible) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Current returns the current question
func (f *Flow) Current() model.Question {
	return f.Visible()[f.Index()]
}

// IsLast reports whether the current question is the last visible one
func (f *Flow) IsLast() bool {
	return f.Index() == len(f.Visible())-1
}

// Progress is the share of visible questions already passed, 0-100
func (f *Flow) Progress() float64 {
	if f.session.Completed {
		return 100
	}
	return float64(f.Index()) / float64(len(f.Visible())) * 100
}

// Completed reports whether the flow has finished
func (f *Flow) Completed() bool {
	return f.session.Completed
}

// Answer records value for the current question. Choice answers advance
// to the next question, or complete the flow on the last one.
func (f *Flow) Answer(value string) error {
	if f.session.Completed {
		return ErrCompleted
	}
	q := f.Current()

	switch q.Type {
	case model.QuestionTypeChoice:
		if !q.HasOption(value) {
			return fmt.Errorf("%w %q for %s", ErrInvalidOption, value, q.ID)
		}
		f.session.Answers[q.ID] = value
		f.advance()
	case model.QuestionTypeText:
		f.session.Answers[q.ID] = value
	}

	f.touch()
	return nil
}

// Submit moves past the current text question
func (f *Flow) Submit() error {
	if f.session.Completed {
		return ErrCompleted
	}
	q := f.Current()
	if q.Type != model.QuestionTypeText {
		return ErrNotText
	}
	if strings.TrimSpace(f.session.Answers[q.ID]) == "" {
		return ErrEmptyAnswer
	}
	f.advance()
	f.touch()
	return nil
}

// CanSubmit reports whether Submit would succeed
func (f *Flow) CanSubmit() bool {
	if f.session.Completed {
		return false
	}
	q := f.Current()
	return q.Type == model.QuestionTypeText && strings.TrimSpace(f.session.Answers[q.ID]) != ""
}

// Previous moves back one question. It returns false at the first question.
func (f *Flow) Previous() bool {
	if f.session.Completed {
		return false
	}
	idx := f.Index()
	if idx == 0 {
		return false
	}
	f.session.Index = idx - 1
	f.touch()
	return true
}

// Reset clears all answers so the questionnaire can start over
func (f *Flow) Reset() {
	f.session.Index = 0
	f.session.Answers = make(model.Answers)
	f.session.Completed = false
	f.touch()
}

// Answers returns the answers to the currently visible questions
func (f *Flow) Answers() model.Answers {
	return Prune(f.questions, f.session.Answers)
}

// View summarizes the flow for clients
func (f *Flow) View() model.SessionView {
	visible := f.Visible()
	view := model.SessionView{
		ID:        f.session.ID,
		Total:     len(visible),
		Progress:  f.Progress(),
		Answers:   f.Answers(),
		Completed: f.session.Completed,
	}
	if f.session.Completed {
		view.Number = len(visible)
		return view
	}
	q := f.Current()
	view.Question = &q
	view.Number = f.Index() + 1
	view.CanGoBack = f.Index() > 0
	view.CanSubmit = f.CanSubmit()
	return view
}

func (f *Flow) advance() {
	idx := f.Index()
	if idx >= len(f.Visible())-1 {
		f.session.Index = idx
		f.session.Completed = true
		return
	}
	f.session.Index = idx + 1
}

func (f *Flow) touch() {
	f.session.UpdatedAt = f.now()
}
