package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formlet/pkg/failure"
	"github.com/goliatone/go-formlet/pkg/formlet"
	"github.com/goliatone/go-formlet/pkg/model"
	"github.com/goliatone/go-formlet/pkg/view"
)

// Session holds the driver and loop policy for an interactive run.
type Session struct {
	driver    PromptDriver
	maxRounds int
}

// Option customises a session.
type Option func(*Session)

// WithDriver swaps the prompt driver, e.g. for a scripted test driver.
func WithDriver(d PromptDriver) Option {
	return func(s *Session) {
		if d != nil {
			s.driver = d
		}
	}
}

// WithMaxRounds caps how many full prompt rounds run before the session
// gives up on an invalid form. Zero or negative keeps the default.
func WithMaxRounds(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxRounds = n
		}
	}
}

// Run prompts through every control of the formlet, folds the answers into
// the model and re-evaluates, repeating until validation passes, the round
// cap is hit, or the user aborts. It returns the final value together with
// the model snapshot so hosts can persist the state.
func Run[T any](ctx context.Context, f formlet.Formlet[T], initial model.Model, options ...Option) (T, model.Model, error) {
	var zero T
	s := &Session{maxRounds: 5}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver()
	}

	fctx := formlet.NewContext()
	m := initial
	if m == nil {
		m = model.Empty{}
	}

	for round := 0; round < s.maxRounds; round++ {
		var pending []model.Update
		_, vt, _ := formlet.Run(f, fctx, m, func(u model.Update) {
			pending = append(pending, u)
		})

		walker := walker{ctx: ctx, driver: s.driver}
		if err := walker.walk(view.Flatten(vt)); err != nil {
			return zero, m, err
		}

		m = model.Fold(m, pending...)

		v, _, ft := formlet.Run(f, fctx, m, nil)
		if failure.IsGood(ft) {
			return v, m, nil
		}
		for _, item := range failure.Flatten(ft) {
			label := item.Path
			if label == "" {
				label = "form"
			}
			if err := s.driver.Info(ctx, fmt.Sprintf("✗ %s: %s", label, item.Message)); err != nil {
				return zero, m, err
			}
		}
	}

	return zero, m, fmt.Errorf("tui: form still invalid after %d rounds", s.maxRounds)
}

type walker struct {
	ctx     context.Context
	driver  PromptDriver
	message string
}

func (w *walker) walk(elements []view.Element) error {
	for _, element := range elements {
		switch e := element.(type) {
		case Heading:
			w.message = e.Text
		case Group:
			if err := w.walk(e.Children); err != nil {
				return err
			}
		case *Prompt:
			if err := w.prompt(e); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *walker) prompt(p *Prompt) error {
	message := w.message
	w.message = ""
	if message == "" {
		message = p.Placeholder
	}
	if message == "" {
		message = "Value"
	}

	dispatch := func(answer string) {
		if p.Change != nil {
			p.Change(answer)
		}
	}

	switch p.Kind {
	case formlet.ControlCheckbox:
		answer, err := w.driver.Confirm(w.ctx, ConfirmConfig{
			Message: message,
			Default: p.Value == formlet.CheckedValue,
		})
		if err != nil {
			return err
		}
		if answer {
			dispatch(formlet.CheckedValue)
		} else {
			dispatch("")
		}
	case formlet.ControlSelect:
		idx, err := w.driver.Select(w.ctx, SelectConfig{
			Message:      message,
			Options:      p.Options,
			DefaultIndex: indexOf(p.Options, p.Value),
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(p.Options) {
			dispatch(p.Options[idx])
		}
	case formlet.ControlPassword:
		answer, err := w.driver.Password(w.ctx, InputConfig{Message: message})
		if err != nil {
			return err
		}
		dispatch(answer)
	case formlet.ControlTextArea:
		answer, err := w.driver.TextArea(w.ctx, InputConfig{
			Message: message,
			Default: p.Value,
			Help:    p.Placeholder,
		})
		if err != nil {
			return err
		}
		dispatch(answer)
	default:
		answer, err := w.driver.Input(w.ctx, InputConfig{
			Message: message,
			Default: p.Value,
			Help:    p.Placeholder,
		})
		if err != nil {
			return err
		}
		dispatch(answer)
	}
	return nil
}
