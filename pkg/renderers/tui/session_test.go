package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-formlet/pkg/formlet"
	"github.com/goliatone/go-formlet/pkg/model"
	"github.com/goliatone/go-formlet/pkg/validate"
)

// scriptDriver replays canned answers and records what was asked.
type scriptDriver struct {
	inputs   []string
	confirms []bool
	selects  []int
	messages []string
	infos    []string
	err      error
}

func (d *scriptDriver) next(queue *[]string) string {
	if len(*queue) == 0 {
		return ""
	}
	head := (*queue)[0]
	*queue = (*queue)[1:]
	return head
}

func (d *scriptDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.messages = append(d.messages, cfg.Message)
	return d.next(&d.inputs), nil
}

func (d *scriptDriver) Password(ctx context.Context, cfg InputConfig) (string, error) {
	return d.Input(ctx, cfg)
}

func (d *scriptDriver) TextArea(ctx context.Context, cfg InputConfig) (string, error) {
	return d.Input(ctx, cfg)
}

func (d *scriptDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	d.messages = append(d.messages, cfg.Message)
	if len(d.confirms) == 0 {
		return false, nil
	}
	head := d.confirms[0]
	d.confirms = d.confirms[1:]
	return head, nil
}

func (d *scriptDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	d.messages = append(d.messages, cfg.Message)
	if len(d.selects) == 0 {
		return 0, nil
	}
	head := d.selects[0]
	d.selects = d.selects[1:]
	return head, nil
}

func (d *scriptDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestRun_CompletesValidForm(t *testing.T) {
	c := Controls()
	f := formlet.WithLabel(c, "Name", validate.NotEmpty(c.Text("")))
	driver := &scriptDriver{inputs: []string{"Alice"}}

	v, m, err := Run(context.Background(), f, nil, WithDriver(driver))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if v != "Alice" {
		t.Fatalf("value = %q, want Alice", v)
	}
	if got := model.StringValue(m, ""); got != "Alice" {
		t.Fatalf("model value = %q, want Alice", got)
	}
	if len(driver.messages) != 1 || driver.messages[0] != "Name" {
		t.Fatalf("unexpected prompts: %v", driver.messages)
	}
}

func TestRun_RetriesUntilValid(t *testing.T) {
	c := Controls()
	f := formlet.WithLabel(c, "Name", validate.NotEmpty(c.Text("")))
	driver := &scriptDriver{inputs: []string{"", "Bob"}}

	v, _, err := Run(context.Background(), f, nil, WithDriver(driver))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if v != "Bob" {
		t.Fatalf("value = %q, want Bob", v)
	}
	if len(driver.infos) == 0 {
		t.Fatal("expected a validation message between rounds")
	}
}

func TestRun_OptionGateRevealsInnerPrompt(t *testing.T) {
	c := Controls()
	f := formlet.Option(c, "Has nickname", validate.NotEmpty(c.Text("nickname")))
	driver := &scriptDriver{
		confirms: []bool{true, true},
		inputs:   []string{"Ace"},
	}

	v, _, err := Run(context.Background(), f, nil, WithDriver(driver))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !v.Present || v.Value != "Ace" {
		t.Fatalf("value = %+v, want present Ace", v)
	}
}

func TestRun_GivesUpAfterMaxRounds(t *testing.T) {
	c := Controls()
	f := validate.NotEmpty(c.Text("name"))
	driver := &scriptDriver{}

	_, _, err := Run(context.Background(), f, nil, WithDriver(driver), WithMaxRounds(2))
	if err == nil {
		t.Fatal("expected error after exhausting rounds")
	}
}

func TestRun_PropagatesAbort(t *testing.T) {
	c := Controls()
	f := c.Text("name")
	driver := &scriptDriver{err: ErrAborted}

	_, _, err := Run(context.Background(), f, nil, WithDriver(driver))
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
