package prompt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

func TestTranslateSurveyErr(t *testing.T) {
	if got := translateSurveyErr(terminal.InterruptErr); !errors.Is(got, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", got)
	}
	wrapped := fmt.Errorf("ask: %w", terminal.InterruptErr)
	if got := translateSurveyErr(wrapped); !errors.Is(got, ErrAborted) {
		t.Fatalf("expected wrapped interrupt to map to ErrAborted, got %v", got)
	}
	other := errors.New("boom")
	if got := translateSurveyErr(other); got != other {
		t.Fatalf("expected passthrough, got %v", got)
	}
}

func TestIndexOf(t *testing.T) {
	options := []string{"MIT", "GPL-3.0-or-later"}
	if got := indexOf(options, "GPL-3.0-or-later"); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := indexOf(options, "BSD"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func TestSurveyDriver_InfoWritesLine(t *testing.T) {
	var buf bytes.Buffer
	d := NewSurveyDriver(WithInfoWriter(&buf))
	if err := d.Info(context.Background(), "hello"); err != nil {
		t.Fatalf("info: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestSurveyDriver_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := NewSurveyDriver()
	if _, err := d.Input(ctx, InputConfig{Message: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
