package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-themegen/pkg/config"
	"github.com/goliatone/go-themegen/pkg/schema"
	"github.com/goliatone/go-themegen/pkg/testsupport"
)

func TestRunIdentityOnly(t *testing.T) {
	driver := &testsupport.ScriptedDriver{
		Inputs:   []string{"demo", "Demo Theme", "", "  Jane Doe ", ""},
		Confirms: []bool{false, false},
	}
	w, err := New(schema.Default(), WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := w.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := config.Values{"slug": "demo", "name": "Demo Theme", "author": "Jane Doe"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if !driver.Consumed() {
		t.Fatalf("expected every scripted answer to be used")
	}
}

func TestRunAllStages(t *testing.T) {
	driver := &testsupport.ScriptedDriver{
		Inputs: []string{
			"demo", "Demo Theme", "A demo.", "Jane Doe", "https://jane.dev",
			"2.0.0", "6.2", "", "8.1",
			"", "", "https://github.com/jane/demo",
		},
		Confirms: []bool{true, true},
		Selects:  []int{2},
	}
	w, err := New(schema.Default(), WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := w.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := config.Values{
		"slug":            "demo",
		"name":            "Demo Theme",
		"description":     "A demo.",
		"author":          "Jane Doe",
		"author_uri":      "https://jane.dev",
		"version":         "2.0.0",
		"min_wp_version":  "6.2",
		"min_php_version": "8.1",
		"license":         "MIT",
		"theme_repo_url":  "https://github.com/jane/demo",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	wantInfos := []string{
		"Stage 1: Theme Identity",
		"Stage 2: Version & Compatibility",
		"Stage 3: License & Repository",
	}
	if diff := cmp.Diff(wantInfos, driver.Infos); diff != "" {
		t.Fatalf("stage headers mismatch (-want +got):\n%s", diff)
	}
}

func TestRunIdentityFailureStopsBeforeLaterStages(t *testing.T) {
	driver := &testsupport.ScriptedDriver{
		Inputs: []string{"", "Demo", "", "", ""},
	}
	w, err := New(schema.Default(), WithPromptDriver(driver), WithTheme(Theme{ErrorPrefix: "x "}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	_, err = w.Run(context.Background())
	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("expected StageError, got %v", err)
	}
	if stageErr.Stage != schema.StageIdentity {
		t.Fatalf("expected stage %d, got %d", schema.StageIdentity, stageErr.Stage)
	}
	if diff := cmp.Diff([]string{"slug is required"}, stageErr.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	for _, asked := range driver.Asked {
		if asked == "Configure Version & Compatibility?" {
			t.Fatalf("later stage must not be offered after identity failure")
		}
	}
	if got := driver.Infos[len(driver.Infos)-1]; got != "x slug is required" {
		t.Fatalf("expected error info, got %q", got)
	}
}

func TestRunInvalidSlugPattern(t *testing.T) {
	driver := &testsupport.ScriptedDriver{
		Inputs: []string{"Bad Slug", "Demo", "", "", ""},
	}
	w, _ := New(schema.Default(), WithPromptDriver(driver))

	_, err := w.Run(context.Background())
	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("expected StageError, got %v", err)
	}
	if len(stageErr.Errors) != 1 {
		t.Fatalf("expected one violation, got %v", stageErr.Errors)
	}
}

func TestRunPrefillBecomesDefault(t *testing.T) {
	driver := &testsupport.ScriptedDriver{
		Inputs:   []string{"demo", "Demo Theme", "", "", ""},
		Confirms: []bool{false, false},
	}
	w, _ := New(schema.Default(), WithPromptDriver(driver), WithPrefill(config.Values{"author": "Jane"}))

	got, err := w.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, ok := got["author"]; ok {
		t.Fatalf("blank answer should clear the prefilled key, got %q", got["author"])
	}
}

func TestRunLabelsCarryHints(t *testing.T) {
	driver := &testsupport.ScriptedDriver{
		Inputs:   []string{"demo", "Demo Theme", "", "", ""},
		Confirms: []bool{false, false},
	}
	w, _ := New(schema.Default(), WithPromptDriver(driver), WithTheme(Theme{PromptPrefix: "? "}))
	if _, err := w.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []string{
		"? Theme slug (lowercase, hyphens only) (required)",
		"? Theme display name (required)",
		"? Theme description (default: A WordPress block theme.)",
		"? Author name (default: Author Name)",
		"? Author website URL (default: https://example.com)",
		"? Configure Version & Compatibility?",
		"? Configure License & Repository?",
	}
	if diff := cmp.Diff(want, driver.Asked); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w, _ := New(schema.Default(), WithPromptDriver(&testsupport.ScriptedDriver{}))
	if _, err := w.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunDriverErrorPropagates(t *testing.T) {
	driver := &testsupport.ScriptedDriver{Inputs: []string{"demo"}}
	w, _ := New(schema.Default(), WithPromptDriver(driver))

	if _, err := w.Run(context.Background()); !errors.Is(err, testsupport.ErrScriptExhausted) {
		t.Fatalf("expected scripted driver error, got %v", err)
	}
}

func TestNewRequiresRegistry(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatalf("expected error for nil registry")
	}
}
