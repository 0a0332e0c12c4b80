package schema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestDefault_StageOrder(t *testing.T) {
	reg := Default()

	var got []string
	for _, f := range reg.Stage(StageIdentity) {
		got = append(got, f.Key)
	}
	want := []string{"slug", "name", "description", "author", "author_uri"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stage 1 keys mismatch (-want +got):\n%s", diff)
	}

	stages := reg.Stages()
	if len(stages) != 3 || stages[0].Title != "Theme Identity" || stages[2].Number != StageLicense {
		t.Fatalf("unexpected stages: %#v", stages)
	}
}

func TestDefault_IndependentInstances(t *testing.T) {
	a := Default()
	b := Default()

	fields := a.Fields()
	fields[0].Key = "mutated"
	*fields[2].Default = "mutated"

	if got, _ := a.Field("description"); got.DefaultValue() != "A WordPress block theme." {
		t.Fatalf("registry default leaked mutation: %q", got.DefaultValue())
	}
	if !b.Has("slug") {
		t.Fatalf("expected independent registry to keep slug")
	}
}

func TestField_Unknown(t *testing.T) {
	_, err := Default().Field("nope")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestNew_RejectsInvalidFields(t *testing.T) {
	cases := map[string][]Field{
		"duplicate": {
			{Key: "a", Stage: 1, Type: FieldTypeString},
			{Key: "a", Stage: 1, Type: FieldTypeString},
		},
		"required with default": {
			{Key: "a", Stage: 1, Type: FieldTypeString, Required: true, Default: StringPtr("x")},
		},
		"unknown type": {
			{Key: "a", Stage: 1, Type: FieldType("email")},
		},
		"bad pattern": {
			{Key: "a", Stage: 1, Type: FieldTypeString, Pattern: "("},
		},
		"default outside enum": {
			{Key: "a", Stage: 1, Type: FieldTypeLicense, Enum: []string{"MIT"}, Default: StringPtr("BSD")},
		},
		"zero stage": {
			{Key: "a", Type: FieldTypeString},
		},
	}

	for name, fields := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := New(nil, fields); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestNew_UntitledStage(t *testing.T) {
	reg := MustNew(nil, []Field{{Key: "a", Stage: 4, Type: FieldTypeString}})
	want := []Stage{{Number: 4, Title: "Stage 4"}}
	if diff := cmp.Diff(want, reg.Stages()); diff != "" {
		t.Fatalf("stages mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalJSON_PreservesOrder(t *testing.T) {
	payload, err := json.Marshal(Default())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(payload)
	if strings.Index(text, `"slug"`) > strings.Index(text, `"theme_repo_url"`) {
		t.Fatalf("expected declaration order, got %s", text)
	}

	var decoded map[string]map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["slug"]["pattern"] != SlugPattern {
		t.Fatalf("expected slug pattern, got %v", decoded["slug"]["pattern"])
	}
	if decoded["slug"]["default"] != nil {
		t.Fatalf("expected null slug default, got %v", decoded["slug"]["default"])
	}
	if decoded["license"]["default"] != "GPL-2.0-or-later" {
		t.Fatalf("unexpected license default %v", decoded["license"]["default"])
	}
}

func TestMarshalYAML_ListsFields(t *testing.T) {
	payload, err := yaml.Marshal(Default())
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}
	var decoded []map[string]any
	if err := yaml.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}
	if len(decoded) != len(Default().Keys()) || decoded[0]["key"] != "slug" {
		t.Fatalf("unexpected yaml export: %s", payload)
	}
}

func TestOpenAPISchema_RequiredAndPattern(t *testing.T) {
	s := Default().OpenAPISchema()

	if diff := cmp.Diff([]string{"slug", "name"}, s.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	slug := s.Properties["slug"]
	if slug == nil || slug.Value.Pattern != SlugPattern {
		t.Fatalf("expected slug pattern to carry over")
	}

	if err := s.VisitJSON(map[string]any{"name": "Demo Theme"}); err == nil {
		t.Fatalf("expected missing slug to fail schema validation")
	}
	if err := s.VisitJSON(map[string]any{"slug": "demo", "name": "Demo Theme"}); err != nil {
		t.Fatalf("expected minimal config to pass: %v", err)
	}
}
