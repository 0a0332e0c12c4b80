package command

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kballard/go-shellquote"

	"github.com/goliatone/go-themegen/pkg/config"
	"github.com/goliatone/go-themegen/pkg/schema"
)

func assemble(t *testing.T, raw config.Values) config.Config {
	t.Helper()
	asm, err := config.NewAssembler(schema.Default())
	if err != nil {
		t.Fatalf("assembler: %v", err)
	}
	res := asm.Assemble(raw)
	if !res.Valid {
		t.Fatalf("expected valid config, got %v", res.Errors)
	}
	return res.Config
}

func TestBuildRoundTripsThroughShell(t *testing.T) {
	cfg := assemble(t, config.Values{
		"slug":        "demo",
		"name":        "Demo Theme",
		"author":      "O'Brien",
		"description": "",
	})

	line := Build(cfg, "")
	words, err := shellquote.Split(line)
	if err != nil {
		t.Fatalf("split %q: %v", line, err)
	}

	if diff := cmp.Diff(append([]string{DefaultProgram}, Args(cfg)...), words); diff != "" {
		t.Fatalf("command does not round trip (-want +got):\n%s", diff)
	}
	if words[1] != "generate" || words[2] != "--slug" || words[3] != "demo" {
		t.Fatalf("unexpected leading words %v", words[:4])
	}
}

func TestBuildQuotesSpaces(t *testing.T) {
	cfg := assemble(t, config.Values{"slug": "demo", "name": "Demo Theme"})
	line := Build(cfg, "./themegen")

	want := "./themegen generate --slug demo --name 'Demo Theme' --description 'A WordPress block theme.'"
	if len(line) < len(want) || line[:len(want)] != want {
		t.Fatalf("unexpected command prefix:\n got %s\nwant %s...", line, want)
	}
}

func TestEnvelopes(t *testing.T) {
	cfg := assemble(t, config.Values{"slug": "demo", "name": "Demo Theme"})

	var buf bytes.Buffer
	if err := Write(&buf, NewSuccess(cfg, "", nil)); err != nil {
		t.Fatalf("write: %v", err)
	}
	var decoded struct {
		Success bool              `json:"success"`
		Config  map[string]string `json:"config"`
		Command string            `json:"command"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.Success || decoded.Config["theme_uri"] != "https://wordpress.org/themes/demo" || decoded.Command == "" {
		t.Fatalf("unexpected success envelope: %s", buf.String())
	}

	buf.Reset()
	if err := Write(&buf, NewInvalid(nil, nil)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, want := buf.String(), "{\n  \"success\": false,\n  \"errors\": []\n}\n"; got != want {
		t.Fatalf("invalid envelope = %q, want %q", got, want)
	}

	buf.Reset()
	if err := Write(&buf, NewFailure(errors.New("collect: malformed JSON"))); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, want := buf.String(), "{\n  \"success\": false,\n  \"error\": \"collect: malformed JSON\"\n}\n"; got != want {
		t.Fatalf("failure envelope = %q, want %q", got, want)
	}
}
