package sanitize

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-themegen/pkg/schema"
)

var allKinds = []Kind{KindText, KindSlug, KindName, KindURL, KindVersion, KindLicense}

func TestValue_SlugIdempotentOnCleanInput(t *testing.T) {
	for _, slug := range []string{"my-theme", "ab", "a1", "demo-theme-2", "x-y-z"} {
		got, err := Value("slug", slug, KindSlug)
		if err != nil {
			t.Fatalf("sanitize %q: %v", slug, err)
		}
		if got != slug {
			t.Fatalf("expected %q unchanged, got %q", slug, got)
		}
		again, err := Value("slug", got, KindSlug)
		if err != nil || again != got {
			t.Fatalf("expected idempotence for %q, got %q (%v)", got, again, err)
		}
	}
}

func TestValue_SlugCleanup(t *testing.T) {
	cases := map[string]string{
		"My_Theme!":        "my-theme",
		"  Hello   World ": "hello-world",
		"--a--b--":         "a-b",
		"Café Theme":       "caf-theme",
	}
	for in, want := range cases {
		got, err := Value("slug", in, KindSlug)
		if err != nil {
			t.Fatalf("sanitize %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("sanitize %q: want %q, got %q", in, want, got)
		}
	}
}

func TestValue_SlugTooShort(t *testing.T) {
	_, err := Value("slug", "!!a!!", KindSlug)
	if !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
}

func TestValue_TraversalRejectedForEveryKind(t *testing.T) {
	for _, kind := range allKinds {
		for _, input := range []string{"..", "a..b", `a\b`, "https://example.com/../etc"} {
			_, err := Value("field", input, kind)
			if !errors.Is(err, ErrPathTraversal) {
				t.Fatalf("kind %s input %q: expected ErrPathTraversal, got %v", kind, input, err)
			}
		}
	}
	for _, kind := range allKinds {
		if kind == KindURL {
			continue
		}
		_, err := Value("field", "a/b", kind)
		if !errors.Is(err, ErrPathTraversal) {
			t.Fatalf("kind %s: expected ErrPathTraversal for slash, got %v", kind, err)
		}
	}
}

func TestValue_ErrorCarriesFieldAndInput(t *testing.T) {
	_, err := Value("slug", "../evil", KindSlug)
	var sErr *Error
	if !errors.As(err, &sErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if sErr.Field != "slug" || sErr.Input != "../evil" || sErr.Kind != KindSlug {
		t.Fatalf("unexpected error payload: %#v", sErr)
	}
}

func TestValue_StripsControlCharacters(t *testing.T) {
	got, err := Value("name", "Demo\x00 The\x1bme\x7f", KindName)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if got != "Demo Theme" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestValue_Name(t *testing.T) {
	got, err := Value("name", "  O'Brien & Sons (Theme), v2.0 ", KindName)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if got != "O'Brien  Sons Theme, v2.0" {
		t.Fatalf("unexpected name %q", got)
	}
	if _, err := Value("name", "@", KindName); !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
}

func TestValue_URL(t *testing.T) {
	got, err := Value("author_uri", "https://Example.COM/about?x=1", KindURL)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if got != "https://example.com/about?x=1" {
		t.Fatalf("unexpected canonical URL %q", got)
	}
	for _, bad := range []string{"example.com", "ftp://example.com", "javascript:alert(1)", "http://"} {
		if _, err := Value("author_uri", bad, KindURL); !errors.Is(err, ErrInvalidURL) {
			t.Fatalf("%q: expected ErrInvalidURL, got %v", bad, err)
		}
	}
}

func TestValue_Version(t *testing.T) {
	for _, ok := range []string{"1.0.0", "6.5", "1.2.3-rc.1"} {
		got, err := Value("version", ok, KindVersion)
		if err != nil || got != ok {
			t.Fatalf("%q: expected unchanged, got %q (%v)", ok, got, err)
		}
	}
	if _, err := Value("version", "v1", KindVersion); !errors.Is(err, ErrInvalidVersion) {
		t.Fatalf("expected ErrInvalidVersion, got %v", err)
	}
}

func TestValue_LicenseAllowList(t *testing.T) {
	got, err := Value("license", "GPL-2.0-or-later; rm -rf", KindLicense)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if got != "GPL-2.0-or-laterrm-rf" {
		t.Fatalf("unexpected license %q", got)
	}
}

func TestValue_TextStripsMarkup(t *testing.T) {
	got, err := Value("description", `A <img src=x onerror=alert(1)>theme for "cats" & dogs`, KindText)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if got != "A theme for cats & dogs" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestValue_UnknownKind(t *testing.T) {
	if _, err := Value("x", "value", Kind("color")); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestValues_RegistryDriven(t *testing.T) {
	reg := schema.Default()
	got, err := Values(reg, map[string]string{
		"slug":       "My Theme",
		"name":       "My Theme",
		"author":     "",
		"author_uri": "https://EXAMPLE.com",
		"unknown":    "../kept",
	})
	if err != nil {
		t.Fatalf("sanitize values: %v", err)
	}
	want := map[string]string{
		"slug":       "my-theme",
		"name":       "My Theme",
		"author":     "",
		"author_uri": "https://example.com",
		"unknown":    "../kept",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestValues_AbortsOnFirstRejection(t *testing.T) {
	_, err := Values(schema.Default(), map[string]string{"slug": "ok-slug", "name": "../../etc"})
	var sErr *Error
	if !errors.As(err, &sErr) || sErr.Field != "name" {
		t.Fatalf("expected name rejection, got %v", err)
	}
}

func TestKindFor_CoversEveryFieldType(t *testing.T) {
	for _, field := range schema.Default().Fields() {
		if _, err := KindFor(field.Type); err != nil {
			t.Fatalf("field %s: %v", field.Key, err)
		}
	}
}
