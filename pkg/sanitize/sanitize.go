package sanitize

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/goliatone/go-themegen/pkg/schema"
)

// Kind selects the sanitization rules applied to a value.
type Kind string

const (
	KindText    Kind = "text"
	KindSlug    Kind = "slug"
	KindName    Kind = "name"
	KindURL     Kind = "url"
	KindVersion Kind = "version"
	KindLicense Kind = "license"
)

var (
	controlChars      = regexp.MustCompile(`[\x00-\x1F\x7F]`)
	slugDisallowed    = regexp.MustCompile(`[^a-z0-9-]`)
	repeatedHyphens   = regexp.MustCompile(`-+`)
	nameDisallowed    = regexp.MustCompile(`[^a-zA-Z0-9 \-_.,']`)
	licenseDisallowed = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	textDisallowed    = regexp.MustCompile("[<>\"'`]")
	versionPattern    = regexp.MustCompile(`^\d+\.\d+(\.\d+)?(-[a-zA-Z0-9.-]+)?$`)
)

// KindFor maps a field type onto its sanitization kind.
func KindFor(t schema.FieldType) (Kind, error) {
	switch t {
	case schema.FieldTypeString:
		return KindText, nil
	case schema.FieldTypeSlug:
		return KindSlug, nil
	case schema.FieldTypeName:
		return KindName, nil
	case schema.FieldTypeURL:
		return KindURL, nil
	case schema.FieldTypeSemver, schema.FieldTypeVersion:
		return KindVersion, nil
	case schema.FieldTypeLicense:
		return KindLicense, nil
	default:
		return "", fmt.Errorf("%w: field type %q", ErrUnknownKind, t)
	}
}

// Value cleans input for field according to kind. The returned error is
// always an *Error.
func Value(field, input string, kind Kind) (string, error) {
	fail := func(err error, detail string) (string, error) {
		return "", &Error{Field: field, Input: input, Kind: kind, Detail: detail, Err: err}
	}

	cleaned := controlChars.ReplaceAllString(input, "")
	if traversal(cleaned, kind) {
		return fail(ErrPathTraversal, "")
	}

	switch kind {
	case KindSlug:
		cleaned = strings.ToLower(cleaned)
		cleaned = slugDisallowed.ReplaceAllString(cleaned, "-")
		cleaned = repeatedHyphens.ReplaceAllString(cleaned, "-")
		cleaned = strings.Trim(cleaned, "-")
		if len(cleaned) < 2 {
			return fail(ErrTooShort, "slugs contain only letters, numbers, and hyphens")
		}
	case KindName:
		cleaned = strings.TrimSpace(nameDisallowed.ReplaceAllString(cleaned, ""))
		if len(cleaned) < 2 {
			return fail(ErrTooShort, "")
		}
	case KindURL:
		canonical, err := canonicalURL(cleaned)
		if err != nil {
			return fail(ErrInvalidURL, err.Error())
		}
		cleaned = canonical
	case KindVersion:
		if !versionPattern.MatchString(cleaned) {
			return fail(ErrInvalidVersion, "")
		}
	case KindLicense:
		cleaned = licenseDisallowed.ReplaceAllString(cleaned, "")
	case KindText:
		cleaned = stripMarkup(cleaned)
		cleaned = strings.TrimSpace(textDisallowed.ReplaceAllString(cleaned, ""))
	default:
		return fail(ErrUnknownKind, string(kind))
	}

	return cleaned, nil
}

// traversal reports whether value looks like a path traversal attempt. URLs
// keep their structural slashes but may not carry ".." or backslashes; a URL
// substituted into an entry name is refused by walker.ErrUnsafeName.
func traversal(value string, kind Kind) bool {
	if strings.Contains(value, "..") || strings.Contains(value, `\`) {
		return true
	}
	if kind == KindURL {
		return false
	}
	return strings.Contains(value, "/")
}

func canonicalURL(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return "", fmt.Errorf("%q is not an absolute URL", raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("URL must use http or https protocol")
	}
	parsed.Host = strings.ToLower(parsed.Host)
	return parsed.String(), nil
}

// Values sanitizes every non-empty value declared by reg, in registry order,
// and returns a new map. Empty values are kept as explicit empty strings and
// keys the registry does not declare pass through untouched; they never reach
// substitution because assembly drops them. The first rejection aborts.
func Values(reg *schema.Registry, raw map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		out[key] = value
	}

	for _, field := range reg.Fields() {
		value, ok := raw[field.Key]
		if !ok || value == "" {
			continue
		}
		kind, err := KindFor(field.Type)
		if err != nil {
			return nil, &Error{Field: field.Key, Input: value, Err: err}
		}
		cleaned, err := Value(field.Key, value, kind)
		if err != nil {
			return nil, err
		}
		out[field.Key] = cleaned
	}
	return out, nil
}
