// Package placeholder turns a finished configuration into the frozen token
// table the template walker substitutes. Tokens use the reserved {{name}}
// syntax; replacement is a single left-to-right scan, so a substituted value
// is never scanned again for other tokens.
package placeholder

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/goliatone/go-themegen/pkg/config"
)

// Token wraps name in the reserved delimiters.
func Token(name string) string {
	return "{{" + name + "}}"
}

var tokenPattern = regexp.MustCompile(`\{\{[a-z][a-z0-9_]*\}\}`)

// fieldTokens renames configuration keys whose token differs from the key.
var fieldTokens = map[string]string{
	"slug": "theme_slug",
	"name": "theme_name",
}

// Map is an immutable token to value table.
type Map struct {
	entries  map[string]string
	tokens   []string
	replacer *strings.Replacer
}

// Build derives the full token table from cfg. Every configuration field maps
// to one token; presentation tokens (namespace, support and contact
// addresses, documentation links) are computed here, once.
func Build(cfg config.Config) Map {
	entries := make(map[string]string, cfg.Len()+10)
	for _, key := range cfg.Keys() {
		name := key
		if renamed, ok := fieldTokens[key]; ok {
			name = renamed
		}
		entries[Token(name)] = cfg.Value(key)
	}

	slug := cfg.Value("slug")
	authorURI := cfg.Value("author_uri")
	host := EmailHost(authorURI)
	repo := "https://github.com/" + config.GitHubHandle(cfg.Value("author")) + "/" + slug

	derived := map[string]string{
		"namespace":           strings.ReplaceAll(slug, "-", "_"),
		"support_url":         "https://wordpress.org/support/theme/" + slug,
		"docs_url":            repo + "/wiki",
		"docs_repo_url":       repo,
		"discord_url":         authorURI,
		"custom_dev_url":      authorURI,
		"premium_support_url": authorURI,
	}
	// Without a host there is no usable address; the tokens stay unresolved.
	if host != "" {
		derived["support_email"] = "support@" + host
		derived["security_email"] = "security@" + host
		derived["business_email"] = "contact@" + host
	}
	for name, value := range derived {
		if _, exists := entries[Token(name)]; exists {
			continue
		}
		entries[Token(name)] = value
	}

	return newMap(entries)
}

// FromEntries builds a Map from an explicit token table. Keys must already
// be delimited tokens.
func FromEntries(entries map[string]string) Map {
	cloned := make(map[string]string, len(entries))
	for token, value := range entries {
		cloned[token] = value
	}
	return newMap(cloned)
}

func newMap(entries map[string]string) Map {
	tokens := make([]string, 0, len(entries))
	for token := range entries {
		tokens = append(tokens, token)
	}
	// Longer tokens first so the replacer prefers them when two tokens share a
	// prefix at the same position.
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})

	pairs := make([]string, 0, len(tokens)*2)
	for _, token := range tokens {
		pairs = append(pairs, token, entries[token])
	}

	return Map{
		entries:  entries,
		tokens:   tokens,
		replacer: strings.NewReplacer(pairs...),
	}
}

// Apply substitutes every known token in s in one pass.
func (m Map) Apply(s string) string {
	if m.replacer == nil {
		return s
	}
	return m.replacer.Replace(s)
}

// Lookup returns the value for a delimited token.
func (m Map) Lookup(token string) (string, bool) {
	value, ok := m.entries[token]
	return value, ok
}

// Tokens returns the known tokens, longest first.
func (m Map) Tokens() []string {
	return append([]string(nil), m.tokens...)
}

// Entries returns a copy of the token table.
func (m Map) Entries() map[string]string {
	out := make(map[string]string, len(m.entries))
	for token, value := range m.entries {
		out[token] = value
	}
	return out
}

// Unresolved lists the token-shaped markers left in s, sorted and unique.
func Unresolved(s string) []string {
	found := tokenPattern.FindAllString(s, -1)
	if len(found) == 0 {
		return nil
	}
	sort.Strings(found)
	out := found[:0]
	for i, token := range found {
		if i > 0 && token == found[i-1] {
			continue
		}
		out = append(out, token)
	}
	return out
}

// EmailHost returns the host of rawURL without a leading "www.", suitable for
// building contact addresses. Unparseable input yields an empty string.
func EmailHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
