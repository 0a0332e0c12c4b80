package config

import (
	"strings"
	"unicode"
)

// Derivation computes one field from already resolved fields. It fires only
// when every input is non-empty and the target key is absent.
type Derivation struct {
	Target string
	Inputs []string
	Derive func(resolved Values) (string, bool)
}

// LicenseURIs maps known license identifiers to their canonical text.
var LicenseURIs = map[string]string{
	"GPL-2.0-or-later": "https://www.gnu.org/licenses/gpl-2.0.html",
	"GPL-3.0-or-later": "https://www.gnu.org/licenses/gpl-3.0.html",
	"MIT":              "https://opensource.org/licenses/MIT",
}

// DefaultDerivations returns the built-in derivations in dependency order.
// None of the targets feeds another derivation.
func DefaultDerivations() []Derivation {
	return []Derivation{
		{
			Target: "theme_uri",
			Inputs: []string{"slug"},
			Derive: func(v Values) (string, bool) {
				return "https://wordpress.org/themes/" + v["slug"], true
			},
		},
		{
			Target: "theme_repo_url",
			Inputs: []string{"slug", "author"},
			Derive: func(v Values) (string, bool) {
				handle := GitHubHandle(v["author"])
				if handle == "" {
					return "", false
				}
				return "https://github.com/" + handle + "/" + v["slug"], true
			},
		},
		{
			Target: "license_uri",
			Inputs: []string{"license"},
			Derive: func(v Values) (string, bool) {
				uri, ok := LicenseURIs[v["license"]]
				return uri, ok
			},
		},
	}
}

// GitHubHandle lowercases name and drops whitespace.
func GitHubHandle(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
