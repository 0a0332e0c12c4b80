package schema

// Stage numbers used by the built-in theme registry.
const (
	StageIdentity = 1
	StageVersion  = 2
	StageLicense  = 3
)

// SlugPattern constrains theme slugs: a lowercase letter, then letters, digits
// or hyphens, ending on a letter or digit, 3 to 50 characters overall.
const SlugPattern = `^[a-z][a-z0-9-]{1,48}[a-z0-9]$`

// Licenses accepted by the built-in license field.
var Licenses = []string{"GPL-2.0-or-later", "GPL-3.0-or-later", "MIT"}

// Default returns a freshly constructed registry describing the block theme
// scaffold. Each call returns an independent value.
func Default() *Registry {
	return MustNew(DefaultStages(), DefaultFields())
}

// DefaultStages returns the titles of the built-in stages.
func DefaultStages() []Stage {
	return []Stage{
		{Number: StageIdentity, Title: "Theme Identity"},
		{Number: StageVersion, Title: "Version & Compatibility"},
		{Number: StageLicense, Title: "License & Repository"},
	}
}

// DefaultFields returns the built-in block theme fields in prompt order.
func DefaultFields() []Field {
	return []Field{
		{
			Key:         "slug",
			Stage:       StageIdentity,
			Required:    true,
			Type:        FieldTypeSlug,
			Pattern:     SlugPattern,
			Description: "Theme slug (lowercase, hyphens only)",
			Example:     "my-theme",
		},
		{
			Key:         "name",
			Stage:       StageIdentity,
			Required:    true,
			Type:        FieldTypeName,
			MinLength:   2,
			MaxLength:   100,
			Description: "Theme display name",
			Example:     "My Theme",
		},
		{
			Key:         "description",
			Stage:       StageIdentity,
			Type:        FieldTypeString,
			MaxLength:   500,
			Description: "Theme description",
			Example:     "A WordPress block theme.",
			Default:     StringPtr("A WordPress block theme."),
		},
		{
			Key:         "author",
			Stage:       StageIdentity,
			Type:        FieldTypeName,
			MaxLength:   100,
			Description: "Author name",
			Example:     "Your Name",
			Default:     StringPtr("Author Name"),
		},
		{
			Key:         "author_uri",
			Stage:       StageIdentity,
			Type:        FieldTypeURL,
			Description: "Author website URL",
			Example:     "https://example.com",
			Default:     StringPtr("https://example.com"),
		},
		{
			Key:         "version",
			Stage:       StageVersion,
			Type:        FieldTypeSemver,
			Description: "Initial version number",
			Example:     "1.0.0",
			Default:     StringPtr("1.0.0"),
		},
		{
			Key:         "min_wp_version",
			Stage:       StageVersion,
			Type:        FieldTypeVersion,
			Description: "Minimum WordPress version",
			Example:     "6.0",
			Default:     StringPtr("6.0"),
		},
		{
			Key:         "tested_wp_version",
			Stage:       StageVersion,
			Type:        FieldTypeVersion,
			Description: "Tested up to WordPress version",
			Example:     "6.7",
			Default:     StringPtr("6.7"),
		},
		{
			Key:         "min_php_version",
			Stage:       StageVersion,
			Type:        FieldTypeVersion,
			Description: "Minimum PHP version",
			Example:     "8.0",
			Default:     StringPtr("8.0"),
		},
		{
			Key:         "license",
			Stage:       StageLicense,
			Type:        FieldTypeLicense,
			Enum:        append([]string(nil), Licenses...),
			Description: "License identifier",
			Example:     "GPL-2.0-or-later",
			Default:     StringPtr("GPL-2.0-or-later"),
		},
		{
			Key:         "license_uri",
			Stage:       StageLicense,
			Type:        FieldTypeURL,
			Description: "License text URL",
			Example:     "https://www.gnu.org/licenses/gpl-2.0.html",
		},
		{
			Key:         "theme_uri",
			Stage:       StageLicense,
			Type:        FieldTypeURL,
			Description: "Theme homepage URL",
			Example:     "https://wordpress.org/themes/my-theme",
		},
		{
			Key:         "theme_repo_url",
			Stage:       StageLicense,
			Type:        FieldTypeURL,
			Description: "Theme repository URL",
			Example:     "https://github.com/your-name/my-theme",
		},
	}
}
