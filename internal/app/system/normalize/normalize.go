// internal/app/system/normalize/normalize.go
package normalize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips every HTML element and attribute from user-entered text.
// Form values rendered back into pages (project titles, task descriptions)
// all pass through here first.
var strict = bluemonday.StrictPolicy()

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Text trims free-form text and strips any markup.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// ID trims an identifier form value. IDs never carry markup, but they are
// spliced into redirect URLs, so they get the same strict treatment.
func ID(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
