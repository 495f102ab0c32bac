package application

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Keyword tokens that imply a category tag on top of the token itself.
var tagCategories = map[string]string{
	"nda":       "legal",
	"agreement": "legal",
	"contract":  "legal",
	"policy":    "legal",
	"invoice":   "finance",
	"receipt":   "finance",
	"budget":    "finance",
	"financial": "finance",
	"proposal":  "sales",
	"quote":     "sales",
	"report":    "analytics",
	"minutes":   "meetings",
}

// AutoTags derives tags from an uploaded file name: lowercased name
// tokens, their mapped category tags, and the file extension,
// deduplicated in first-seen order. Tokens shorter than two runes are
// dropped as noise.
func AutoTags(filename string) []string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	tokens := strings.FieldsFunc(strings.ToLower(base), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(tokens)+2)
	tags := make([]string, 0, len(tokens)+2)
	add := func(tag string) {
		if tag == "" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for _, token := range tokens {
		if len(token) < 2 {
			continue
		}
		add(token)
		if category, ok := tagCategories[token]; ok {
			add(category)
		}
	}
	add(ext)
	return tags
}
