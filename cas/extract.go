package cas

import (
	"regexp"
	"strings"
	"sync"
)

// The CAS validation response is nominally XML, but servers differ on the
// namespace prefix and attribute set, and failure bodies are not always
// well-formed. Attributes are therefore pulled out by tag name directly:
// case-insensitive, prefix-optional, and missing tags simply yield nothing.

var (
	tagPatterns   = map[string]*regexp.Regexp{}
	tagPatternsMu sync.Mutex
)

// extractTag returns the text content of the first <tag> or <ns:tag> element
// in body, or false if the tag is absent.
func extractTag(body, tag string) (string, bool) {
	tagPatternsMu.Lock()
	re, ok := tagPatterns[tag]
	if !ok {
		quoted := regexp.QuoteMeta(tag)
		re = regexp.MustCompile(`(?is)<(?:[a-z0-9]+:)?` + quoted + `\s*>(.*?)</(?:[a-z0-9]+:)?` + quoted + `\s*>`)
		tagPatterns[tag] = re
	}
	tagPatternsMu.Unlock()

	m := re.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// firstTag returns the first present tag's content among candidates.
func firstTag(body string, tags ...string) (string, bool) {
	for _, tag := range tags {
		if v, ok := extractTag(body, tag); ok {
			return v, true
		}
	}
	return "", false
}

var roleSeparators = regexp.MustCompile(`[;,\s]+`)

// splitRoles splits a raw roles attribute on runs of semicolons, commas, or
// whitespace, dropping empty fragments.
func splitRoles(raw string) []string {
	parts := roleSeparators.Split(raw, -1)
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			roles = append(roles, p)
		}
	}
	if len(roles) == 0 {
		return nil
	}
	return roles
}
