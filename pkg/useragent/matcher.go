package useragent

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// versionPattern matches the major and minor version numbers only,
// so "2.0.0.6" is read as "2.0".
const versionPattern = `[/ ]+(\d+(?:\.\d+)?)`

// excludedPrefix rejects compatibility noise such as "like Gecko" or
// "like Mac OS X" naming a token the client does not actually use.
const excludedPrefix = "like "

// alternation joins the patterns of an entry into one case-insensitive
// expression. The whole alternation is group 1, so a capture inside a pattern
// is always group 2.
func alternation(patterns []string) string {
	return "(?i)(" + strings.Join(patterns, "|") + ")"
}

// phraseMatcher finds a "name/version" or "name version" phrase.
type phraseMatcher struct {
	label string
	re    *regexp.Regexp
}

// tokenMatcher finds a bare token that is not preceded by "like ".
type tokenMatcher struct {
	label string
	re    *regexp.Regexp
}

func compilePhrases(tables ...Table) ([]phraseMatcher, error) {
	var matchers []phraseMatcher
	for _, table := range tables {
		for _, e := range table {
			re, err := regexp.Compile(alternation(e.Patterns) + versionPattern)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrInvalidDefinition, e.Label, err)
			}
			matchers = append(matchers, phraseMatcher{label: e.Label, re: re})
		}
	}
	return matchers, nil
}

func compileTokens(table Table) ([]tokenMatcher, error) {
	matchers := make([]tokenMatcher, 0, len(table))
	for _, e := range table {
		re, err := regexp.Compile(alternation(e.Patterns))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidDefinition, e.Label, err)
		}
		matchers = append(matchers, tokenMatcher{label: e.Label, re: re})
	}
	return matchers, nil
}

// match returns the label and version of the first phrase found in ua.
func (m phraseMatcher) match(ua string) (name, version string, ok bool) {
	loc := m.re.FindStringSubmatchIndex(ua)
	if loc == nil {
		return "", "", false
	}

	groups := len(loc) / 2
	version = ua[loc[2*(groups-1)]:loc[2*(groups-1)+1]]

	name = m.label
	if groups > 3 {
		name = substitute(name, ua, loc, strings.ToLower)
	}
	return name, version, true
}

// match returns the label of the matcher if one of its tokens appears in ua
// outside a "like " prefix. The search restarts right after every rejected
// position, which mirrors a negative lookbehind.
func (m tokenMatcher) match(ua string, transform func(string) string) (string, bool) {
	for offset := 0; offset <= len(ua); {
		loc := m.re.FindStringSubmatchIndex(ua[offset:])
		if loc == nil {
			return "", false
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += offset
			}
		}

		start := loc[0]
		if !precededBy(ua, start, excludedPrefix) {
			name := m.label
			if transform != nil && len(loc) > 4 {
				name = substitute(name, ua, loc, transform)
			}
			return name, true
		}

		_, width := utf8.DecodeRuneInString(ua[start:])
		if width == 0 {
			width = 1
		}
		offset = start + width
	}
	return "", false
}

func firstToken(matchers []tokenMatcher, ua string, transform func(string) string) string {
	for _, m := range matchers {
		if name, ok := m.match(ua, transform); ok {
			return name
		}
	}
	return ""
}

// substitute replaces the placeholder of label with capture group 2.
// Labels without a placeholder, or matches where the group did not take
// part, are returned unchanged.
func substitute(label, ua string, loc []int, transform func(string) string) string {
	if !strings.Contains(label, placeholder) || loc[4] < 0 {
		return label
	}
	return strings.Replace(label, placeholder, transform(ua[loc[4]:loc[5]]), 1)
}

func precededBy(s string, pos int, prefix string) bool {
	if pos < len(prefix) {
		return false
	}
	return strings.EqualFold(s[pos-len(prefix):pos], prefix)
}
