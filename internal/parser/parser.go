// Package parser turns a spoken or typed transcript into a candidate task.
//
// Parsing is pure: the same text at the same instant always yields the same
// candidate, and no input makes it fail.
package parser

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"say-to-plan/internal/domain"
)

// Leading phrases that frame a request rather than describe the task.
var requestPhrases = [][]string{
	{"remind", "me", "to"},
	{"remember", "to"},
	{"don't", "forget", "to"},
	{"i", "need", "to"},
}

var fillerVerbs = map[string]bool{
	"add": true, "create": true, "new": true, "make": true,
	"do": true, "task": true, "reminder": true,
}

var articles = map[string]bool{"a": true, "an": true, "the": true}

// Func is the signature shared by Parser.Parse and test doubles.
type Func func(text string) domain.ParsedCandidate

// Parser parses transcripts against an injectable clock.
type Parser struct {
	now func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock sets the clock used to resolve relative dates.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// New creates a Parser using the local wall clock.
func New(opts ...Option) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses text relative to the parser's clock.
func (p *Parser) Parse(text string) domain.ParsedCandidate {
	return ParseAt(text, p.now())
}

// ParseAt parses text relative to now.
func ParseAt(text string, now time.Time) domain.ParsedCandidate {
	if strings.TrimSpace(text) == "" {
		return domain.ParsedCandidate{Description: text}
	}

	var due *time.Time
	rest := text
	for _, r := range recognizers {
		if m, ok := r.find(text, now); ok {
			d := m.due
			due = &d
			rest = text[:m.start] + text[m.end:]
			break
		}
	}

	desc := stripLeading(strings.Fields(rest))
	if desc == "" {
		desc = strings.TrimSpace(text)
	}

	return domain.ParsedCandidate{Description: capitalize(desc), DueDate: due}
}

// stripLeading drops one request phrase, then one filler verb, then one article.
func stripLeading(words []string) string {
	for _, phrase := range requestPhrases {
		if hasPrefixFold(words, phrase) {
			words = words[len(phrase):]
			break
		}
	}
	if len(words) > 0 && fillerVerbs[strings.ToLower(words[0])] {
		words = words[1:]
	}
	if len(words) > 0 && articles[strings.ToLower(words[0])] {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

func hasPrefixFold(words, prefix []string) bool {
	if len(words) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if !strings.EqualFold(normalizeApostrophe(words[i]), p) {
			return false
		}
	}
	return true
}

// Speech engines emit typographic apostrophes.
func normalizeApostrophe(s string) string {
	return strings.ReplaceAll(s, "’", "'")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
