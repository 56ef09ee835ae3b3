// Package attributes parses the brace-delimited header of a fenced code
// block in the markdown dialect: #id, .class, and key=value tokens,
// e.g. {#plot .dash .wide app=plots/scatter.go}.
package attributes

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnterminatedQuote reports a quoted value with no closing quote.
var ErrUnterminatedQuote = errors.New("unterminated quote in attribute value")

// KV is one key=value pair.
type KV struct {
	Key   string
	Value string
}

// Set holds the parsed attributes of a single code block. It is built
// once per block and never mutated afterwards.
type Set struct {
	ID      string   // first #id token, "" if absent
	Classes []string // first-seen order, duplicates collapsed
	pairs   []KV     // insertion order
	byKey   map[string]int
}

// HasClass reports whether name appears in Classes.
func (s *Set) HasClass(name string) bool {
	for _, c := range s.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// Get returns the value for key and whether it was present. Later
// occurrences of a key overwrite earlier ones.
func (s *Set) Get(key string) (string, bool) {
	i, ok := s.byKey[key]
	if !ok {
		return "", false
	}
	return s.pairs[i].Value, true
}

// Pairs returns the key=value pairs in insertion order.
func (s *Set) Pairs() []KV {
	return s.pairs
}

// Parse splits raw into #id, .class, and key=value tokens. Bare words
// count as classes (the common `{python}` shorthand). Values may be
// double-quoted to contain spaces; \" and \\ escape inside quotes.
func Parse(raw string) (*Set, error) {
	s := &Set{byKey: make(map[string]int)}
	seen := make(map[string]bool)

	i := 0
	for i < len(raw) {
		if unicode.IsSpace(rune(raw[i])) {
			i++
			continue
		}
		tok, next, err := lexToken(raw, i)
		if err != nil {
			return nil, fmt.Errorf("attributes: %w (at offset %d in %q)", err, i, raw)
		}
		i = next

		switch {
		case strings.HasPrefix(tok, "#"):
			if s.ID == "" {
				s.ID = tok[1:]
			}
		case strings.HasPrefix(tok, "."):
			s.addClass(tok[1:], seen)
		case strings.Contains(tok, "="):
			k, v, _ := strings.Cut(tok, "=")
			s.put(k, unquote(v))
		default:
			s.addClass(tok, seen)
		}
	}
	return s, nil
}

func (s *Set) addClass(name string, seen map[string]bool) {
	if name == "" || seen[name] {
		return
	}
	seen[name] = true
	s.Classes = append(s.Classes, name)
}

func (s *Set) put(key, value string) {
	if i, ok := s.byKey[key]; ok {
		s.pairs[i].Value = value
		return
	}
	s.byKey[key] = len(s.pairs)
	s.pairs = append(s.pairs, KV{Key: key, Value: value})
}

// lexToken reads one whitespace-delimited token starting at i. Double
// quotes suspend the whitespace rule until the matching close quote.
func lexToken(raw string, i int) (string, int, error) {
	start := i
	inQuote := false
	for i < len(raw) {
		c := raw[i]
		switch {
		case inQuote && c == '\\' && i+1 < len(raw):
			i += 2
			continue
		case c == '"':
			inQuote = !inQuote
		case !inQuote && unicode.IsSpace(rune(c)):
			return raw[start:i], i, nil
		}
		i++
	}
	if inQuote {
		return "", i, ErrUnterminatedQuote
	}
	return raw[start:i], i, nil
}

// unquote strips surrounding double quotes from a value and resolves
// \" and \\ escapes. Unquoted values pass through verbatim.
func unquote(v string) string {
	if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
		return v
	}
	inner := v[1 : len(v)-1]
	if !strings.ContainsRune(inner, '\\') {
		return inner
	}
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) && (inner[i+1] == '"' || inner[i+1] == '\\') {
			i++
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}
