package optscan

import (
	"strings"
	"unicode/utf8"
)

type matchKind int

const (
	// matchedValue is a plain value token - no declared prefix shape.
	matchedValue matchKind = iota
	// matchedDefinition is an exact match of a declared name spelling.
	matchedDefinition
	// matchedUnknownOption looks like an option but no declared option owns it.
	matchedUnknownOption
)

// nameMatch is the classification of one token against the registry.
type nameMatch struct {
	kind      matchKind
	def       *Definition
	inline    string // value carried in name=value form
	hasInline bool
}

// isOptionLike reports whether token has the shape of an option name: it
// begins with a declared prefix rune followed by at least one more character.
// A lone prefix rune (e.g. "-" for stdin) stays a plain value.
func (r *Registry) isOptionLike(token string) bool {
	first, size := utf8.DecodeRuneInString(token)
	if size == 0 || len(token) == size {
		return false
	}
	for _, p := range r.prefixes {
		if first == p {
			return true
		}
	}
	return false
}

// matchName classifies token. Matching is exact string equality of the
// prefix-stripped spelling against declared names; a name=value form is
// split on the first '=' and the remainder returned as an already-available
// inline value which bypasses the strategy scan.
func (r *Registry) matchName(token string) nameMatch {
	if !r.isOptionLike(token) {
		return nameMatch{kind: matchedValue}
	}

	m := nameMatch{kind: matchedUnknownOption}
	name := trimPrefixRunes(token, r.prefixes)
	if eq := strings.IndexByte(name, '='); eq >= 0 {
		m.inline = name[eq+1:]
		m.hasInline = true
		name = name[:eq]
	}
	if key, found := r.lookup[name]; found {
		if def, ok := r.Definition(key); ok {
			m.kind = matchedDefinition
			m.def = def
		}
	}

	return m
}
