// Package scan provides the token stream consumed by the resolution engine.
//
// Tokens are immutable strings; consumption state (claimed/unclaimed) is
// tracked on the State, never on the tokens themselves. Original token
// indices stay stable across claims so they can be recorded as provenance.
package scan

import "errors"

var (
	// ErrInvalidPosition occurs when a position outside the token list is accessed.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrTokenClaimed occurs when a token is claimed twice.
	ErrTokenClaimed = errors.New("token already claimed")
)

// Positional describes a token which was never claimed during resolution.
type Positional struct {
	Position int
	Value    string
}

// State is an indexed, mutable view over the raw argument tokens. The cursor
// advances over unclaimed tokens only; claims are permanent for the lifetime
// of the State. Claiming a token that is not at the cursor preserves the
// relative order of all other unclaimed tokens.
type State struct {
	pos     int
	args    []string
	claimed []bool
}

// NewState creates a State over args. The cursor starts before the first token.
func NewState(args []string) *State {
	return &State{
		pos:     -1,
		args:    args,
		claimed: make([]bool, len(args)),
	}
}

// Advance moves the cursor to the next unclaimed token, returning false when
// input is exhausted. Advancing does not claim the token under the cursor.
func (s *State) Advance() bool {
	for p := s.pos + 1; p < len(s.args); p++ {
		if !s.claimed[p] {
			s.pos = p
			return true
		}
	}
	s.pos = len(s.args)
	return false
}

// Pos returns the cursor position, in original token indices.
func (s *State) Pos() int {
	return s.pos
}

// CurrentArg returns the token under the cursor, or "" when the cursor is
// outside the token list.
func (s *State) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Peek returns the offset-th unclaimed token after the cursor without
// consuming it. Peek(0) is the token Consume would claim next.
func (s *State) Peek(offset int) (string, bool) {
	if pos, ok := s.unclaimedAfter(s.pos, offset); ok {
		return s.args[pos], true
	}
	return "", false
}

// Consume claims and returns the next unclaimed token after the cursor along
// with its original index.
func (s *State) Consume() (string, int, bool) {
	if pos, ok := s.unclaimedAfter(s.pos, 0); ok {
		s.claimed[pos] = true
		return s.args[pos], pos, true
	}
	return "", -1, false
}

// ConsumeIf claims the next unclaimed token after the cursor only when
// predicate accepts it. A rejected token is left untouched for subsequent
// matching.
func (s *State) ConsumeIf(predicate func(token string) bool) (string, int, bool) {
	if pos, ok := s.unclaimedAfter(s.pos, 0); ok && predicate(s.args[pos]) {
		s.claimed[pos] = true
		return s.args[pos], pos, true
	}
	return "", -1, false
}

// ClaimAt claims the token at pos regardless of the cursor position and
// returns it. Used for non-local removal by scanning strategies.
func (s *State) ClaimAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}
	if s.claimed[pos] {
		return "", ErrTokenClaimed
	}
	s.claimed[pos] = true
	return s.args[pos], nil
}

// TokenAt returns the token at pos whether or not it has been claimed.
func (s *State) TokenAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}
	return s.args[pos], nil
}

// IsClaimed reports whether the token at pos has been claimed.
func (s *State) IsClaimed(pos int) bool {
	return pos >= 0 && pos < len(s.args) && s.claimed[pos]
}

// NextUnclaimed returns the position of the first unclaimed token strictly
// after pos.
func (s *State) NextUnclaimed(after int) (int, bool) {
	return s.unclaimedAfter(after, 0)
}

// Len returns the total number of tokens, claimed or not.
func (s *State) Len() int {
	return len(s.args)
}

// Unclaimed returns every token which was never claimed, in original order.
func (s *State) Unclaimed() []Positional {
	var out []Positional
	for p, tok := range s.args {
		if !s.claimed[p] {
			out = append(out, Positional{Position: p, Value: tok})
		}
	}
	return out
}

func (s *State) unclaimedAfter(after, offset int) (int, bool) {
	for p := after + 1; p < len(s.args); p++ {
		if s.claimed[p] {
			continue
		}
		if offset == 0 {
			return p, true
		}
		offset--
	}
	return -1, false
}
