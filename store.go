package optscan

import (
	orderedmap "github.com/wk8/go-ordered-map"
)

// occurrence is one raw value recorded for a key, tagged with its provenance.
type occurrence struct {
	raw    string
	origin Origin
}

// entry accumulates everything recorded for one key during a single parse.
// Entries iterate in first-seen order, which is the observable output order
// for array options.
type entry struct {
	def         *Definition
	occurrences []occurrence
	converted   []any
}

// forConversion returns the occurrences whose raw strings feed the
// conversion pass: all of them for array arity, only the winning (last)
// occurrence for single arity.
func (e *entry) forConversion() []occurrence {
	if e.def.Arity == Single && len(e.occurrences) > 1 {
		return e.occurrences[len(e.occurrences)-1:]
	}
	return e.occurrences
}

func (e *entry) origins() []Origin {
	out := make([]Origin, len(e.occurrences))
	for i, occ := range e.occurrences {
		out[i] = occ.origin
	}
	return out
}

// store is the accumulating mapping from option key to resolved raw
// value(s). It is exclusively owned by one resolution call.
type store struct {
	entries *orderedmap.OrderedMap // Key -> *entry, first-seen order
}

func newStore() *store {
	return &store{entries: orderedmap.New()}
}

func (s *store) entryFor(def *Definition) *entry {
	if v, found := s.entries.Get(def.Key); found {
		return v.(*entry)
	}
	e := &entry{def: def}
	s.entries.Set(def.Key, e)
	return e
}

// set overwrites the binding for a single-arity key. The losing occurrence's
// origin is kept so diagnostics can point at every token that fed the key.
func (s *store) set(def *Definition, raw string, origin Origin) {
	e := s.entryFor(def)
	e.occurrences = append(e.occurrences, occurrence{raw: raw, origin: origin})
}

// update appends to the sequence bound to an array-arity key.
func (s *store) update(def *Definition, raw string, origin Origin) {
	e := s.entryFor(def)
	e.occurrences = append(e.occurrences, occurrence{raw: raw, origin: origin})
}

// touch records an entry with no occurrences - an array option resolving to
// the empty sequence.
func (s *store) touch(def *Definition) {
	s.entryFor(def)
}

func (s *store) has(key string) bool {
	_, found := s.entries.Get(key)
	return found
}

// bind appends a converted typed value for key, in conversion order.
func (s *store) bind(key string, value any) {
	if v, found := s.entries.Get(key); found {
		e := v.(*entry)
		e.converted = append(e.converted, value)
	}
}

func (s *store) each(fn func(e *entry)) {
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Value.(*entry))
	}
}
