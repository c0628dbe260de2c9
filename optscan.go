// Copyright 2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package optscan resolves a flat stream of command-line tokens against a set
// of declared option definitions.
//
// Resolution is split into two phases. A registration phase builds immutable
// Definition descriptors and collects them in a Registry; a resolution phase
// walks the token stream once, decides per declared strategy which tokens
// satisfy which option, converts the claimed raw strings and returns a Result
// - or the full ordered list of everything that went wrong. A Result is only
// constructible by a successful resolution, so bound values can never be read
// from a failed or unfinished parse.
//
// Seven parsing strategies cover the value-consumption rules:
//
//	Standalone               - no value, presence records "true"
//	Next                     - the following token, unconditionally
//	Unconditional            - like Next, declared for option-like values such as negative numbers
//	ScanningForValue         - the first plain value found by forward scan
//	SingleValue              - array: the next plain value, per occurrence
//	UnconditionalSingleValue - array: the following token, per occurrence
//	UpToNextOption           - array: every token up to the next option-like token
//	Remaining                - array: everything left, verbatim
//
// A Registry is read-only once configured and may be shared across
// concurrent Resolve calls; all per-parse state lives inside the call.
package optscan

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/optscan/errs"
	"github.com/napalu/optscan/scan"
	orderedmap "github.com/wk8/go-ordered-map"
)

// Registry holds the declared option definitions for one resolution surface.
// Definitions iterate in declaration order, which is also the documented
// tie-break order wherever resolution has to choose between options.
type Registry struct {
	prefixes []rune
	defs     *orderedmap.OrderedMap // Key -> *Definition, declaration order
	lookup   map[string]string      // name spelling -> Key
	catchAll string                 // Key of the catch-all definition, "" when none
}

// NewRegistry creates a Registry, optionally applying configuration
// functions:
//
//	reg, err := optscan.NewRegistry(optscan.WithPrefixes('-', '/'))
func NewRegistry(configs ...ConfigureRegistryFunc) (*Registry, error) {
	reg := &Registry{
		prefixes: []rune{'-'},
		defs:     orderedmap.New(),
		lookup:   map[string]string{},
	}

	var err error
	for _, config := range configs {
		config(reg, &err)
		if err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// Add registers def. It validates what the resolution engine later trusts:
// a non-empty unique key, at least one name, no name owned by two options,
// a strategy matching the declared arity and sane catch-all/default
// combinations.
func (r *Registry) Add(def *Definition) error {
	if def == nil || def.Key == "" {
		return errs.ErrEmptyKey
	}
	if _, found := r.defs.Get(def.Key); found {
		return fmt.Errorf("%w: '%s'", errs.ErrDuplicateKey, def.Key)
	}
	if !def.Strategy.appliesTo(def.Arity) {
		return fmt.Errorf("%w: %s is %s arity but strategy is %s",
			errs.ErrStrategyMismatch, def.Key, def.Arity, def.Strategy)
	}
	if def.CatchAll {
		if def.Arity != Array {
			return fmt.Errorf("%w: '%s'", errs.ErrCatchAllArity, def.Key)
		}
		if r.catchAll != "" {
			return fmt.Errorf("%w: '%s'", errs.ErrCatchAllConflict, r.catchAll)
		}
	}
	if def.Arity == Array && def.Default != nil {
		return fmt.Errorf("%w: '%s'", errs.ErrArrayDefault, def.Key)
	}

	def.ensureNames()
	if len(def.Names) == 0 {
		return fmt.Errorf("%w: '%s'", errs.ErrNoNames, def.Key)
	}
	// the lookup index holds prefix-stripped spellings; the definition keeps
	// its declared ones so it can be registered with other registries
	bare := make([]string, len(def.Names))
	for i, name := range def.Names {
		stripped := trimPrefixRunes(name, r.prefixes)
		if stripped == "" {
			return fmt.Errorf("%w: '%s'", errs.ErrNoNames, def.Key)
		}
		if owner, taken := r.lookup[stripped]; taken {
			return fmt.Errorf("%w: '%s' already spells '%s'", errs.ErrDuplicateName, stripped, owner)
		}
		bare[i] = stripped
	}

	for _, name := range bare {
		r.lookup[name] = def.Key
	}
	if def.CatchAll {
		r.catchAll = def.Key
	}
	r.defs.Set(def.Key, def)

	return nil
}

// Define builds a Definition from key and configs and registers it in one
// step.
func (r *Registry) Define(key string, configs ...ConfigureDefinitionFunc) error {
	def, err := NewDefinition(key, configs...)
	if err != nil {
		return err
	}

	return r.Add(def)
}

// Definition returns the registered definition for key.
func (r *Registry) Definition(key string) (*Definition, bool) {
	if v, found := r.defs.Get(key); found {
		return v.(*Definition), true
	}
	return nil, false
}

// Definitions returns all registered definitions in declaration order. Read
// by the help layer for rendering usage.
func (r *Registry) Definitions() []*Definition {
	out := make([]*Definition, 0, r.defs.Len())
	for pair := r.defs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.(*Definition))
	}
	return out
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return r.defs.Len()
}

// Resolve processes args - the process argument list excluding the program
// name - against the registered definitions. On success it returns the
// Result holding every bound value; otherwise it returns a nil Result and an
// *errs.List with every error detected in the pass, never a partial mapping.
func (r *Registry) Resolve(args []string) (*Result, error) {
	c := r.newResolution(args)
	c.scanTokens()
	c.applyDefaults()
	c.convertAll()
	if c.errs.Len() == 0 {
		c.applyUpdates()
	}
	if c.errs.Len() > 0 {
		return nil, c.errs
	}

	return c.result(), nil
}

// ResolveString tokenizes argString with shell word-splitting rules and
// resolves the resulting tokens.
func (r *Registry) ResolveString(argString string) (*Result, error) {
	args, err := scan.Split(argString)
	if err != nil {
		return nil, err
	}

	return r.Resolve(args)
}

// DeriveName converts a field or key name to its default long option name,
// e.g. "outputFile" to "output-file".
func DeriveName(key string) string {
	return strcase.ToKebab(key)
}

func trimPrefixRunes(name string, prefixes []rune) string {
	return strings.TrimLeftFunc(name, func(c rune) bool {
		for _, p := range prefixes {
			if c == p {
				return true
			}
		}
		return false
	})
}
