package optscan

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// Definition is an immutable descriptor of one declared option. Build one
// with NewDefinition and register it with Registry.Add; definitions must not
// be mutated after registration.
type Definition struct {
	// Key is the unique stable identifier the resolved value is stored under.
	Key string
	// Names holds the accepted spellings, long form first. Prefix runes are
	// tolerated and stripped when matching. When empty, a long name is
	// derived from Key in kebab case.
	Names []string
	// Short is an optional short spelling, accepted in addition to Names.
	Short string
	// Arity selects between a single bound value and an ordered sequence.
	Arity Arity
	// Strategy governs which tokens are claimed as the option's value(s).
	Strategy Strategy
	// Default produces a raw value when the option is absent. Nil means no
	// default; array options fall back to the empty sequence.
	Default DefaultFunc
	// Convert turns each claimed raw token into a typed value. Nil keeps the
	// raw string.
	Convert ConvertFunc
	// Update, when set, additionally stores each raw token into caller-owned
	// state (see WithBind).
	Update UpdateFunc
	// CatchAll absorbs option-like tokens no declared option owns instead of
	// letting them fail resolution. Requires array arity.
	CatchAll bool
	// Description is read by the help layer; the engine ignores it.
	Description string
}

// NewDefinition builds a Definition for key using option functions:
//
//	def, err := optscan.NewDefinition("outputFile",
//	    optscan.WithShortName("o"),
//	    optscan.WithStrategy(optscan.Next),
//	    optscan.WithConverter(optscan.AsString()),
//	)
//
// When no name is configured the long name is derived from the key, so the
// definition above answers to --output-file and -o.
func NewDefinition(key string, configs ...ConfigureDefinitionFunc) (*Definition, error) {
	def := &Definition{Key: key}
	var err error
	for _, config := range configs {
		config(def, &err)
		if err != nil {
			return nil, err
		}
	}
	def.ensureNames()

	return def, nil
}

// HasDefault reports whether a default provider is declared. Read by the
// help layer when rendering usage.
func (d *Definition) HasDefault() bool {
	return d.Default != nil
}

// String returns a short human-readable description of the definition
func (d *Definition) String() string {
	return strings.TrimRight(fmt.Sprintf("%s [%s, %s] %s",
		strings.Join(d.Names, "/"), d.Arity, d.Strategy, d.Description), " ")
}

func (d *Definition) ensureNames() {
	if len(d.Names) == 0 && d.Key != "" {
		d.Names = []string{strcase.ToKebab(d.Key)}
	}
	if d.Short == "" {
		return
	}
	for _, name := range d.Names {
		if name == d.Short {
			return
		}
	}
	d.Names = append(d.Names, d.Short)
}
