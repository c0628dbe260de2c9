package optscan

import (
	"errors"
	"testing"

	"github.com/napalu/optscan/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Define(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	assert.NoError(t, reg.Define("outputFile", WithShortName("o"), WithStrategy(Next)))
	assert.Equal(t, 1, reg.Len())

	def, found := reg.Definition("outputFile")
	require.True(t, found)
	assert.Equal(t, []string{"output-file", "o"}, def.Names,
		"the long name is derived from the key in kebab case")
}

func TestRegistry_DuplicateKey(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	require.NoError(t, reg.Define("opt", WithStrategy(Next)))
	err = reg.Define("opt", WithName("other"), WithStrategy(Next))
	assert.True(t, errors.Is(err, errs.ErrDuplicateKey))
}

func TestRegistry_DuplicateName(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	require.NoError(t, reg.Define("first", WithName("shared"), WithStrategy(Next)))
	err = reg.Define("second", WithName("shared"), WithStrategy(Next))
	assert.True(t, errors.Is(err, errs.ErrDuplicateName))
}

func TestRegistry_EmptyKey(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	assert.True(t, errors.Is(reg.Define(""), errs.ErrEmptyKey))
	assert.True(t, errors.Is(reg.Add(nil), errs.ErrEmptyKey))
}

func TestRegistry_StrategyArityMismatch(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	err = reg.Define("files", WithArity(Array))
	assert.True(t, errors.Is(err, errs.ErrStrategyMismatch),
		"array definitions must declare an array strategy")

	err = reg.Define("opt", WithStrategy(Remaining))
	assert.True(t, errors.Is(err, errs.ErrStrategyMismatch),
		"remaining is an array strategy")
}

func TestRegistry_CatchAllValidation(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	err = reg.Define("sink", WithStrategy(Next), AsCatchAll())
	assert.True(t, errors.Is(err, errs.ErrCatchAllArity))

	require.NoError(t, reg.Define("extra",
		WithArity(Array), WithStrategy(SingleValue), AsCatchAll()))
	err = reg.Define("more",
		WithArity(Array), WithStrategy(SingleValue), AsCatchAll())
	assert.True(t, errors.Is(err, errs.ErrCatchAllConflict))
}

func TestRegistry_ArrayDefaultRejected(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	err = reg.Define("files",
		WithArity(Array), WithStrategy(SingleValue), WithDefaultValue("a"))
	assert.True(t, errors.Is(err, errs.ErrArrayDefault),
		"an array option's default is always the empty sequence")
}

func TestRegistry_PrefixedSpellingsMatch(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	require.NoError(t, reg.Define("verbose", WithName("--verbose"), WithStrategy(Standalone)))

	result, err := reg.Resolve([]string{"--verbose"})
	require.NoError(t, err)
	assert.True(t, result.Has("verbose"))
}

func TestRegistry_AddDoesNotRewriteNames(t *testing.T) {
	def, err := NewDefinition("verbose", WithName("--verbose"), WithStrategy(Standalone))
	require.NoError(t, err)

	reg, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, reg.Add(def))
	assert.Equal(t, []string{"--verbose"}, def.Names,
		"declared spellings survive registration")

	other, err := NewRegistry(WithDefinitions(def))
	require.NoError(t, err)

	for _, r := range []*Registry{reg, other} {
		result, err := r.Resolve([]string{"--verbose"})
		require.NoError(t, err)
		assert.True(t, result.Has("verbose"), "one definition serves multiple registries")
	}
}

func TestRegistry_CustomPrefixes(t *testing.T) {
	reg, err := NewRegistry(WithPrefixes('/'))
	require.NoError(t, err)
	require.NoError(t, reg.Define("opt", WithStrategy(Next)))

	result, err := reg.Resolve([]string{"/opt", "X", "-not-an-option"})
	require.NoError(t, err)

	value, err := result.String("opt")
	assert.NoError(t, err)
	assert.Equal(t, "X", value)
	require.Len(t, result.Unclaimed(), 1)
	assert.Equal(t, "-not-an-option", result.Unclaimed()[0].Value,
		"'-' is a plain value when it is not a declared prefix")
}

func TestRegistry_NoPrefixesRejected(t *testing.T) {
	_, err := NewRegistry(WithPrefixes())
	assert.True(t, errors.Is(err, errs.ErrNoPrefixes))
}

func TestRegistry_WithDefinitions(t *testing.T) {
	opt, err := NewDefinition("opt", WithStrategy(Next))
	require.NoError(t, err)
	verbose, err := NewDefinition("verbose", WithStrategy(Standalone))
	require.NoError(t, err)

	reg, err := NewRegistry(WithDefinitions(opt, verbose))
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_DefinitionsDeclarationOrder(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, reg.Define("charlie", WithStrategy(Next)))
	require.NoError(t, reg.Define("alpha", WithStrategy(Next)))
	require.NoError(t, reg.Define("bravo", WithStrategy(Next)))

	keys := make([]string, 0, 3)
	for _, def := range reg.Definitions() {
		keys = append(keys, def.Key)
	}
	assert.Equal(t, []string{"charlie", "alpha", "bravo"}, keys,
		"definitions iterate in declaration order")
}

func TestRegistry_ResolveString(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, reg.Define("name", WithStrategy(Next)))
	require.NoError(t, reg.Define("tags", WithArity(Array), WithStrategy(SingleValue)))

	result, err := reg.ResolveString(`--name "John Doe" --tags a --tags b`)
	require.NoError(t, err)

	name, err := result.String("name")
	assert.NoError(t, err)
	assert.Equal(t, "John Doe", name, "quoted words split like a shell")

	tags, err := result.Strings("tags")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tags)
}

func TestNewDefinition_ConfigurationError(t *testing.T) {
	_, err := NewDefinition("opt", WithName(""))
	assert.True(t, errors.Is(err, errs.ErrNoNames))

	_, err = NewDefinition("opt", WithBind(nil, nil))
	assert.True(t, errors.Is(err, errs.ErrBindNil))

	var unsupported struct{ x int }
	_, err = NewDefinition("opt", WithBind(&unsupported, nil))
	assert.True(t, errors.Is(err, errs.ErrUnsupportedConversion))
}

func TestDefinition_String(t *testing.T) {
	def, err := NewDefinition("files",
		WithArity(Array), WithStrategy(UpToNextOption), WithDescription("input files"))
	require.NoError(t, err)

	assert.Equal(t, "files [array, upToNextOption] input files", def.String())
}

func TestDefinition_HasDefault(t *testing.T) {
	def, err := NewDefinition("port", WithStrategy(Next), WithDefaultValue("8080"))
	require.NoError(t, err)
	assert.True(t, def.HasDefault())

	def, err = NewDefinition("host", WithStrategy(Next))
	require.NoError(t, err)
	assert.False(t, def.HasDefault())
}

func TestDeriveName(t *testing.T) {
	assert.Equal(t, "output-file", DeriveName("outputFile"))
	assert.Equal(t, "max-retries", DeriveName("MaxRetries"))
}
