package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingValueError(t *testing.T) {
	err := &MissingValueError{Names: []string{"output", "o"}, ExpectedAt: 3}

	assert.True(t, errors.Is(err, ErrMissingValue))
	assert.Equal(t, "option 'output'/'o' expects a value at position 3 but none was found", err.Error())
}

func TestMissingValueError_NoNames(t *testing.T) {
	err := &MissingValueError{ExpectedAt: 0}
	assert.Contains(t, err.Error(), "(unnamed)")
}

func TestUnrecognizedOptionError(t *testing.T) {
	err := &UnrecognizedOptionError{Token: "--wat", Position: 2}

	assert.True(t, errors.Is(err, ErrUnrecognizedOption))
	assert.Equal(t, "unrecognized option '--wat' at position 2", err.Error())
}

func TestInvalidValueError(t *testing.T) {
	underlying := errors.New("boom")
	err := &InvalidValueError{Key: "port", Raw: "http", Position: 1, Err: underlying}

	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.True(t, errors.Is(err, underlying), "the underlying reason stays reachable")
	assert.Equal(t, "invalid value 'http' for 'port': boom", err.Error())
}

func TestAmbiguousConsumptionError(t *testing.T) {
	err := &AmbiguousConsumptionError{Token: "X", Position: 4, Claimants: []string{"a", "b"}}

	assert.True(t, errors.Is(err, ErrAmbiguousConsumption))
	assert.Equal(t, "token 'X' at position 4 is claimed by a and b", err.Error())
}

func TestList_Accumulates(t *testing.T) {
	list := &List{}
	assert.Equal(t, 0, list.Len())

	list.Append(nil)
	assert.Equal(t, 0, list.Len(), "nil errors are ignored")

	list.Append(&MissingValueError{Names: []string{"opt"}, ExpectedAt: 1})
	list.Append(&UnrecognizedOptionError{Token: "--wat", Position: 2})
	require.Equal(t, 2, list.Len())

	assert.True(t, errors.Is(list, ErrMissingValue))
	assert.True(t, errors.Is(list, ErrUnrecognizedOption))
	assert.False(t, errors.Is(list, ErrInvalidValue))

	var missing *MissingValueError
	assert.True(t, errors.As(list, &missing))
	assert.Equal(t, []string{"opt"}, missing.Names)
}

func TestList_ErrorJoinsInOrder(t *testing.T) {
	list := &List{}
	list.Append(errors.New("first"))
	list.Append(errors.New("second"))

	assert.Equal(t, "first\nsecond", list.Error())
	require.Len(t, list.All(), 2)
	assert.Equal(t, "first", list.All()[0].Error())
}
