//go:build unit

package fluent

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilArgument_Message(t *testing.T) {
	t.Parallel()

	err := NilArgument("other", "OffsetTime")

	assert.Equal(t, "other", err.Parameter)
	assert.Equal(t, "The OffsetTime to compare actual with should not be nil", err.Error())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEmptyStringArgument_Message(t *testing.T) {
	t.Parallel()

	err := EmptyStringArgument("other", "OffsetTime")

	assert.Equal(t, "The String representing the OffsetTime to compare actual with should not be empty", err.Error())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestInvalidArgumentError_WithCause(t *testing.T) {
	t.Parallel()

	_, parseErr := strconv.Atoi("x")
	base := NewInvalidArgument("other", "cannot parse")
	err := base.WithCause(parseErr)

	require.NotSame(t, base, err)
	assert.Nil(t, base.Cause)
	assert.Equal(t, "cannot parse: "+parseErr.Error(), err.Error())
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	var target *InvalidArgumentError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "other", target.Parameter)
}

func TestInvalidArgumentError_NilReceiver(t *testing.T) {
	t.Parallel()

	var err *InvalidArgumentError

	assert.Equal(t, ErrInvalidArgument.Error(), err.Error())
	assert.Nil(t, err.WithCause(errors.New("x")))
	assert.Equal(t, []error{ErrInvalidArgument}, err.Unwrap())
}
