//go:build unit

package temporal

import (
	"cmp"
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-fluent/fluent"
	fluentassert "github.com/LerianStudio/lib-fluent/fluent/assert"
	"github.com/LerianStudio/lib-fluent/fluent/diag"
	"github.com/LerianStudio/lib-fluent/fluent/log"
)

type tick struct {
	n int
}

func (t *tick) Compare(other *tick) int {
	return cmp.Compare(t.n, other.n)
}

func (t *tick) String() string {
	return "tick " + strconv.Itoa(t.n)
}

type recordingLogger struct {
	levels []log.Level
	msgs   []string
}

func (l *recordingLogger) Log(_ context.Context, level log.Level, msg string, _ ...log.Field) {
	l.levels = append(l.levels, level)
	l.msgs = append(l.msgs, msg)
}

func newTickAssert(n *tick) *Assert[*tick] {
	return New(n, "Tick", nil)
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	one, two := &tick{n: 1}, &tick{n: 2}

	tests := []struct {
		name   string
		run    func(a *Assert[*tick], other *tick) error
		actual *tick
		other  *tick
		passes bool
		code   diag.Code
	}{
		{"IsAfter passes", (*Assert[*tick]).IsAfter, two, one, true, diag.ShouldBeAfter},
		{"IsAfter fails on equal", (*Assert[*tick]).IsAfter, one, one, false, diag.ShouldBeAfter},
		{"IsAfterOrEqualTo passes on equal", (*Assert[*tick]).IsAfterOrEqualTo, one, one, true, diag.ShouldBeAfterOrEqualTo},
		{"IsAfterOrEqualTo passes", (*Assert[*tick]).IsAfterOrEqualTo, two, one, true, diag.ShouldBeAfterOrEqualTo},
		{"IsAfterOrEqualTo fails", (*Assert[*tick]).IsAfterOrEqualTo, one, two, false, diag.ShouldBeAfterOrEqualTo},
		{"IsBefore passes", (*Assert[*tick]).IsBefore, one, two, true, diag.ShouldBeBefore},
		{"IsBefore fails on equal", (*Assert[*tick]).IsBefore, two, two, false, diag.ShouldBeBefore},
		{"IsBeforeOrEqualTo passes on equal", (*Assert[*tick]).IsBeforeOrEqualTo, two, two, true, diag.ShouldBeBeforeOrEqualTo},
		{"IsBeforeOrEqualTo fails", (*Assert[*tick]).IsBeforeOrEqualTo, two, one, false, diag.ShouldBeBeforeOrEqualTo},
		{"IsEqualTo passes", (*Assert[*tick]).IsEqualTo, one, &tick{n: 1}, true, diag.ShouldBeEqual},
		{"IsEqualTo fails", (*Assert[*tick]).IsEqualTo, one, two, false, diag.ShouldBeEqual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.run(newTickAssert(tt.actual), tt.other)
			if tt.passes {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, fluentassert.ErrAssertionFailed)

			var assertionErr *fluentassert.AssertionError
			require.True(t, errors.As(err, &assertionErr))
			assert.Equal(t, tt.code, assertionErr.Diagnostic.Code())
			assert.Equal(t, []string{tt.actual.String(), tt.other.String()}, assertionErr.Diagnostic.Values())
		})
	}
}

func TestIsAfterOrEqualTo_Message(t *testing.T) {
	t.Parallel()

	err := newTickAssert(&tick{n: 1}).IsAfterOrEqualTo(&tick{n: 2})
	require.Error(t, err)
	assert.Equal(t, "\nExpecting:\n  <tick 1>\nto be after or equals to:\n  <tick 2>", err.Error())
}

func TestRenderOverridesDisplay(t *testing.T) {
	t.Parallel()

	a := New(&tick{n: 5}, "Tick", func(v *tick) any { return diag.Raw("#" + strconv.Itoa(v.n)) })

	err := a.IsBefore(&tick{n: 3})
	require.Error(t, err)
	assert.Equal(t, "\nExpecting:\n  <#5>\nto be strictly before:\n  <#3>", err.Error())
}

func TestNilActual_FailsWithActualIsNil(t *testing.T) {
	t.Parallel()

	err := newTickAssert(nil).IsAfterOrEqualTo(&tick{n: 1})
	require.ErrorIs(t, err, fluentassert.ErrAssertionFailed)
	assert.Equal(t, "\nExpecting actual not to be nil", err.Error())
}

func TestNilOther_IsInvalidArgument(t *testing.T) {
	t.Parallel()

	for _, a := range []*Assert[*tick]{newTickAssert(&tick{n: 1}), newTickAssert(nil)} {
		err := a.IsAfterOrEqualTo(nil)
		require.ErrorIs(t, err, fluent.ErrInvalidArgument)
		assert.Equal(t, "The Tick to compare actual with should not be nil", err.Error())

		var invalid *fluent.InvalidArgumentError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "other", invalid.Parameter)
	}
}

func TestAs_PrefixesDescription(t *testing.T) {
	t.Parallel()

	err := newTickAssert(&tick{n: 1}).As("cutoff").IsAfter(&tick{n: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[cutoff] \nExpecting:")
}

func TestUsing_LogsFailuresAndRejections(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	asserter := fluentassert.New(context.Background(), logger, "scheduler", "window")
	a := newTickAssert(&tick{n: 1}).Using(asserter)

	require.NoError(t, a.IsBefore(&tick{n: 2}))
	require.Error(t, a.IsAfter(&tick{n: 2}))
	require.Error(t, a.IsAfter(nil))

	assert.Equal(t, []log.Level{log.LevelError, log.LevelWarn}, logger.levels)
	assert.Equal(t, []string{"assertion failed", "invalid assertion argument"}, logger.msgs)
}

func TestReject_ReturnsArgumentError(t *testing.T) {
	t.Parallel()

	cause := errors.New("bad input")
	err := newTickAssert(&tick{n: 1}).Reject(AssertionIsEqualTo, fluent.NewInvalidArgument("other", "unparsable").WithCause(cause))

	require.ErrorIs(t, err, fluent.ErrInvalidArgument)
	require.ErrorIs(t, err, cause)
}

func TestTimeValues(t *testing.T) {
	t.Parallel()

	earlier := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	sameInstant := earlier.In(time.FixedZone("BRT", -3*60*60))

	require.NoError(t, New(earlier, "Time", nil).IsEqualTo(sameInstant))
	require.NoError(t, New(earlier.Add(time.Nanosecond), "Time", nil).IsAfter(sameInstant))
	require.Error(t, New(earlier, "Time", nil).IsAfter(sameInstant))
}

func TestCheckOrder_ArgumentBeforeActual(t *testing.T) {
	t.Parallel()

	err := newTickAssert(nil).IsAfterOrEqualTo(nil)
	require.ErrorIs(t, err, fluent.ErrInvalidArgument)
	require.NotErrorIs(t, err, fluentassert.ErrAssertionFailed)

	err = newTickAssert(nil).IsAfterOrEqualTo(&tick{n: 1})
	require.ErrorIs(t, err, fluentassert.ErrAssertionFailed)
	require.NotErrorIs(t, err, fluent.ErrInvalidArgument)
}
