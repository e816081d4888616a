//go:build unit

package decimals

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/LerianStudio/lib-fluent/fluent"
	fluentassert "github.com/LerianStudio/lib-fluent/fluent/assert"
	"github.com/LerianStudio/lib-fluent/fluent/diag"
	fluentzap "github.com/LerianStudio/lib-fluent/fluent/zap"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOrderings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		run    func() error
		passes bool
		code   diag.Code
	}{
		{"greater passes", func() error { return AssertThat(dec("10.01")).IsGreaterThan(dec("10")) }, true, 0},
		{"greater fails on equal", func() error { return AssertThat(dec("10")).IsGreaterThan(dec("10.00")) }, false, diag.ShouldBeGreater},
		{"greater or equal passes on equal scale", func() error { return AssertThat(dec("1.50")).IsGreaterThanOrEqualToString("1.5") }, true, 0},
		{"greater or equal fails", func() error { return AssertThat(dec("-1")).IsGreaterThanOrEqualTo(dec("0")) }, false, diag.ShouldBeGreaterOrEqual},
		{"less passes", func() error { return AssertThat(dec("0.001")).IsLessThanString("0.01") }, true, 0},
		{"less fails", func() error { return AssertThat(dec("2")).IsLessThan(dec("1")) }, false, diag.ShouldBeLess},
		{"less or equal passes", func() error { return AssertThat(dec("2")).IsLessThanOrEqualTo(dec("2.000")) }, true, 0},
		{"less or equal fails", func() error { return AssertThat(dec("2.1")).IsLessThanOrEqualToString("2") }, false, diag.ShouldBeLessOrEqual},
		{"equal passes", func() error { return AssertThat(dec("100")).IsEqualToString("1e2") }, true, 0},
		{"equal fails", func() error { return AssertThat(dec("100")).IsEqualTo(dec("100.01")) }, false, diag.ShouldBeEqual},
		{"greater string passes", func() error { return AssertThat(dec("3")).IsGreaterThanString("2.999") }, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.run()
			if tt.passes {
				require.NoError(t, err)
				return
			}

			var assertionErr *fluentassert.AssertionError
			require.True(t, errors.As(err, &assertionErr))
			assert.Equal(t, tt.code, assertionErr.Diagnostic.Code())
		})
	}
}

func TestFailureMessage(t *testing.T) {
	t.Parallel()

	err := AssertThat(dec("99.5")).IsGreaterThanOrEqualTo(dec("100"))
	require.Error(t, err)
	assert.Equal(t, "\nExpecting:\n  <99.5>\nto be greater than or equal to:\n  <100>", err.Error())

	err = AssertThat(dec("99.5")).As("balance").IsEqualToString("99.50001")
	require.Error(t, err)
	assert.Equal(t, "[balance] \nExpecting:\n  <99.5>\nto be equal to:\n  <99.50001>\nbut was not.", err.Error())
}

func TestStringArguments(t *testing.T) {
	t.Parallel()

	err := AssertThat(dec("1")).IsLessThanString("")
	require.ErrorIs(t, err, fluent.ErrInvalidArgument)
	assert.Equal(t, "The String representing the Decimal to compare actual with should not be empty", err.Error())

	err = AssertThat(dec("1")).IsLessThanString("one")
	require.ErrorIs(t, err, fluent.ErrInvalidArgument)
	require.NotErrorIs(t, err, fluentassert.ErrAssertionFailed)

	var invalid *fluent.InvalidArgumentError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "other", invalid.Parameter)
	assert.Error(t, invalid.Cause)
}

func TestUsing_LogsFailure(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.DebugLevel)
	asserter := fluentassert.New(context.Background(), fluentzap.Wrap(zap.New(core)), "ledger", "settle")

	err := AssertThat(dec("5")).Using(asserter).IsLessThan(dec("5"))
	require.Error(t, err)

	entries := observed.FilterMessage("assertion failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "IsLessThan", entries[0].ContextMap()["assertion"])
	assert.Equal(t, "ShouldBeLess", entries[0].ContextMap()["code"])
	assert.Equal(t, "ledger", entries[0].ContextMap()["component"])
}
