//go:build unit

package compare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// version is a minimal Comparable used to exercise the generic predicates.
type version int

func (v version) Compare(other version) int {
	switch {
	case v < other:
		return -1
	case v > other:
		return 1
	default:
		return 0
	}
}

func TestOrderingPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                                      string
		actual, other                             version
		after, afterOrEqual, before, beforeOrEqual bool
		equal                                     bool
	}{
		{name: "actual before other", actual: 1, other: 2, before: true, beforeOrEqual: true},
		{name: "actual after other", actual: 3, other: 2, after: true, afterOrEqual: true},
		{name: "actual equal to other", actual: 2, other: 2, afterOrEqual: true, beforeOrEqual: true, equal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.after, IsAfter(tt.actual, tt.other))
			assert.Equal(t, tt.afterOrEqual, IsAfterOrEqualTo(tt.actual, tt.other))
			assert.Equal(t, tt.before, IsBefore(tt.actual, tt.other))
			assert.Equal(t, tt.beforeOrEqual, IsBeforeOrEqualTo(tt.actual, tt.other))
			assert.Equal(t, tt.equal, IsEqualTo(tt.actual, tt.other))
		})
	}
}

func TestOrderingPredicates_TimeUsesAbsoluteInstant(t *testing.T) {
	t.Parallel()

	utc := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	plusTwo := time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("+02:00", 2*60*60))

	assert.True(t, IsEqualTo(utc, plusTwo))
	assert.True(t, IsAfterOrEqualTo(utc, plusTwo))
	assert.True(t, IsAfterOrEqualTo(plusTwo, utc))
	assert.False(t, IsAfter(plusTwo, utc))

	later := utc.Add(time.Nanosecond)
	assert.True(t, IsAfterOrEqualTo(later, utc))
	assert.False(t, IsAfterOrEqualTo(utc, later))
}

func TestOrderedPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, OrderedIsAfterOrEqualTo(2, 1))
	assert.True(t, OrderedIsAfterOrEqualTo("b", "b"))
	assert.False(t, OrderedIsAfterOrEqualTo(1.0, 1.5))
	assert.True(t, OrderedIsAfter(2, 1))
	assert.False(t, OrderedIsAfter(1, 1))
	assert.True(t, OrderedIsBefore("a", "b"))
	assert.True(t, OrderedIsBeforeOrEqualTo(1, 1))
}

func TestBytesEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, BytesEqual([]byte("test"), []byte("test")))
	assert.True(t, BytesEqual(nil, []byte{}))
	assert.False(t, BytesEqual([]byte("test"), []byte("differentString")))
	assert.False(t, BytesEqual([]byte("test"), []byte("tesT")))
	assert.False(t, BytesEqual([]byte("test"), []byte("tes")))
}

func TestBytesContain(t *testing.T) {
	t.Parallel()

	assert.True(t, BytesContain([]byte("test"), []byte("es")))
	assert.True(t, BytesContain([]byte("test"), []byte("test")))
	assert.True(t, BytesContain([]byte("test"), []byte{}))
	assert.False(t, BytesContain([]byte("test"), []byte("xy")))
	assert.False(t, BytesContain([]byte("es"), []byte("test")))
	assert.False(t, BytesContain([]byte("test"), []byte("tt")))
}
