package offsettime

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrOutOfRange is returned when a field or offset is outside its valid range.
	ErrOutOfRange = errors.New("offsettime: value out of range")
	// ErrMalformed is returned by Parse for text that is not an ISO offset time.
	ErrMalformed = errors.New("offsettime: malformed text")
)

const (
	nanosPerSecond = int64(time.Second)
	nanosPerMinute = int64(time.Minute)
	nanosPerHour   = int64(time.Hour)
)

var isoPattern = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2})(?:\.(\d{1,9}))?)?(Z|[+-]\d{2}:\d{2}(?::\d{2})?)$`)

// OffsetTime is a time of day with nanosecond precision and a fixed UTC offset.
// Values are immutable.
type OffsetTime struct {
	nanoOfDay int64
	offset    Offset
}

// Of returns the OffsetTime for the given fields.
func Of(hour, minute, second, nano int, offset Offset) (*OffsetTime, error) {
	switch {
	case hour < 0 || hour > 23:
		return nil, fmt.Errorf("%w: hour %d", ErrOutOfRange, hour)
	case minute < 0 || minute > 59:
		return nil, fmt.Errorf("%w: minute %d", ErrOutOfRange, minute)
	case second < 0 || second > 59:
		return nil, fmt.Errorf("%w: second %d", ErrOutOfRange, second)
	case nano < 0 || nano > 999_999_999:
		return nil, fmt.Errorf("%w: nanosecond %d", ErrOutOfRange, nano)
	case offset.seconds < -maxOffsetSeconds || offset.seconds > maxOffsetSeconds:
		return nil, fmt.Errorf("%w: offset %ds", ErrOutOfRange, offset.seconds)
	}

	nanoOfDay := int64(hour)*nanosPerHour +
		int64(minute)*nanosPerMinute +
		int64(second)*nanosPerSecond +
		int64(nano)

	return &OffsetTime{nanoOfDay: nanoOfDay, offset: offset}, nil
}

// MustOf is Of that panics on invalid fields.
func MustOf(hour, minute, second, nano int, offset Offset) *OffsetTime {
	t, err := Of(hour, minute, second, nano, offset)
	if err != nil {
		panic(err)
	}

	return t
}

// FromTime returns the time of day and zone offset of t. Zones built with
// time.FixedZone beyond ±18:00 yield ErrOutOfRange.
func FromTime(t time.Time) (*OffsetTime, error) {
	_, offsetSeconds := t.Zone()

	return Of(t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), Offset{seconds: offsetSeconds})
}

// MustFromTime is FromTime that panics on an out-of-range zone offset.
func MustFromTime(t time.Time) *OffsetTime {
	ot, err := FromTime(t)
	if err != nil {
		panic(err)
	}

	return ot
}

// Now returns the current time of day in the local zone, or in UTC when the
// local zone offset is outside ±18:00.
func Now() *OffsetTime {
	now := time.Now()

	if ot, err := FromTime(now); err == nil {
		return ot
	}

	ot, _ := FromTime(now.UTC())

	return ot
}

// Hour returns the hour of day, 0 to 23.
func (t *OffsetTime) Hour() int { return int(t.nanoOfDay / nanosPerHour) }

// Minute returns the minute of hour, 0 to 59.
func (t *OffsetTime) Minute() int { return int(t.nanoOfDay / nanosPerMinute % 60) }

// Second returns the second of minute, 0 to 59.
func (t *OffsetTime) Second() int { return int(t.nanoOfDay / nanosPerSecond % 60) }

// Nanosecond returns the nanosecond of second.
func (t *OffsetTime) Nanosecond() int { return int(t.nanoOfDay % nanosPerSecond) }

// Offset returns the UTC offset.
func (t *OffsetTime) Offset() Offset { return t.offset }

// Compare orders t and other by absolute instant, returning -1, 0 or +1.
// Wall-clock fields and offsets are not compared on their own.
func (t *OffsetTime) Compare(other *OffsetTime) int {
	return cmp.Compare(t.instantNanos(), other.instantNanos())
}

// instantNanos is the time of day shifted to UTC. It may fall outside a
// single day, which keeps offsets near ±18:00 ordered correctly.
func (t *OffsetTime) instantNanos() int64 {
	return t.nanoOfDay - int64(t.offset.seconds)*nanosPerSecond
}

// String renders t in ISO-8601 form, such as 03:00:05Z or 10:15+01:00.
// Seconds are omitted when they and the fraction are zero; the fraction is
// printed in groups of three digits.
func (t *OffsetTime) String() string {
	if t == nil {
		return "nil"
	}

	var sb strings.Builder

	writePadded(&sb, t.Hour())
	sb.WriteByte(':')
	writePadded(&sb, t.Minute())

	second, nano := t.Second(), t.Nanosecond()
	if second > 0 || nano > 0 {
		sb.WriteByte(':')
		writePadded(&sb, second)

		if nano > 0 {
			sb.WriteByte('.')
			sb.WriteString(fraction(nano))
		}
	}

	sb.WriteString(t.offset.String())

	return sb.String()
}

func fraction(nano int) string {
	switch {
	case nano%1_000_000 == 0:
		return leftPad(nano/1_000_000, 3)
	case nano%1_000 == 0:
		return leftPad(nano/1_000, 6)
	default:
		return leftPad(nano, 9)
	}
}

func leftPad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}

	return strings.Repeat("0", width-len(s)) + s
}

// Parse reads the ISO-8601 form HH:MM[:SS[.fffffffff]](Z|±HH:MM[:SS]).
func Parse(text string) (*OffsetTime, error) {
	m := isoPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, text)
	}

	hour, minute := atoi(m[1]), atoi(m[2])

	var second, nano int
	if m[3] != "" {
		second = atoi(m[3])
	}

	if m[4] != "" {
		nano = atoi(m[4] + strings.Repeat("0", 9-len(m[4])))
	}

	offset, err := parseOffset(m[5])
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", text, err)
	}

	t, err := Of(hour, minute, second, nano, offset)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", text, err)
	}

	return t, nil
}

func parseOffset(text string) (Offset, error) {
	if text == "Z" {
		return UTC, nil
	}

	parts := strings.Split(text[1:], ":")

	total := atoi(parts[0])*secondsPerHour + atoi(parts[1])*secondsPerMinute
	if len(parts) == 3 {
		total += atoi(parts[2])
	}

	if atoi(parts[1]) > 59 || (len(parts) == 3 && atoi(parts[2]) > 59) {
		return Offset{}, fmt.Errorf("%w: offset %s", ErrOutOfRange, text)
	}

	if text[0] == '-' {
		total = -total
	}

	return OffsetOfSeconds(total)
}

// atoi converts a run of ASCII digits already matched by isoPattern.
func atoi(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}

	return n
}
