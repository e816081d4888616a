package offsettime

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	maxOffsetSeconds = 18 * secondsPerHour
)

// Offset is a fixed displacement from UTC, in seconds, within ±18:00.
type Offset struct {
	seconds int
}

// UTC is the zero offset, rendered as "Z".
var UTC = Offset{}

// OffsetOfSeconds returns the offset of the given total seconds.
func OffsetOfSeconds(seconds int) (Offset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return Offset{}, fmt.Errorf("%w: offset %ds not in range -18:00 to +18:00", ErrOutOfRange, seconds)
	}

	return Offset{seconds: seconds}, nil
}

// OffsetOfHours returns the offset of whole hours.
func OffsetOfHours(hours int) (Offset, error) {
	return OffsetOfHoursMinutes(hours, 0)
}

// OffsetOfHoursMinutes returns the offset of hours and minutes. Both parts
// must carry the same sign, as in -3 and -30 for -03:30.
func OffsetOfHoursMinutes(hours, minutes int) (Offset, error) {
	if minutes < -59 || minutes > 59 {
		return Offset{}, fmt.Errorf("%w: offset minutes %d not in range -59 to 59", ErrOutOfRange, minutes)
	}

	if (hours > 0 && minutes < 0) || (hours < 0 && minutes > 0) {
		return Offset{}, fmt.Errorf("%w: offset hours %d and minutes %d have different signs", ErrOutOfRange, hours, minutes)
	}

	return OffsetOfSeconds(hours*secondsPerHour + minutes*secondsPerMinute)
}

// Seconds returns the total offset in seconds.
func (o Offset) Seconds() int {
	return o.seconds
}

// String renders the offset as "Z", "+HH:MM" or "+HH:MM:SS".
func (o Offset) String() string {
	if o.seconds == 0 {
		return "Z"
	}

	total := o.seconds
	sign := "+"

	if total < 0 {
		sign = "-"
		total = -total
	}

	var sb strings.Builder

	sb.WriteString(sign)
	writePadded(&sb, total/secondsPerHour)
	sb.WriteByte(':')
	writePadded(&sb, total/secondsPerMinute%60)

	if s := total % secondsPerMinute; s != 0 {
		sb.WriteByte(':')
		writePadded(&sb, s)
	}

	return sb.String()
}

func writePadded(sb *strings.Builder, n int) {
	if n < 10 {
		sb.WriteByte('0')
	}

	sb.WriteString(strconv.Itoa(n))
}
