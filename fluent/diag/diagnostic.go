package diag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LerianStudio/lib-fluent/fluent/hexadecimals"
	"github.com/LerianStudio/lib-fluent/fluent/internal/nilcheck"
)

// Diagnostic is an immutable failure description bound to its rendered values.
// The zero value renders as an empty string.
type Diagnostic struct {
	code        Code
	values      []string
	description string
}

func newDiagnostic(code Code, values ...any) Diagnostic {
	rendered := make([]string, len(values))
	for i, v := range values {
		rendered[i] = Render(v)
	}

	return Diagnostic{code: code, values: rendered}
}

// Code returns the template identifier.
func (d Diagnostic) Code() Code {
	return d.code
}

// Values returns a copy of the rendered argument strings, in template order.
func (d Diagnostic) Values() []string {
	out := make([]string, len(d.values))
	copy(out, d.values)

	return out
}

// Description returns the user-supplied description, if any.
func (d Diagnostic) Description() string {
	return d.description
}

// Describe returns a copy carrying description; Create prefixes it as "[description] ".
func (d Diagnostic) Describe(description string) Diagnostic {
	d.description = description

	return d
}

// Create renders the diagnostic message.
func (d Diagnostic) Create() string {
	text := d.code.Template()

	var sb strings.Builder

	sb.Grow(len(text) + len(d.description) + 16*len(d.values))

	if d.description != "" {
		sb.WriteString("[")
		sb.WriteString(d.description)
		sb.WriteString("] ")
	}

	next := 0

	for i := 0; i < len(text); i++ {
		if text[i] != '%' || i+1 == len(text) {
			sb.WriteByte(text[i])
			continue
		}

		switch text[i+1] {
		case 'n':
			sb.WriteByte('\n')
		case 's':
			if next < len(d.values) {
				sb.WriteString(d.values[next])
			}

			next++
		case '%':
			sb.WriteByte('%')
		default:
			sb.WriteByte('%')
			sb.WriteByte(text[i+1])
		}

		i++
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (d Diagnostic) String() string {
	return d.Create()
}

// Render converts a diagnostic argument to its display form.
//
// Strings are quoted, byte slices are shown as space-separated uppercase hex,
// fmt.Stringer and error values use their own text, and nil renders as "nil".
func Render(value any) string {
	if nilcheck.IsNil(value) {
		return "nil"
	}

	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case []byte:
		return hexadecimals.ByteArrayToHexString(v, " ")
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprint(v)
	}
}

// Raw wraps text that must be substituted without quoting.
type Raw string

// String implements fmt.Stringer.
func (r Raw) String() string {
	return string(r)
}
