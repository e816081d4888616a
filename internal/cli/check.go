package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/LerianStudio/lib-fluent/fluent/decimals"
	"github.com/LerianStudio/lib-fluent/fluent/instant"
	"github.com/LerianStudio/lib-fluent/fluent/offsettime"
)

// orderedAssert is the string-argument surface shared by the ordered entry points.
type orderedAssert interface {
	IsAfterString(other string) error
	IsAfterOrEqualToString(other string) error
	IsBeforeString(other string) error
	IsBeforeOrEqualToString(other string) error
	IsEqualToString(other string) error
}

var relations = map[string]func(orderedAssert, string) error{
	"after":           orderedAssert.IsAfterString,
	"after-or-equal":  orderedAssert.IsAfterOrEqualToString,
	"before":          orderedAssert.IsBeforeString,
	"before-or-equal": orderedAssert.IsBeforeOrEqualToString,
	"equal":           orderedAssert.IsEqualToString,
}

func relationNames() string {
	names := make([]string, 0, len(relations))
	for name := range relations {
		names = append(names, name)
	}

	sort.Strings(names)

	return strings.Join(names, ", ")
}

func newCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the ordering of two values: <actual> <relation> <other>",
		Long:  "Relations: " + relationNames() + ".",
	}

	cmd.AddCommand(
		a.orderedCommand("offsettime", "03:03:03Z after-or-equal 03:00:05Z", func(cmd *cobra.Command, actual string) (orderedAssert, error) {
			parsed, err := offsettime.Parse(actual)
			if err != nil {
				return nil, err
			}

			return offsettime.AssertThat(parsed).Using(a.asserter(cmd)), nil
		}),
		a.orderedCommand("instant", "2024-05-10T12:00:00Z before 2024-05-10T12:00:01Z", func(cmd *cobra.Command, actual string) (orderedAssert, error) {
			parsed, err := parseInstant(actual)
			if err != nil {
				return nil, err
			}

			return instant.AssertThat(parsed).Using(a.asserter(cmd)), nil
		}),
		a.orderedCommand("decimal", "10.50 equal 10.5", func(cmd *cobra.Command, actual string) (orderedAssert, error) {
			parsed, err := decimal.NewFromString(actual)
			if err != nil {
				return nil, fmt.Errorf("parse decimal %q: %w", actual, err)
			}

			return decimalAssert{decimals.AssertThat(parsed).Using(a.asserter(cmd))}, nil
		}),
	)

	return cmd
}

func (a *app) orderedCommand(
	kind, example string,
	start func(cmd *cobra.Command, actual string) (orderedAssert, error),
) *cobra.Command {
	return &cobra.Command{
		Use:     kind + " <actual> <relation> <other>",
		Short:   "Check the ordering of two " + kind + " values",
		Example: "  fluent check " + kind + " " + example,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			relation, ok := relations[args[1]]
			if !ok {
				return fmt.Errorf("unknown relation %q (want one of %s)", args[1], relationNames())
			}

			subject, err := start(cmd, args[0])
			if err != nil {
				return err
			}

			return report(cmd, relation(subject, args[2]))
		},
	}
}

// decimalAssert maps the ordering vocabulary onto numeric comparisons.
type decimalAssert struct {
	*decimals.Assert
}

func (d decimalAssert) IsAfterString(other string) error {
	return d.IsGreaterThanString(other)
}

func (d decimalAssert) IsAfterOrEqualToString(other string) error {
	return d.IsGreaterThanOrEqualToString(other)
}

func (d decimalAssert) IsBeforeString(other string) error {
	return d.IsLessThanString(other)
}

func (d decimalAssert) IsBeforeOrEqualToString(other string) error {
	return d.IsLessThanOrEqualToString(other)
}

func parseInstant(text string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse instant %q: %w", text, err)
	}

	return t, nil
}
