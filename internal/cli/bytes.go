package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"

	"github.com/LerianStudio/lib-fluent/fluent/bytebuffer"
)

func newBytesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bytes",
		Short: "Check the encoded bytes of a string",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "contains <actual> <expected>",
			Short:   "Check that actual contains expected, both encoded with --charset",
			Example: `  fluent bytes contains test es`,
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.checkBytes(cmd, args, (*bytebuffer.Assert).ContainsString)
			},
		},
		&cobra.Command{
			Use:     "equals <actual> <expected>",
			Short:   "Check that actual and expected encode to the same bytes",
			Example: `  fluent bytes equals test test`,
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.checkBytes(cmd, args, (*bytebuffer.Assert).EqualsString)
			},
		},
	)

	return cmd
}

func (a *app) checkBytes(
	cmd *cobra.Command,
	args []string,
	check func(a *bytebuffer.Assert, expected string, enc ...encoding.Encoding) error,
) error {
	enc, err := a.encoding()
	if err != nil {
		return err
	}

	actual, err := bytebuffer.WrapString(args[0], enc)
	if err != nil {
		return err
	}

	return report(cmd, check(bytebuffer.AssertThat(actual).Using(a.asserter(cmd)), args[1], enc))
}
