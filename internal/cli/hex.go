package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/LerianStudio/lib-fluent/fluent/bytebuffer"
	"github.com/LerianStudio/lib-fluent/fluent/hexadecimals"
)

func newHexCommand(a *app) *cobra.Command {
	var (
		separator string
		decode    bool
	)

	cmd := &cobra.Command{
		Use:   "hex <text>",
		Short: "Print the uppercase hex of text encoded with --charset",
		Example: `  fluent hex test                       # 74 65 73 74
  fluent hex café --charset ISO-8859-1  # 63 61 66 E9
  fluent hex --decode "74 65 73 74"     # test`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := a.encoding()
			if err != nil {
				return err
			}

			if decode {
				raw, err := hexadecimals.HexStringToByteArray(args[0], separator)
				if err != nil {
					return err
				}

				text, err := enc.NewDecoder().Bytes(raw)
				if err != nil {
					return fmt.Errorf("decode: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), string(text))

				return nil
			}

			buf, err := bytebuffer.WrapString(args[0], enc)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hexadecimals.ByteArrayToHexString(buf.Bytes(), separator))

			return nil
		},
	}

	cmd.Flags().StringVarP(&separator, "separator", "s", " ", "separator between bytes")
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "decode hex back to text")

	return cmd
}

// encoding resolves the --charset setting through the IANA registry.
func (a *app) encoding() (encoding.Encoding, error) {
	name := strings.TrimSpace(a.settings.GetString("charset"))
	if name == "" {
		return unicode.UTF8, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}

	if enc == nil {
		return nil, fmt.Errorf("charset %q is not supported", name)
	}

	return enc, nil
}
