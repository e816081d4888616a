// Package cli implements the fluent command-line tool, which runs the library's
// assertions against values given as arguments.
//
// Settings resolve in this order: flags, FLUENT_* environment variables
// (FLUENT_LOG_LEVEL, FLUENT_ENV, FLUENT_CHARSET), then an optional YAML file
// passed with --config.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/LerianStudio/lib-fluent/fluent/assert"
	"github.com/LerianStudio/lib-fluent/fluent/log"
	"github.com/LerianStudio/lib-fluent/fluent/runtime"
	fluentzap "github.com/LerianStudio/lib-fluent/fluent/zap"
)

const envPrefix = "FLUENT"

// ErrAssertionFailed is returned by Execute when a check did not hold. The
// diagnostic has already been written to the command's output.
var ErrAssertionFailed = errors.New("check failed")

type app struct {
	settings *viper.Viper
	logger   log.Logger
	logOut   io.Writer
}

// NewRootCommand builds the command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{settings: viper.New(), logger: log.NewNop(), logOut: errOut}

	root := &cobra.Command{
		Use:           "fluent",
		Short:         "Run fluent assertions from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd.Root().PersistentFlags())
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			// os.Stderr cannot be fsynced when it is a pipe or terminal.
			_ = a.logger.Sync(cmd.Context())
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML settings file")
	flags.String("log-level", "", "log level (debug, info, warn, error); defaults per environment")
	flags.String("env", string(fluentzap.EnvironmentLocal), "environment (production, staging, development, local)")
	flags.String("charset", "UTF-8", "IANA charset used to encode string arguments")

	root.AddCommand(
		newHexCommand(a),
		newBytesCommand(a),
		newCheckCommand(a),
	)

	return root
}

// Execute runs the command tree against args.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func (a *app) configure(flags *pflag.FlagSet) error {
	if err := a.settings.BindPFlags(flags); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	a.settings.SetEnvPrefix(envPrefix)
	a.settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.settings.AutomaticEnv()

	if file := a.settings.GetString("config"); file != "" {
		a.settings.SetConfigFile(file)

		if err := a.settings.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
	}

	env := fluentzap.Environment(a.settings.GetString("env"))

	logger, _, err := fluentzap.New(fluentzap.Config{
		Environment: env,
		Level:       a.settings.GetString("log-level"),
		Encoding:    fluentzap.EncodingConsole,
		Output:      a.logOut,
	})
	if err != nil {
		return err
	}

	runtime.SetProductionMode(env == fluentzap.EnvironmentProduction)

	a.logger = logger

	return nil
}

func (a *app) asserter(cmd *cobra.Command) *assert.Asserter {
	return assert.New(cmd.Context(), a.logger, "cli", cmd.CommandPath())
}

// report prints the outcome of a check. Assertion failures print the
// diagnostic and become ErrAssertionFailed; other errors pass through.
func report(cmd *cobra.Command, err error) error {
	if err == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	}

	if !errors.Is(err, assert.ErrAssertionFailed) {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimPrefix(err.Error(), "\n"))

	return ErrAssertionFailed
}
