package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bem-translator/internal/config"
	"bem-translator/internal/ctxlog"
	"bem-translator/internal/diagnostic"
	"bem-translator/internal/handlers"
	"bem-translator/internal/schema"
	"bem-translator/internal/translate"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error()}
}

// app is the state shared by the subcommands of one invocation.
type app struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer

	cfg    config.Config
	logger *slog.Logger
	cat    *schema.Catalog
	reg    *translate.Registry
}

// flagKeys maps persistent flag names to configuration keys.
var flagKeys = map[string]string{
	"catalog":    "catalog",
	"log-level":  "log_level",
	"log-format": "log_format",
	"max-depth":  "max_depth",
	"root":       "roots",
	"strict":     "strict",
}

// NewRootCommand builds the command tree writing results to stdout and
// diagnostics and logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "bem-translator",
		Short: "Translate between building models and simulation input files",
		Long: `bem-translator converts an object-graph building model (HCL) into
simulation-input records (IDF text) and back, reporting every object or
record that could not be translated as a diagnostic.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default .bem-translator.yaml)")
	flags.String("catalog", "", "catalog YAML file (default: embedded catalog)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Int("max-depth", translate.DefaultMaxDepth, "maximum nesting depth of reference resolution")
	flags.StringSlice("root", nil, "restrict top-level translation to these types (repeatable)")
	flags.Bool("strict", false, "exit non-zero when any error diagnostic is produced")

	if err := bindFlags(a.v, flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		newForwardCommand(a),
		newReverseCommand(a),
		newDigestCommand(a),
		newCheckCommand(a),
		newCatalogCommand(a),
	)

	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}

	return nil
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	file, _ := cmd.Flags().GetString("config")

	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}

	if err := config.Init(a.v, file, paths...); err != nil {
		return usageError(err)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return usageError(err)
	}

	a.cfg = cfg
	a.logger = ctxlog.New(cfg.LogLevel, cfg.LogFormat, a.stderr)
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), a.logger))

	a.logger.Debug("Configuration loaded.", "config", a.v.ConfigFileUsed(), "catalog", cfg.Catalog, "max_depth", cfg.MaxDepth)

	a.cat = schema.Default()
	if cfg.Catalog != "" {
		if a.cat, err = schema.LoadFile(cfg.Catalog); err != nil {
			return usageError(err)
		}
	}

	a.reg = translate.NewRegistry(handlers.Module{})
	a.logger.Debug("Translation handlers registered.", "forward", len(a.reg.ForwardTypes()), "reverse", len(a.reg.ReverseTypes()))

	return nil
}

// report prints diags to stderr and, in strict mode, turns errors into a
// non-zero exit.
func (a *app) report(diags *diagnostic.Diagnostics) error {
	for _, d := range diags.Items {
		fmt.Fprintf(a.stderr, "%s: %s\n", d.Severity, d)
	}

	if a.cfg.Strict && diags.HasErrors() {
		return &ExitError{Code: 1, Message: fmt.Sprintf("%d error diagnostic(s)", len(diags.Errors()))}
	}

	return nil
}
