package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bem-translator/internal/diagnostic"
	"bem-translator/internal/match"
	"bem-translator/internal/model"
	"bem-translator/internal/modelfile"
	"bem-translator/internal/schema"
	"bem-translator/internal/translate"
	"bem-translator/internal/workspace"
)

func newForwardCommand(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "forward <model.hcl>",
		Short: "Translate a building model into simulation input records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := modelRoots(a.cfg.Roots)
			if err != nil {
				return usageError(err)
			}

			src, err := readInput(args[0])
			if err != nil {
				return err
			}

			m, err := modelfile.Parse(src, args[0])
			if err != nil {
				return err
			}

			a.logger.Info("Translating model.", "file", args[0], "objects", m.Len())

			res := translate.TranslateModel(cmd.Context(), a.reg, a.cat, m,
				translate.WithMaxDepth(a.cfg.MaxDepth),
				translate.WithRoots(roots...),
			)

			if err := a.writeTo(out, func(w io.Writer) error { return workspace.Write(w, res.Output) }); err != nil {
				return err
			}

			return a.report(&res.Diagnostics)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output IDF file (default stdout)")

	return cmd
}

func newReverseCommand(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "reverse <input.idf>",
		Short: "Translate simulation input records into a building model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := recordRoots(a.cat, a.cfg.Roots)
			if err != nil {
				return usageError(err)
			}

			ws, err := a.loadWorkspace(args[0])
			if err != nil {
				return err
			}

			a.logger.Info("Translating workspace.", "file", args[0], "records", ws.Len())

			res := translate.TranslateWorkspace(cmd.Context(), a.reg, a.cat, ws,
				translate.WithMaxDepth(a.cfg.MaxDepth),
				translate.WithRecordRoots(roots...),
			)

			if err := a.writeTo(out, func(w io.Writer) error { return modelfile.Write(w, res.Output) }); err != nil {
				return err
			}

			return a.report(&res.Diagnostics)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output model file (default stdout)")

	return cmd
}

func newDigestCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "digest <input.idf>",
		Short: "Print the order-independent content digest of an IDF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ws, err := a.loadWorkspace(args[0])
			if err != nil {
				return err
			}

			h, err := workspace.Digest(ws)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, h)

			return nil
		},
	}
}

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <input.idf>",
		Short: "Report reference fields that name no record",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ws, err := a.loadWorkspace(args[0])
			if err != nil {
				return err
			}

			dangling := workspace.CheckReferences(ws)
			for _, d := range dangling {
				fmt.Fprintln(a.stdout, d)
			}

			if len(dangling) > 0 {
				return &ExitError{Code: 1, Message: fmt.Sprintf("%d dangling reference(s)", len(dangling))}
			}

			return nil
		},
	}
}

func newCatalogCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the schema catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate [catalog.yaml]",
		Short: "Validate a catalog and check the registered handlers against it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cat := a.cat
			if len(args) == 1 {
				c, err := schema.LoadFile(args[0])
				if err != nil {
					return err
				}

				cat = c
			}

			var diags diagnostic.Diagnostics
			diags.Merge(*schema.Validate(cat))
			diags.Merge(*a.reg.Validate(cat))

			for _, d := range diags.Items {
				fmt.Fprintf(a.stderr, "%s: %s\n", d.Severity, d)
			}

			if diags.HasErrors() {
				return &ExitError{Code: 1, Message: fmt.Sprintf("catalog is invalid: %d error(s)", len(diags.Errors()))}
			}

			fmt.Fprintf(a.stdout, "catalog %s: %d record types OK\n", cat.Version(), len(cat.Types()))

			return nil
		},
	})

	return cmd
}

func (a *app) loadWorkspace(path string) (*workspace.Workspace, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	ws, err := workspace.Parse(bytes.NewReader(data), a.cat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ws, nil
}

// writeTo runs write against the -o file, or stdout when path is empty or "-".
func (a *app) writeTo(path string, write func(w io.Writer) error) error {
	if path == "" || path == "-" {
		return write(a.stdout)
	}

	return writeFile(path, write)
}

func modelRoots(names []string) ([]model.Type, error) {
	roots := make([]model.Type, 0, len(names))

	for _, n := range names {
		t, ok := model.ParseType(n)
		if !ok {
			return nil, unknownRoot(n, model.TypeNames())
		}

		roots = append(roots, t)
	}

	return roots, nil
}

func recordRoots(cat *schema.Catalog, names []string) ([]string, error) {
	for _, n := range names {
		if _, ok := cat.Type(n); !ok {
			return nil, unknownRoot(n, cat.TypeNames())
		}
	}

	return names, nil
}

func unknownRoot(name string, candidates []string) error {
	err := fmt.Errorf("unknown root type %q", name)
	if s := match.Suggest(name, candidates, 1); len(s) > 0 {
		err = fmt.Errorf("%w (did you mean %s?)", err, s[0])
	}

	return err
}
