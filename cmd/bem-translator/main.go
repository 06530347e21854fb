// Package main provides the CLI entrypoint for bem-translator.
//
// bem-translator converts building models between two representations:
//   - an object graph of typed objects (HCL model files)
//   - flat simulation-input records (IDF text)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"bem-translator/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
