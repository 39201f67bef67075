// Package main implements the scriptindex command.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/scriptindex/internal/index"
	"github.com/taigrr/scriptindex/internal/logger"
)

type rootFlags struct {
	root     string
	ext      string
	output   string
	exclude  []string
	logLevel string
}

var flags rootFlags

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags = rootFlags{}
	defaults := index.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "scriptindex",
		Short: "Regenerate the script index README for a source tree",
		Long: `scriptindex walks the working directory, collects every source file
with the target extension and writes a README.md whose script list links
each file to its folder. The previous README.md is replaced.`,
		Example: `scriptindex
scriptindex --ext .go --exclude '_External/**'
scriptindex check`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runGenerate,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.root, "root", "", "directory to scan (default: working directory)")
	pf.StringVar(&flags.ext, "ext", defaults.Extension, "file extension to list (case-sensitive)")
	pf.StringVarP(&flags.output, "output", "o", defaults.Output, "index document, relative to the root")
	pf.StringSliceVar(&flags.exclude, "exclude", nil, "glob of root-relative paths to leave out (repeatable)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "trace, debug, info, warn or error")

	cmd.AddCommand(newListCommand(), newCheckCommand(), newServeCommand())

	return cmd
}

// newService builds the index service from the command line, logging to w.
func newService(w io.Writer) (*index.Service, error) {
	root := flags.root
	if root == "" {
		var err error
		root, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	log := logger.New(w, logger.ParseLevel(flags.logLevel))

	return index.New(index.Options{
		Root:      root,
		Extension: flags.ext,
		Output:    flags.output,
		Exclude:   flags.exclude,
	}, log), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if _, err := svc.Generate(); err != nil {
		return fmt.Errorf("failed to generate index: %w", err)
	}
	return nil
}
