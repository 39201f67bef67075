package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/scriptindex/internal/render"
	"github.com/taigrr/scriptindex/internal/types"
)

func newListCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the files the index would list, without writing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			files, err := svc.Scan()
			if err != nil {
				return err
			}
			return printFiles(cmd.OutOrStdout(), format, files)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")

	return cmd
}

func printFiles(w io.Writer, format string, files []types.MatchedFile) error {
	if files == nil {
		files = []types.MatchedFile{}
	}

	switch format {
	case "text", "":
		for _, line := range render.Lines(files) {
			fmt.Fprintln(w, line)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(files); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q: want text, json or yaml", format)
	}
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether the index document is up to date, without writing it",
		Long: `check renders the index in memory and compares it with the document on
disk. Entries a fresh scan would add are printed with "+", entries that no
longer exist with "-". The command fails when the document is out of date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			drift, err := svc.Check()
			if err != nil {
				return err
			}

			printDrift(cmd.OutOrStdout(), drift)
			if !drift.UpToDate {
				return fmt.Errorf("%s is out of date; run scriptindex to regenerate it", drift.OutputPath)
			}
			return nil
		},
	}
}

func printDrift(w io.Writer, drift types.IndexDrift) {
	if !drift.Exists {
		fmt.Fprintf(w, "%s does not exist\n", drift.OutputPath)
	}
	for _, line := range drift.Missing {
		fmt.Fprintf(w, "+ %s\n", line)
	}
	for _, line := range drift.Stale {
		fmt.Fprintf(w, "- %s\n", line)
	}
	if drift.UpToDate {
		fmt.Fprintf(w, "%s is up to date\n", drift.OutputPath)
	}
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve index generation as MCP tools over stdio",
		Long: `serve runs a Model Context Protocol server on stdin/stdout so that an
MCP-compatible agent can list scripts, check the index and regenerate it.
Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: runServer,
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	indexService = svc

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "scriptindex",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
