package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/scriptindex/internal/types"
)

type (
	// GenerateInput contains parameters for regenerating the index.
	GenerateInput struct{}

	// GenerateOutput contains the result of regenerating the index.
	GenerateOutput struct {
		Success    bool   `json:"success"`
		OutputPath string `json:"outputPath"`
		Entries    int    `json:"entries"`
		Bytes      int    `json:"bytes"`
	}

	// ListInput contains parameters for listing indexed scripts.
	ListInput struct {
		Offset int `json:"offset,omitempty" jsonschema:"Skip first N files for pagination (default: 0)"`
		Limit  int `json:"limit,omitempty" jsonschema:"Maximum files to return (default: all)"`
	}

	// ListOutput contains the files the index would list.
	ListOutput struct {
		Files   []types.MatchedFile `json:"files"`
		Total   int                 `json:"total"`
		HasMore bool                `json:"hasMore,omitempty"`
	}

	// CheckInput contains parameters for checking the index.
	CheckInput struct{}

	// CheckOutput reports how the index document differs from a fresh scan.
	CheckOutput struct {
		OutputPath string   `json:"outputPath"`
		Exists     bool     `json:"exists"`
		UpToDate   bool     `json:"upToDate"`
		Missing    []string `json:"missing"`
		Stale      []string `json:"stale"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_index",
		Description: "Scan the project tree and overwrite the index README with one markdown link per matching source file. Returns the number of entries written.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_scripts",
		Description: "List the source files the index would contain, in traversal order, without writing anything. Supports pagination with offset/limit.",
	}, handleList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_index",
		Description: "Compare the index README on disk with a fresh scan. Reports entries missing from the document and stale entries whose files are gone.",
	}, handleCheck)
}
