package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/scriptindex/internal/index"
	"github.com/taigrr/scriptindex/internal/types"
)

var indexService *index.Service

func handleGenerate(ctx context.Context, req *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
	result, err := indexService.Generate()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, GenerateOutput{Success: false, OutputPath: indexService.OutputPath()}, err
	}

	return nil, GenerateOutput{
		Success:    true,
		OutputPath: result.OutputPath,
		Entries:    len(result.Files),
		Bytes:      result.Bytes,
	}, nil
}

func handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	files, err := indexService.Scan()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{Files: []types.MatchedFile{}}, err
	}

	total := len(files)
	offset := min(max(input.Offset, 0), total)

	limit := input.Limit
	if limit <= 0 {
		limit = total
	}
	endIdx := min(offset+limit, total)

	page := make([]types.MatchedFile, 0, endIdx-offset)
	page = append(page, files[offset:endIdx]...)

	return nil, ListOutput{
		Files:   page,
		Total:   total,
		HasMore: endIdx < total,
	}, nil
}

func handleCheck(ctx context.Context, req *mcp.CallToolRequest, input CheckInput) (*mcp.CallToolResult, CheckOutput, error) {
	drift, err := indexService.Check()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CheckOutput{Missing: []string{}, Stale: []string{}}, err
	}

	out := CheckOutput{
		OutputPath: drift.OutputPath,
		Exists:     drift.Exists,
		UpToDate:   drift.UpToDate,
		Missing:    drift.Missing,
		Stale:      drift.Stale,
	}
	if out.Missing == nil {
		out.Missing = []string{}
	}
	if out.Stale == nil {
		out.Stale = []string{}
	}

	return nil, out, nil
}
