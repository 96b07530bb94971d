package mcp

import (
	"context"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/daybook/pkg/day"
)

const dateHelp = "Day as 2024-03-07, 3/7, today or yesterday. Defaults to today."

func registerTools(srv *server.MCPServer, svc *Service) {
	registerGetDayTool(srv, svc)
	registerUpdateDayTool(srv, svc)
	registerToggleItemTool(srv, svc)
	registerProgressStatsTool(srv, svc)
	registerGetListsTool(srv, svc)
	registerSetListTool(srv, svc)
	registerResetListTool(srv, svc)
}

func registerGetDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_day",
		mcp.WithDescription("Fetch a day's score, notes, quote and checklists."),
		mcp.WithString("date", mcp.Description(dateHelp)),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.GetDay(request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_day",
		mcp.WithDescription("Set a day's score or notes, or mark checklist items done or not done."),
		mcp.WithString("date", mcp.Description(dateHelp)),
		mcp.WithNumber("score",
			mcp.Description("Whole score from 0 to 10."),
			mcp.Min(0),
			mcp.Max(10),
		),
		mcp.WithString("notes",
			mcp.Description("Replacement notes for the day."),
		),
		mcp.WithObject("tasks",
			mcp.Description("Task names mapped to true (done) or false. Names must already be on the task list."),
		),
		mcp.WithObject("wellness",
			mcp.Description("Wellness item names mapped to true (done) or false. Names must already be on the wellness list."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date     string          `json:"date"`
			Score    *float64        `json:"score"`
			Notes    *string         `json:"notes"`
			Tasks    map[string]bool `json:"tasks"`
			Wellness map[string]bool `json:"wellness"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		opts := UpdateDayOptions{
			Date:     args.Date,
			Notes:    args.Notes,
			Tasks:    args.Tasks,
			Wellness: args.Wellness,
		}
		if args.Score != nil {
			score, err := wholeScore(*args.Score)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			opts.Score = &score
		}

		dto, err := svc.UpdateDay(opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

// wholeScore accepts JSON numbers that are integers, such as 7 or 7.0.
func wholeScore(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("score must be a whole number from 0 to 10, got %v", v)
	}
	return int(v), nil
}

func registerToggleItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_item",
		mcp.WithDescription("Flip one checklist item of a day between done and not done."),
		mcp.WithString("list",
			mcp.Required(),
			mcp.Description("Which checklist."),
			mcp.Enum("tasks", "wellness"),
		),
		mcp.WithString("item",
			mcp.Required(),
			mcp.Description("Item name. Close spellings are matched to the nearest item."),
		),
		mcp.WithString("date", mcp.Description(dateHelp)),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := requireKind(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		item, err := request.RequireString("item")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ToggleItem(request.GetString("date", ""), kind, item)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerProgressStatsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"progress_stats",
		mcp.WithDescription("Count total and completed tasks and wellness items for a day."),
		mcp.WithString("date", mcp.Description(dateHelp)),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats, err := svc.ProgressStats(request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(stats)
	})
}

func registerGetListsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_lists",
		mcp.WithDescription("Fetch the global task and wellness lists every day is tracked against."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Lists()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_list",
		mcp.WithDescription("Replace a global list. Every day is rebuilt to the new items; removed items lose their history."),
		mcp.WithString("list",
			mcp.Required(),
			mcp.Description("Which list."),
			mcp.Enum("tasks", "wellness"),
		),
		mcp.WithArray("items",
			mcp.Required(),
			mcp.Description("The complete new list, in display order."),
			mcp.WithStringItems(),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := requireKind(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		items, err := request.RequireStringSlice("items")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.SetList(kind, items)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerResetListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"reset_list",
		mcp.WithDescription("Restore a global list to its configured defaults."),
		mcp.WithString("list",
			mcp.Required(),
			mcp.Description("Which list."),
			mcp.Enum("tasks", "wellness"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := requireKind(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.ResetList(kind)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func requireKind(request mcp.CallToolRequest) (day.Kind, error) {
	name, err := request.RequireString("list")
	if err != nil {
		return "", err
	}
	return day.ParseKind(name)
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
