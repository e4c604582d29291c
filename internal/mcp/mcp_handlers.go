package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adtools/mediamath/core"
	"github.com/adtools/mediamath/internal/contract"
	"github.com/adtools/mediamath/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg   *contract.Config
	evaluator *core.Evaluator
	session   *core.Session
}

func (h *toolHandler) handleSolve(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	family, err := schema.ParseFamily(request.GetString("family", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := core.SolveRequest{Family: family, Target: schema.RateField(family)}
	if t := request.GetString("target", ""); t != "" {
		if req.Target, err = schema.ParseField(t); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	if m := request.GetString("mode", ""); m != "" {
		req.Mode = schema.SolveMode(strings.ToLower(m))
	}
	if req.Inputs, err = inputsFromArgs(request); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	industry, media, err := selectorsFromArgs(request, h.baseCfg.Industry, h.baseCfg.MediaType)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	row, err := core.SolveAndEvaluate(req, h.evaluator, industry, media)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("solve failed: %v", err)), nil
	}
	return jsonResult(row)
}

func (h *toolHandler) handleEvaluate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	metric, err := schema.ParseField(request.GetString("metric", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, ok := schema.ValidRateFields[metric]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%v: %s", schema.ErrNotRateField, metric)), nil
	}
	value, ok, err := numberArg(request.GetArguments(), "value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !ok {
		return mcp.NewToolResultError("value is required"), nil
	}
	industry, media, err := selectorsFromArgs(request, "", "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, ok := h.evaluator.Evaluate(metric, value, industry, media)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("no %s benchmark available for %s / %s", schema.MetricLabel(metric, media), industry, media)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleListBenchmarks(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	industry, media, err := selectorsFromArgs(request, "", "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(core.GetBenchmarkRows(h.evaluator.Table(), industry, media))
}

func (h *toolHandler) handleSessionSet(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.applySessionArgs(request); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(h.session.Snapshot())
}

func (h *toolHandler) handleSessionState(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.session.Snapshot())
}

func (h *toolHandler) handleSessionReset(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.session.Reset()
	return jsonResult(h.session.Snapshot())
}

// applySessionArgs parses every argument before touching the session, then
// applies them as one update so a bad argument leaves the session unchanged.
func (h *toolHandler) applySessionArgs(request mcp.CallToolRequest) error {
	var (
		update core.SessionUpdate
		err    error
	)
	if f := request.GetString("family", ""); f != "" {
		if update.Family, err = schema.ParseFamily(f); err != nil {
			return err
		}
	}
	if m := request.GetString("mode", ""); m != "" {
		update.Mode = schema.SolveMode(strings.ToLower(m))
	}
	if t := request.GetString("target", ""); t != "" {
		if update.Target, err = schema.ParseField(t); err != nil {
			return err
		}
	}
	if raw := request.GetString("industry", ""); raw != "" {
		industry, err := parseSelector(raw, schema.ParseIndustry)
		if err != nil {
			return err
		}
		update.Industry = &industry
	}
	if raw := request.GetString("media", ""); raw != "" {
		media, err := parseSelector(raw, schema.ParseMediaType)
		if err != nil {
			return err
		}
		update.MediaType = &media
	}
	if raw := request.GetString("clear", ""); raw != "" {
		for part := range strings.SplitSeq(raw, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			field, err := schema.ParseField(part)
			if err != nil {
				return err
			}
			update.Clear = append(update.Clear, field)
		}
	}
	if update.Values, err = inputsFromArgs(request); err != nil {
		return err
	}
	return h.session.Apply(update)
}

// parseSelector parses an industry or media value; "none" clears the selection.
func parseSelector[T ~string](raw string, parse func(string) (T, error)) (T, error) {
	if strings.EqualFold(strings.TrimSpace(raw), "none") {
		return "", nil
	}
	return parse(raw)
}

// selectorsFromArgs reads industry and media, falling back to the given defaults.
func selectorsFromArgs(request mcp.CallToolRequest, industry schema.Industry, media schema.MediaType) (schema.Industry, schema.MediaType, error) {
	var err error
	if raw := request.GetString("industry", ""); raw != "" {
		if industry, err = schema.ParseIndustry(raw); err != nil {
			return "", "", err
		}
	}
	if raw := request.GetString("media", ""); raw != "" {
		if media, err = schema.ParseMediaType(raw); err != nil {
			return "", "", err
		}
	}
	return industry, media, nil
}

// inputsFromArgs collects the metric values present in the request.
func inputsFromArgs(request mcp.CallToolRequest) (schema.MetricInputs, error) {
	var inputs schema.MetricInputs
	args := request.GetArguments()
	for _, field := range schema.AllFields {
		v, ok, err := numberArg(args, string(field))
		if err != nil {
			return schema.MetricInputs{}, err
		}
		if ok {
			inputs.Set(field, v)
		}
	}
	return inputs, nil
}

// numberArg reads an optional non-negative number. Clients may send numbers
// as JSON numbers or as strings.
func numberArg(args map[string]any, key string) (float64, bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		if v < 0 || !schema.IsFinite(v) {
			return 0, false, fmt.Errorf("%s must be a non-negative number (received %v)", key, v)
		}
		return v, true, nil
	case int:
		return numberArg(map[string]any{key: float64(v)}, key)
	case string:
		f, ok, err := contract.ParseAmount(v)
		if err != nil {
			return 0, false, fmt.Errorf("invalid %s: %w", key, err)
		}
		return f, ok, nil
	default:
		return 0, false, fmt.Errorf("%s must be a number", key)
	}
}

// jsonResult wraps data as an indented JSON text result.
func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
