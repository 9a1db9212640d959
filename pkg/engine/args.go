package engine

import (
	"encoding/json"
	"strconv"

	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// Argument bags arrive from JSON, so numbers are float64 more often than int
// and lists are []any. These helpers normalise without being strict about the
// wire type; required-field validation stays with the engine action.

func argString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func argInt(args map[string]any, key string) (int, bool) {
	switch v := args[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
	}
	return 0, false
}

func argFloat(args map[string]any, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, true
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// argIntSlice coerces a list of indices; entries that are not numbers (or
// digit strings) fail the whole list.
func argIntSlice(args map[string]any, key string) ([]int, bool) {
	raw, ok := args[key].([]any)
	if !ok {
		if typed, ok := args[key].([]int); ok {
			return typed, true
		}
		return nil, false
	}
	out := make([]int, 0, len(raw))
	for _, item := range raw {
		n, ok := argInt(map[string]any{"v": item}, "v")
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// argRankings decodes the submit_ranking payload.
func argRankings(args map[string]any, key string) ([]models.EssayRanking, error) {
	raw, ok := args[key].([]any)
	if !ok {
		if typed, ok := args[key].([]models.EssayRanking); ok {
			return typed, nil
		}
		return nil, fault.New(fault.InvalidState, "rankings must be a list of {essay_id, rank, reasoning}")
	}
	out := make([]models.EssayRanking, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fault.New(fault.InvalidState, "rankings must be a list of {essay_id, rank, reasoning}")
		}
		rank, _ := argInt(entry, "rank")
		out = append(out, models.EssayRanking{
			EssayID:   argString(entry, "essay_id"),
			Rank:      rank,
			Reasoning: argString(entry, "reasoning"),
		})
	}
	return out, nil
}
