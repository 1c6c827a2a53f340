package query

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ==================== 调用方参数 ====================

// FilterParam 一条 {property, value} 过滤条件
type FilterParam struct {
	Property string `json:"property"`
	Value    any    `json:"value"`
}

// OrderParam 一条排序条件，Direction 缺省为 ASC
type OrderParam struct {
	Property  string `json:"property"`
	Direction string `json:"direction,omitempty"`
}

// Page 分页参数，nil 表示调用方未提供
type Page struct {
	Offset *int
	Limit  *int
}

// NewPage 从 offset/limit 构造分页参数
func NewPage(offset, limit int) Page {
	return Page{Offset: &offset, Limit: &limit}
}

// ==================== 解析 ====================

// ParseOrderParams 解析 JSON 形式的排序列表，空串返回 nil
func ParseOrderParams(raw string) ([]OrderParam, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var params []OrderParam
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil, fmt.Errorf("invalid sort: %w", err)
	}
	return params, nil
}

// ParseFilterParams 解析 JSON 形式的过滤列表，空串返回 nil
func ParseFilterParams(raw string) ([]FilterParam, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var params []FilterParam
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return params, nil
}

// ReduceFilters 将过滤列表归并为 property -> value 映射
// 重复的 property 以最后一条为准
func ReduceFilters(params []FilterParam) map[string]any {
	filters := make(map[string]any, len(params))
	for _, p := range params {
		if p.Property == "" {
			continue
		}
		filters[p.Property] = p.Value
	}
	return filters
}

// Int64s 将 JSON 解码出来的 id 列表统一转换为 []int64
// 无法识别的元素直接丢弃
func Int64s(v any) []int64 {
	switch vv := v.(type) {
	case nil:
		return nil
	case []int64:
		out := make([]int64, len(vv))
		copy(out, vv)
		return out
	case []int:
		out := make([]int64, 0, len(vv))
		for _, n := range vv {
			out = append(out, int64(n))
		}
		return out
	case []any:
		out := make([]int64, 0, len(vv))
		for _, item := range vv {
			if n, ok := toInt64(item); ok {
				out = append(out, n)
			}
		}
		return out
	default:
		if n, ok := toInt64(vv); ok {
			return []int64{n}
		}
		return nil
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
